package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.Equal(t, 50, cfg.Analysis.ParetoDetailN)
	assert.NoError(t, cfg.validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("VENTAS_SERVER_PORT", "9090")
	t.Setenv("VENTAS_LOGGING_LEVEL", "debug")
	t.Setenv("VENTAS_ANALYSIS_TOP_N", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Analysis.TopN)
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = -1
	assert.Error(t, cfg.validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.validate())
}

func TestValidateRejectsBadTopN(t *testing.T) {
	cfg := Default()
	cfg.Analysis.TopN = 0
	assert.Error(t, cfg.validate())
}

func TestValidateNormalizesLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	cfg.Logging.Output = "syslog"
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "logs/app.log", cfg.Logging.FilePath)
}

func TestLoadFromFile(t *testing.T) {
	content := []byte("server:\n  port: 7070\nlogging:\n  level: warn\n")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestMergeConfigsEnvWins(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Server.Port = 7070
	fileCfg.Logging.Level = "warn"
	fileCfg.Analysis.TopN = 3

	envCfg := Config{}
	envCfg.Server.Port = 9090

	merged := mergeConfigs(fileCfg, envCfg)
	assert.Equal(t, 9090, merged.Server.Port)
	assert.Equal(t, "warn", merged.Logging.Level)
	assert.Equal(t, 3, merged.Analysis.TopN)
}

func TestResolvePathsMakesAbsolute(t *testing.T) {
	paths, err := ResolvePaths(PathsConfig{
		InputDir:  "data/input",
		OutputDir: "/abs/output",
		LogsDir:   "logs",
	})
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(paths.InputDir))
	assert.Equal(t, "/abs/output", paths.OutputDir)
	assert.True(t, filepath.IsAbs(paths.LogsDir))
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := &Paths{
		InputDir:  filepath.Join(dir, "in"),
		OutputDir: filepath.Join(dir, "out"),
		LogsDir:   filepath.Join(dir, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())
	for _, d := range []string{paths.InputDir, paths.OutputDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestReportPath(t *testing.T) {
	paths := &Paths{OutputDir: "/out"}

	assert.Equal(t, "/out/reporte_ventas.xlsx", paths.ReportPath("/in/ventas.xlsx"))
	assert.Equal(t, "/out/reporte_export_2024.xlsx", paths.ReportPath("export_2024.csv"))
}

func TestGetLogPath(t *testing.T) {
	paths := &Paths{LogsDir: "/logs"}
	assert.Equal(t, "/logs/app.log", paths.GetLogPath("app.log"))
}
