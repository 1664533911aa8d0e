package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes a discovered input file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery finds sales export files under a base directory.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a discovery rooted at basePath. Relative
// directories passed to the finder methods resolve against it.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindSalesFiles returns the .xlsx and .csv files in dir, sorted by
// name. Excel lock files ("~$" prefix) and subdirectories are skipped.
func (d *Discovery) FindSalesFiles(dir string) ([]FileInfo, error) {
	return d.find(dir, func(name string) bool {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".xlsx", ".csv":
			return true
		}
		return false
	})
}

// FindExcelFiles returns only the .xlsx files in dir, sorted by name.
func (d *Discovery) FindExcelFiles(dir string) ([]FileInfo, error) {
	return d.find(dir, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ".xlsx")
	})
}

// FindCSVFiles returns only the .csv files in dir, sorted by name.
func (d *Discovery) FindCSVFiles(dir string) ([]FileInfo, error) {
	return d.find(dir, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ".csv")
	})
}

func (d *Discovery) find(dir string, match func(string) bool) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, "~$") || !match(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// GetLatestFile returns the most recently modified file from the list.
func GetLatestFile(files []FileInfo) (FileInfo, bool) {
	if len(files) == 0 {
		return FileInfo{}, false
	}

	latest := files[0]
	for _, f := range files[1:] {
		if f.ModTime.After(latest.ModTime) {
			latest = f
		}
	}
	return latest, true
}
