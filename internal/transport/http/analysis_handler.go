package http

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"ventascli/internal/analysis"
	"ventascli/internal/config"
	apperrors "ventascli/internal/errors"
	"ventascli/internal/services"
)

// AnalysisHandler serves the analysis query endpoints.
type AnalysisHandler struct {
	service  *services.AnalysisService
	paths    *config.Paths
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAnalysisHandler creates the handler.
func NewAnalysisHandler(service *services.AnalysisService, paths *config.Paths, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		service:  service,
		paths:    paths,
		validate: validator.New(),
		logger:   logger.With(slog.String("handler", "analysis")),
	}
}

// Routes returns the routes for the analysis endpoints.
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/run", h.Run)
	r.Get("/result", h.Result)
	r.Get("/summary", h.Summary)
	r.Get("/categories", h.Categories)
	r.Get("/months", h.Months)
	r.Get("/growth", h.Growth)
	r.Get("/cadence", h.Cadence)
	r.Get("/top/{metric}", h.Top)
	r.Get("/price-per-kg", h.TopPricePerKg)
	r.Get("/pareto/{metric}", h.Pareto)
	r.Get("/priority", h.Priority)
	r.Get("/bcg", h.BCG)

	return r
}

// RunRequest asks for one input file to be analyzed. Relative names
// resolve under the configured input directory.
type RunRequest struct {
	File string `json:"file" validate:"required"`
}

// Run handles POST /api/analysis/run.
func (h *AnalysisHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		_ = render.Render(w, r, apperrors.ErrInvalidRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		_ = render.Render(w, r, apperrors.ErrValidation("file", "file is required"))
		return
	}

	path := req.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(h.paths.InputDir, path)
	}

	result, err := h.service.AnalyzeFile(r.Context(), path)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "analysis run failed",
			slog.String("file", req.File),
			slog.String("error", err.Error()))
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// Result handles GET /api/analysis/result.
func (h *AnalysisHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

// Summary handles GET /api/analysis/summary.
func (h *AnalysisHandler) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result.Summary)
}

// Categories handles GET /api/analysis/categories.
func (h *AnalysisHandler) Categories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result.Categories)
}

// Months handles GET /api/analysis/months.
func (h *AnalysisHandler) Months(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result.Months)
}

// Growth handles GET /api/analysis/growth.
func (h *AnalysisHandler) Growth(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result.Growth)
}

// Cadence handles GET /api/analysis/cadence.
func (h *AnalysisHandler) Cadence(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result.Cadence)
}

// Top handles GET /api/analysis/top/{metric}?n=10.
func (h *AnalysisHandler) Top(w http.ResponseWriter, r *http.Request) {
	metric := analysis.Metric(chi.URLParam(r, "metric"))
	if !metric.Valid() {
		_ = render.Render(w, r, apperrors.ErrValidation("metric", "metric must be quantity, revenue or weight"))
		return
	}

	n, ok := h.topN(w, r)
	if !ok {
		return
	}

	products, err := h.service.Top(metric, n)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, products)
}

// TopPricePerKg handles GET /api/analysis/price-per-kg?n=10.
func (h *AnalysisHandler) TopPricePerKg(w http.ResponseWriter, r *http.Request) {
	n, ok := h.topN(w, r)
	if !ok {
		return
	}

	products, err := h.service.TopPricePerKg(n)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, products)
}

// Pareto handles GET /api/analysis/pareto/{metric}.
func (h *AnalysisHandler) Pareto(w http.ResponseWriter, r *http.Request) {
	metric := analysis.Metric(chi.URLParam(r, "metric"))
	if !metric.Valid() {
		_ = render.Render(w, r, apperrors.ErrValidation("metric", "metric must be quantity, revenue or weight"))
		return
	}

	table, err := h.service.Pareto(metric)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, table)
}

// Priority handles GET /api/analysis/priority.
func (h *AnalysisHandler) Priority(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result.Priority)
}

// BCG handles GET /api/analysis/bcg.
func (h *AnalysisHandler) BCG(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result()
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, result.BCG)
}

// topN parses and validates the optional n query parameter. Reports
// false when the response has already been written.
func (h *AnalysisHandler) topN(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return 0, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		_ = render.Render(w, r, apperrors.ErrValidation("n", "n must be an integer"))
		return 0, false
	}
	if err := h.validate.Var(n, "gte=1,lte=100"); err != nil {
		_ = render.Render(w, r, apperrors.ErrValidation("n", "n must be between 1 and 100"))
		return 0, false
	}
	return n, true
}

// renderError maps application errors to HTTP error responses.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		_ = render.Render(w, r, apperrors.FromAppError(appErr))
		return
	}
	_ = render.Render(w, r, apperrors.ErrInternalServer)
}
