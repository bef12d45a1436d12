package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ThomasMeMan2/skinavigator/internal/export"
	"github.com/ThomasMeMan2/skinavigator/internal/service"
	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
	"github.com/ThomasMeMan2/skinavigator/pkg/config"
	"github.com/ThomasMeMan2/skinavigator/pkg/logger"
	"github.com/ThomasMeMan2/skinavigator/pkg/metrics"
)

// Handler HTTP обработчики API маршрутов
type Handler struct {
	svc *service.RouteService
	cfg *config.Config
}

// NewHandler создаёт обработчики
func NewHandler(svc *service.RouteService, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// errorBody тело ответа с ошибкой
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	detail := errorDetail{
		Code:    string(apperror.CodeInternal),
		Message: "internal server error",
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		detail.Code = string(appErr.Code)
		detail.Message = appErr.Message
		detail.Field = appErr.Field
		if len(appErr.Details) > 0 {
			detail.Details = appErr.Details
		}
	} else {
		logger.Error("Unhandled error", "error", err)
	}

	writeJSON(w, apperror.HTTPStatus(err), errorBody{Error: detail})
}

// resort возвращает slug курорта из запроса либо дефолтный
func (h *Handler) resort(r *http.Request) string {
	if slug := r.URL.Query().Get("resort"); slug != "" {
		return slug
	}
	return h.cfg.Resort.Slug
}

// handleRoute POST /api/v1/route
func (h *Handler) handleRoute(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRouteRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	route, err := h.svc.FindRoute(r.Context(), h.resort(r), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, route)
}

// handleExport POST /api/v1/route/export?format=
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := decodeRouteRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	slug := h.resort(r)
	route, err := h.svc.FindRoute(r.Context(), slug, req)
	if err != nil {
		writeError(w, err)
		return
	}

	gen, err := export.New(format, &h.cfg.Export)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := gen.Generate(r.Context(), &export.RouteData{
		Resort:      slug,
		From:        req.From,
		To:          req.To,
		Avoid:       req.Avoid,
		Route:       route,
		Company:     h.cfg.Export.CompanyName,
		GeneratedAt: time.Now(),
	})

	if m := metrics.Get(); m != nil {
		m.RecordExport(string(format), err == nil)
	}

	if err != nil {
		writeError(w, apperror.Wrap(err, apperror.CodeInternal, "export failed"))
		return
	}

	filename := fmt.Sprintf("route-%s.%s", slug, format)
	w.Header().Set("Content-Type", gen.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		logger.Error("Failed to write export", "error", err)
	}
}

// handleLocations GET /api/v1/locations
func (h *Handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	index, err := h.svc.Locations(r.Context(), h.resort(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, index)
}

// handleStats GET /api/v1/graph/stats
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), h.resort(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// handleResorts GET /api/v1/resorts
func (h *Handler) handleResorts(w http.ResponseWriter, r *http.Request) {
	resorts, err := h.svc.Resorts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	type resortItem struct {
		Slug      string    `json:"slug"`
		Name      string    `json:"name"`
		NodeCount int       `json:"nodeCount"`
		EdgeCount int       `json:"edgeCount"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	items := make([]resortItem, 0, len(resorts))
	for _, r := range resorts {
		items = append(items, resortItem{
			Slug:      r.Slug,
			Name:      r.Name,
			NodeCount: r.NodeCount,
			EdgeCount: r.EdgeCount,
			UpdatedAt: r.UpdatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"resorts": items})
}

func decodeRouteRequest(r *http.Request) (*service.RouteRequest, error) {
	var req service.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidArgument, "invalid request body")
	}
	return &req, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleReady проверяет, что граф курорта загружается
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Stats(r.Context(), h.cfg.Resort.Slug); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]bool{"ready": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ready": true})
}
