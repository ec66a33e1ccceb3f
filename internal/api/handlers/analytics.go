package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/restockhq/inventory-platform/internal/api/middleware"
	service "github.com/restockhq/inventory-platform/internal/services"
	"github.com/restockhq/inventory-platform/internal/utils/response"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	alertService     service.AlertService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, alertService service.AlertService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, alertService: alertService}
}

func (h *AnalyticsHandler) GetReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		report, err := h.analyticsService.Report(r.Context())
		if err != nil {
			logger.Error("Failed to build analytics report", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, report)
	}
}

func (h *AnalyticsHandler) ListAlerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}

		alerts, err := h.alertService.ListAlerts(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list alerts", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, alerts)
	}
}
