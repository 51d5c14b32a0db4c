package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nrivas/marketscope/internal/alert/domain"
	"github.com/nrivas/marketscope/internal/alert/usecase/command"
	"github.com/nrivas/marketscope/internal/alert/usecase/query"
	"github.com/nrivas/marketscope/pkg/logger"
)

// AlertHandler handles HTTP requests for scraper-created price and stock
// alerts. Alert creation belongs to the scraper; this surface reads alerts
// and flips their state.
type AlertHandler struct {
	listHandler          *query.ListAlertsHandler
	notificationsHandler *query.ListNotificationsHandler
	statusHandler        *command.SetAlertStatusHandler
	markReadHandler      *command.MarkNotificationReadHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewAlertHandler creates a new alert handler using dependency injection;
// used by Wire.
func NewAlertHandler(
	listHandler *query.ListAlertsHandler,
	notificationsHandler *query.ListNotificationsHandler,
	statusHandler *command.SetAlertStatusHandler,
	markReadHandler *command.MarkNotificationReadHandler,
) *AlertHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_service_requests_total",
			Help: "Total number of requests to alert endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alert_service_request_duration_seconds",
			Help:    "Duration of alert requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &AlertHandler{
		listHandler:          listHandler,
		notificationsHandler: notificationsHandler,
		statusHandler:        statusHandler,
		markReadHandler:      markReadHandler,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *AlertHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *AlertHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/alerts", h.metricsMiddleware("/api/alerts", h.ListAlerts)).Methods("GET")
	router.HandleFunc("/api/alerts/{id}/status", h.metricsMiddleware("/api/alerts/{id}/status", h.SetAlertStatus)).Methods("PATCH")
	router.HandleFunc("/api/notifications", h.metricsMiddleware("/api/notifications", h.ListNotifications)).Methods("GET")
	router.HandleFunc("/api/notifications/{id}/read", h.metricsMiddleware("/api/notifications/{id}/read", h.MarkNotificationRead)).Methods("PATCH")
}

type setAlertStatusRequest struct {
	Active bool `json:"active"`
}

// ListAlerts handles GET /api/alerts
func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.listHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list alerts")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list alerts",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"alerts": alerts,
			"total":  len(alerts),
		},
	})
}

// SetAlertStatus handles PATCH /api/alerts/{id}/status
func (h *AlertHandler) SetAlertStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req setAlertStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.statusHandler.Handle(command.SetAlertStatusCommand{
		AlertID: id,
		Active:  req.Active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Alert not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Uint("alert_id", id).Msg("Failed to update alert status")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to update alert status",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Alert status updated",
	})
}

// ListNotifications handles GET /api/notifications
func (h *AlertHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	notifications, err := h.notificationsHandler.Handle(query.ListNotificationsQuery{Limit: limit})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list notifications")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list notifications",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    notifications,
	})
}

// MarkNotificationRead handles PATCH /api/notifications/{id}/read
func (h *AlertHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.markReadHandler.Handle(command.MarkNotificationReadCommand{NotificationID: id}); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Notification not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Uint("notification_id", id).Msg("Failed to mark notification as read")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to mark notification as read",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Notification marked as read",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
