package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nrivas/marketscope/internal/report/domain"
	"github.com/nrivas/marketscope/internal/report/usecase/command"
	"github.com/nrivas/marketscope/internal/report/usecase/query"
	"github.com/nrivas/marketscope/kafka"
	"github.com/nrivas/marketscope/pkg/logger"
)

// ReportHandler handles HTTP requests for saved comparison reports.
type ReportHandler struct {
	createHandler *command.CreateReportHandler
	renameHandler *command.RenameReportHandler
	deleteHandler *command.DeleteReportHandler
	listHandler   *query.ListReportsHandler
	getHandler    *query.GetReportHandler

	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	savedReports   prometheus.Gauge
}

// NewReportHandler creates a new report handler using dependency injection;
// used by Wire. kafkaPublisher may be nil when event publishing is disabled.
func NewReportHandler(
	createHandler *command.CreateReportHandler,
	renameHandler *command.RenameReportHandler,
	deleteHandler *command.DeleteReportHandler,
	listHandler *query.ListReportsHandler,
	getHandler *query.GetReportHandler,
	kafkaPublisher *kafka.Publisher,
) *ReportHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_service_requests_total",
			Help: "Total number of requests to report endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_service_request_duration_seconds",
			Help:    "Duration of report requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	savedReports := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "report_service_saved_reports",
			Help: "Number of reports returned by the last list request",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(savedReports)

	return &ReportHandler{
		createHandler:  createHandler,
		renameHandler:  renameHandler,
		deleteHandler:  deleteHandler,
		listHandler:    listHandler,
		getHandler:     getHandler,
		kafkaPublisher: kafkaPublisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		savedReports:   savedReports,
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

func (h *ReportHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports", h.metricsMiddleware("/api/reports", h.ListReports)).Methods("GET")
	router.HandleFunc("/api/reports", h.metricsMiddleware("/api/reports", h.CreateReport)).Methods("POST")
	router.HandleFunc("/api/reports/{id}", h.metricsMiddleware("/api/reports/{id}", h.GetReport)).Methods("GET")
	router.HandleFunc("/api/reports/{id}", h.metricsMiddleware("/api/reports/{id}", h.RenameReport)).Methods("PATCH")
	router.HandleFunc("/api/reports/{id}", h.metricsMiddleware("/api/reports/{id}", h.DeleteReport)).Methods("DELETE")
}

type createReportRequest struct {
	Name           string `json:"name"`
	UserID         string `json:"user_id"`
	BaseProductIDs []uint `json:"base_product_ids"`
}

type renameReportRequest struct {
	Name string `json:"name"`
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.listHandler.Handle(query.ListReportsQuery{
		UserID: r.URL.Query().Get("user_id"),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list reports")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list reports",
		})
		return
	}

	h.savedReports.Set(float64(len(reports)))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"reports": reports,
			"total":   len(reports),
		},
	})
}

// GetReport handles GET /api/reports/{id}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["id"]

	view, err := h.getHandler.Handle(r.Context(), query.GetReportQuery{ReportID: reportID})
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Report not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Str("report_id", reportID).Msg("Failed to load report")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load report",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// CreateReport handles POST /api/reports
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	report, err := h.createHandler.Handle(command.CreateReportCommand{
		Name:           req.Name,
		UserID:         req.UserID,
		BaseProductIDs: req.BaseProductIDs,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   validationErr.Error(),
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to create report")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to create report",
		})
		return
	}

	if h.kafkaPublisher != nil {
		event := kafka.ReportEvent{
			ReportID:   report.ID,
			UserID:     report.UserID,
			Name:       report.Name,
			ProductIDs: report.ProductIDs(),
		}
		if err := h.kafkaPublisher.PublishReportEvent(r.Context(), kafka.EventTypeReportCreated, event); err != nil {
			logger.Logger.Error().Err(err).Str("report_id", report.ID).Msg("Failed to publish report created event")
		}
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Report created successfully",
		Data:    report,
	})
}

// RenameReport handles PATCH /api/reports/{id}
func (h *ReportHandler) RenameReport(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["id"]

	var req renameReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.renameHandler.Handle(command.RenameReportCommand{
		ReportID: reportID,
		NewName:  req.Name,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   validationErr.Error(),
			})
			return
		}
		if errors.Is(err, domain.ErrReportNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Report not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Str("report_id", reportID).Msg("Failed to rename report")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to rename report",
		})
		return
	}

	if h.kafkaPublisher != nil {
		event := kafka.ReportEvent{
			ReportID: reportID,
			Name:     req.Name,
		}
		if err := h.kafkaPublisher.PublishReportEvent(r.Context(), kafka.EventTypeReportRenamed, event); err != nil {
			logger.Logger.Error().Err(err).Str("report_id", reportID).Msg("Failed to publish report renamed event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Report renamed successfully",
	})
}

// DeleteReport handles DELETE /api/reports/{id}
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteReportCommand{ReportID: reportID}); err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Report not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Str("report_id", reportID).Msg("Failed to delete report")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to delete report",
		})
		return
	}

	if h.kafkaPublisher != nil {
		event := kafka.ReportEvent{ReportID: reportID}
		if err := h.kafkaPublisher.PublishReportEvent(r.Context(), kafka.EventTypeReportDeleted, event); err != nil {
			logger.Logger.Error().Err(err).Str("report_id", reportID).Msg("Failed to publish report deleted event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Report deleted successfully",
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
