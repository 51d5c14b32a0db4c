package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nrivas/marketscope/internal/seller/usecase/query"
	"github.com/nrivas/marketscope/pkg/logger"
)

// SellerHandler handles HTTP requests for seller analysis.
type SellerHandler struct {
	listHandler     *query.ListSellersHandler
	productsHandler *query.SellerProductsHandler
	compareHandler  *query.CompareSellersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSellerHandler creates a new seller handler using dependency injection;
// used by Wire.
func NewSellerHandler(
	listHandler *query.ListSellersHandler,
	productsHandler *query.SellerProductsHandler,
	compareHandler *query.CompareSellersHandler,
) *SellerHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seller_service_requests_total",
			Help: "Total number of requests to seller endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seller_service_request_duration_seconds",
			Help:    "Duration of seller requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SellerHandler{
		listHandler:     listHandler,
		productsHandler: productsHandler,
		compareHandler:  compareHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
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

func (h *SellerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *SellerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sellers", h.metricsMiddleware("/api/sellers", h.ListSellers)).Methods("GET")
	router.HandleFunc("/api/sellers/compare", h.metricsMiddleware("/api/sellers/compare", h.CompareSellers)).Methods("GET")
	router.HandleFunc("/api/sellers/{id}/products", h.metricsMiddleware("/api/sellers/{id}/products", h.SellerProducts)).Methods("GET")
}

// ListSellers handles GET /api/sellers
func (h *SellerHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.listHandler.Handle(query.ListSellersQuery{
		Marketplace: r.URL.Query().Get("marketplace"),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list sellers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list sellers",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"sellers": sellers,
			"total":   len(sellers),
		},
	})
}

// SellerProducts handles GET /api/sellers/{id}/products
func (h *SellerHandler) SellerProducts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid seller id",
		})
		return
	}

	listings, err := h.productsHandler.Handle(query.SellerProductsQuery{SellerID: uint(id)})
	if err != nil {
		logger.Logger.Error().Err(err).Uint64("seller_id", id).Msg("Failed to list seller products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list seller products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    listings,
	})
}

// CompareSellers handles GET /api/sellers/compare
func (h *SellerHandler) CompareSellers(w http.ResponseWriter, r *http.Request) {
	q := query.CompareSellersQuery{}

	for _, v := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			q.SellerIDs = append(q.SellerIDs, uint(id))
		}
	}
	if len(q.SellerIDs) == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "At least one seller id is required",
		})
		return
	}

	if v := r.URL.Query().Get("category"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			categoryID := uint(id)
			q.CategoryID = &categoryID
		}
	}

	comparisons, err := h.compareHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compare sellers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compare sellers",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    comparisons,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
