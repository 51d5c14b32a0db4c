package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nrivas/marketscope/internal/catalog/domain"
	"github.com/nrivas/marketscope/internal/catalog/usecase/query"
	"github.com/nrivas/marketscope/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog read paths.
type CatalogHandler struct {
	resolveHandler    *query.ResolveCatalogHandler
	assembleHandler   *query.AssembleComparisonHandler
	listHandler       *query.ListListingsHandler
	getListingHandler *query.GetListingHandler
	priceHandler      *query.PriceHistoryHandler
	stockHandler      *query.StockHistoryHandler
	facetsHandler     *query.CharacteristicFacetsHandler
	categoriesHandler *query.ListCategoriesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewCatalogHandler creates a new catalog handler (manual DI).
func NewCatalogHandler(repo domain.CatalogRepository) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		query.NewResolveCatalogHandler(repo),
		query.NewAssembleComparisonHandler(repo),
		query.NewListListingsHandler(repo),
		query.NewGetListingHandler(repo),
		query.NewPriceHistoryHandler(repo),
		query.NewStockHistoryHandler(repo),
		query.NewCharacteristicFacetsHandler(repo),
		query.NewListCategoriesHandler(repo),
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency
// injection; used by Wire.
func NewCatalogHandlerWithDI(
	resolveHandler *query.ResolveCatalogHandler,
	assembleHandler *query.AssembleComparisonHandler,
	listHandler *query.ListListingsHandler,
	getListingHandler *query.GetListingHandler,
	priceHandler *query.PriceHistoryHandler,
	stockHandler *query.StockHistoryHandler,
	facetsHandler *query.CharacteristicFacetsHandler,
	categoriesHandler *query.ListCategoriesHandler,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of catalog request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)

	return &CatalogHandler{
		resolveHandler:    resolveHandler,
		assembleHandler:   assembleHandler,
		listHandler:       listHandler,
		getListingHandler: getListingHandler,
		priceHandler:      priceHandler,
		stockHandler:      stockHandler,
		facetsHandler:     facetsHandler,
		categoriesHandler: categoriesHandler,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		requestSummary:    requestSummary,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/catalog/products", h.metricsMiddleware("/api/catalog/products", h.ResolveCatalog)).Methods("GET")
	router.HandleFunc("/api/catalog/comparison", h.metricsMiddleware("/api/catalog/comparison", h.AssembleComparison)).Methods("GET")
	router.HandleFunc("/api/listings", h.metricsMiddleware("/api/listings", h.ListListings)).Methods("GET")
	router.HandleFunc("/api/listings/{id}", h.metricsMiddleware("/api/listings/{id}", h.GetListing)).Methods("GET")
	router.HandleFunc("/api/listings/{id}/price-history", h.metricsMiddleware("/api/listings/{id}/price-history", h.PriceHistory)).Methods("GET")
	router.HandleFunc("/api/listings/{id}/stock-history", h.metricsMiddleware("/api/listings/{id}/stock-history", h.StockHistory)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories/{id}/characteristics", h.metricsMiddleware("/api/categories/{id}/characteristics", h.CharacteristicFacets)).Methods("GET")
}

// RegisterHealthCheck registers the health check endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Dashboard service is healthy",
		})
	}).Methods("GET")
}

// parseListingFilter reads the filter set from query parameters. Multi-valued
// parameters accept both repetition and comma separation; characteristics
// arrive as a JSON object of name -> allowed values.
func parseListingFilter(r *http.Request) domain.ListingFilter {
	q := r.URL.Query()

	filter := domain.ListingFilter{
		Marketplaces: splitMulti(q["marketplace"]),
		CategoryIDs:  parseUintList(q["category"]),
		SellerIDs:    parseUintList(q["seller"]),
		InStockOnly:  q.Get("in_stock") == "true",
	}

	if v := q.Get("price_min"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMin = &min
		}
	}
	if v := q.Get("price_max"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMax = &max
		}
	}
	if v := q.Get("date_from"); v != "" {
		if from, err := time.Parse(time.RFC3339, v); err == nil {
			filter.ExtractedFrom = &from
		}
	}
	if v := q.Get("date_to"); v != "" {
		if to, err := time.Parse(time.RFC3339, v); err == nil {
			filter.ExtractedTo = &to
		}
	}
	if v := q.Get("characteristics"); v != "" {
		var characteristics map[string][]string
		if err := json.Unmarshal([]byte(v), &characteristics); err == nil {
			filter.Characteristics = characteristics
		}
	}

	return filter
}

func splitMulti(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseUintList(values []string) []uint {
	var out []uint
	for _, v := range splitMulti(values) {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			out = append(out, uint(id))
		}
	}
	return out
}

// ResolveCatalog handles GET /api/catalog/products
func (h *CatalogHandler) ResolveCatalog(w http.ResponseWriter, r *http.Request) {
	q := query.ResolveCatalogQuery{Filter: parseListingFilter(r)}

	products, err := h.resolveHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to resolve catalog")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to resolve catalog",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// AssembleComparison handles GET /api/catalog/comparison
func (h *CatalogHandler) AssembleComparison(w http.ResponseWriter, r *http.Request) {
	ids := parseUintList(r.URL.Query()["ids"])
	if len(ids) == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "At least one base product id is required",
		})
		return
	}

	products, err := h.assembleHandler.Handle(r.Context(), query.AssembleComparisonQuery{BaseProductIDs: ids})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to assemble comparison")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to assemble comparison",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// ListListings handles GET /api/listings
func (h *CatalogHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.listHandler.Handle(r.Context(), query.ListListingsQuery{Filter: parseListingFilter(r)})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list listings")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list listings",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"listings": rows,
			"total":    len(rows),
		},
	})
}

// GetListing handles GET /api/listings/{id}
func (h *CatalogHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.getListingHandler.Handle(r.Context(), query.GetListingQuery{ListingID: id})
	if err != nil {
		if err == query.ErrListingNotFound {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Listing not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Uint("listing_id", id).Msg("Failed to load listing")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load listing",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    detail,
	})
}

// PriceHistory handles GET /api/listings/{id}/price-history
func (h *CatalogHandler) PriceHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entries, err := h.priceHandler.Handle(r.Context(), query.PriceHistoryQuery{ListingID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("listing_id", id).Msg("Failed to load price history")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load price history",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    entries,
	})
}

// StockHistory handles GET /api/listings/{id}/stock-history
func (h *CatalogHandler) StockHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entries, err := h.stockHandler.Handle(r.Context(), query.StockHistoryQuery{ListingID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("listing_id", id).Msg("Failed to load stock history")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load stock history",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    entries,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle(r.Context())
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// CharacteristicFacets handles GET /api/categories/{id}/characteristics
func (h *CatalogHandler) CharacteristicFacets(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	facets, err := h.facetsHandler.Handle(r.Context(), query.CharacteristicFacetsQuery{CategoryID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("category_id", id).Msg("Failed to aggregate characteristic facets")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load characteristics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    facets,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
