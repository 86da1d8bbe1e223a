package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sportshop/storefront/internal/catalog/domain"
	"github.com/sportshop/storefront/internal/catalog/usecase/query"
	"github.com/sportshop/storefront/pkg/logger"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	listHandler     *query.ListProductsHandler
	getHandler      *query.GetProductHandler
	featuredHandler *query.GetFeaturedHandler
	relatedHandler  *query.GetRelatedHandler
	metaHandler     *query.GetMetaHandler

	repo           domain.Repository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	catalogSize    prometheus.Gauge
}

// NewProductHandler creates a new catalog handler
func NewProductHandler(repo domain.Repository) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products_total",
		Help: "Number of products in the loaded catalog",
	})

	prometheus.MustRegister(requestCounter, requestLatency, catalogSize)
	catalogSize.Set(float64(repo.Count()))

	return &ProductHandler{
		listHandler:     query.NewListProductsHandler(repo),
		getHandler:      query.NewGetProductHandler(repo),
		featuredHandler: query.NewGetFeaturedHandler(repo),
		relatedHandler:  query.NewGetRelatedHandler(repo),
		metaHandler:     query.NewGetMetaHandler(repo),
		repo:            repo,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		catalogSize:     catalogSize,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the catalog routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/featured", h.metricsMiddleware("/api/products/featured", h.GetFeatured)).Methods("GET")
	router.HandleFunc("/api/products/meta", h.metricsMiddleware("/api/products/meta", h.GetMeta)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}/related", h.metricsMiddleware("/api/products/{id}/related", h.GetRelated)).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	spec := parseFilterSpec(r)

	products, err := h.listHandler.Handle(query.ListProductsQuery{Spec: spec})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// GetFeatured handles GET /api/products/featured
func (h *ProductHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.featuredHandler.Handle(query.GetFeaturedQuery{Limit: limit})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get featured products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get featured products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// GetRelated handles GET /api/products/{id}/related
func (h *ProductHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.relatedHandler.Handle(query.GetRelatedQuery{ProductID: id, Limit: limit})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// GetMeta handles GET /api/products/meta
func (h *ProductHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.metaHandler.Handle(query.GetMetaQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get catalog metadata")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get catalog metadata",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    meta,
	})
}

// parseFilterSpec builds a filter specification from query parameters
func parseFilterSpec(r *http.Request) domain.FilterSpec {
	q := r.URL.Query()

	spec := domain.FilterSpec{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		SortBy:   q.Get("sort"),
	}
	spec.MinPrice, _ = strconv.ParseFloat(q.Get("min_price"), 64)
	spec.MaxPrice, _ = strconv.ParseFloat(q.Get("max_price"), 64)
	spec.MinRating, _ = strconv.ParseFloat(q.Get("min_rating"), 64)

	if brands := q.Get("brands"); brands != "" {
		for _, b := range strings.Split(brands, ",") {
			if b = strings.TrimSpace(b); b != "" {
				spec.Brands = append(spec.Brands, b)
			}
		}
	}
	return spec
}
