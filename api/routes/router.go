package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insight24/insight-backend/api/controllers"
	"github.com/insight24/insight-backend/api/middleware"
	authsvc "github.com/insight24/insight-backend/internal/auth"
	catalogsvc "github.com/insight24/insight-backend/internal/catalogs"
	productsvc "github.com/insight24/insight-backend/internal/products"
	requestsvc "github.com/insight24/insight-backend/internal/requests"
	"github.com/insight24/insight-backend/pkg/config"
	"github.com/insight24/insight-backend/pkg/logger"
	"github.com/insight24/insight-backend/pkg/metrics"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              controllers.Pinger
	Users           middleware.UserFinder
	AuthService     authsvc.Service
	ProductService  productsvc.Service
	CatalogService  catalogsvc.Service
	RequestService  requestsvc.Service
	MetricsRegistry *prometheus.Registry
}

// NewRouter builds the chi router with the full middleware chain and all
// public and admin routes.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	var registerer prometheus.Registerer
	if p.MetricsRegistry != nil {
		registerer = p.MetricsRegistry
	}
	httpMetrics := metrics.NewHTTPMetrics(registerer)

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(p.Config.CORS),
	)

	maxUpload := p.Config.Uploads.MaxUploadBytes()
	requireAuth := middleware.Auth(p.Config.JWT, p.Users, p.Logger)

	r.Get("/healthz", controllers.Healthz(p.DB, p.Logger))
	if p.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Post("/auth/login", controllers.Login(p.AuthService, p.Logger))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(p.ProductService, p.Logger))
		r.Get("/{productID}", controllers.GetProduct(p.ProductService, p.Logger))
		r.With(requireAuth).Post("/", controllers.CreateProduct(p.ProductService, maxUpload, p.Logger))
		r.With(requireAuth).Put("/{productID}", controllers.UpdateProduct(p.ProductService, maxUpload, p.Logger))
		r.With(requireAuth).Delete("/{productID}", controllers.DeleteProduct(p.ProductService, p.Logger))
	})

	r.Route("/catalogs", func(r chi.Router) {
		r.Get("/", controllers.ListCatalogs(p.CatalogService, p.Logger))
		r.Get("/{catalogID}", controllers.GetCatalog(p.CatalogService, p.Logger))
		r.With(requireAuth).Post("/", controllers.CreateCatalog(p.CatalogService, maxUpload, p.Logger))
		r.With(requireAuth).Put("/{catalogID}", controllers.UpdateCatalog(p.CatalogService, maxUpload, p.Logger))
		r.With(requireAuth).Delete("/{catalogID}", controllers.DeleteCatalog(p.CatalogService, p.Logger))
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", controllers.CreateRequest(p.RequestService, p.Logger))
		r.With(requireAuth).Get("/", controllers.ListRequests(p.RequestService, p.Logger))
	})

	uploads := http.StripPrefix(p.Config.Uploads.PublicPrefix+"/", http.FileServer(http.Dir(p.Config.Uploads.Dir)))
	r.Method(http.MethodGet, p.Config.Uploads.PublicPrefix+"/*", uploads)

	return r
}
