package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	authsvc "github.com/insight24/insight-backend/internal/auth"
	catalogsvc "github.com/insight24/insight-backend/internal/catalogs"
	productsvc "github.com/insight24/insight-backend/internal/products"
	requestsvc "github.com/insight24/insight-backend/internal/requests"
	pkgAuth "github.com/insight24/insight-backend/pkg/auth"
	"github.com/insight24/insight-backend/pkg/config"
	"github.com/insight24/insight-backend/pkg/db/models"
	"github.com/insight24/insight-backend/pkg/logger"
)

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return &authsvc.LoginResponse{AccessToken: "token", TokenType: "bearer"}, nil
}

type stubProductService struct{}

func (stubProductService) List(context.Context, *uuid.UUID) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (stubProductService) Get(_ context.Context, id uuid.UUID) (*models.Product, error) {
	return &models.Product{ID: id}, nil
}

func (stubProductService) Create(_ context.Context, input productsvc.CreateInput) (*models.Product, error) {
	return &models.Product{ID: uuid.New(), Title: input.Title}, nil
}

func (stubProductService) Update(_ context.Context, id uuid.UUID, _ productsvc.UpdateInput) (*models.Product, error) {
	return &models.Product{ID: id}, nil
}

func (stubProductService) Delete(context.Context, uuid.UUID) error { return nil }

type stubCatalogService struct{}

func (stubCatalogService) List(context.Context) ([]models.Catalog, error) {
	return []models.Catalog{}, nil
}

func (stubCatalogService) Get(_ context.Context, id uuid.UUID) (*models.Catalog, error) {
	return &models.Catalog{ID: id}, nil
}

func (stubCatalogService) Create(_ context.Context, input catalogsvc.CreateInput) (*models.Catalog, error) {
	return &models.Catalog{ID: uuid.New(), Name: input.Name}, nil
}

func (stubCatalogService) Update(_ context.Context, id uuid.UUID, _ catalogsvc.UpdateInput) (*models.Catalog, error) {
	return &models.Catalog{ID: id}, nil
}

func (stubCatalogService) Delete(context.Context, uuid.UUID) error { return nil }

type stubRequestService struct{}

func (stubRequestService) Create(_ context.Context, input requestsvc.CreateInput) (*models.Request, error) {
	return &models.Request{ID: uuid.New(), Name: input.Name, Phone: input.Phone}, nil
}

func (stubRequestService) List(context.Context) ([]models.Request, error) {
	return []models.Request{}, nil
}

type stubUserFinder struct{}

func (stubUserFinder) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return &models.User{Username: username}, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func testRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()

	uploadsDir := t.TempDir()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "insight-api", ExpirationMinutes: 60},
		Uploads: config.UploadsConfig{
			Dir:          uploadsDir,
			PublicPrefix: "/uploads",
			MaxUploadMB:  1,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:4000"}},
	}

	logg := logger.New(logger.Options{ServiceName: "routes-test", Level: zerolog.ErrorLevel, Output: io.Discard})

	handler := NewRouter(RouterParams{
		Config:          cfg,
		Logger:          logg,
		DB:              stubPinger{},
		Users:           stubUserFinder{},
		AuthService:     stubAuthService{},
		ProductService:  stubProductService{},
		CatalogService:  stubCatalogService{},
		RequestService:  stubRequestService{},
		MetricsRegistry: prometheus.NewRegistry(),
	})
	return handler, cfg
}

func bearerToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), "insight")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	handler, _ := testRouter(t)

	for _, path := range []string{"/products", "/catalogs", "/healthz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{"name":"Ivan","phone":"+7999"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	handler, cfg := testRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/products"},
		{http.MethodPut, "/products/" + uuid.NewString()},
		{http.MethodDelete, "/products/" + uuid.NewString()},
		{http.MethodPost, "/catalogs"},
		{http.MethodPut, "/catalogs/" + uuid.NewString()},
		{http.MethodDelete, "/catalogs/" + uuid.NewString()},
		{http.MethodGet, "/requests"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, tc.method+" "+tc.path)
	}

	req := httptest.NewRequest(http.MethodDelete, "/products/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", bearerToken(t, cfg))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUploadsServedFromDisk(t *testing.T) {
	handler, cfg := testRouter(t)

	name := "stored.jpg"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Uploads.Dir, name), []byte("jpeg-bytes"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+name, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "jpeg-bytes", rec.Body.String())
}

func TestUnknownUploadReturns404(t *testing.T) {
	handler, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/uploads/missing.jpg", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthzReportsDatabaseFailure(t *testing.T) {
	uploadsDir := t.TempDir()
	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "router-test-secret", Issuer: "insight-api", ExpirationMinutes: 60},
		Uploads: config.UploadsConfig{Dir: uploadsDir, PublicPrefix: "/uploads", MaxUploadMB: 1},
	}
	logg := logger.New(logger.Options{ServiceName: "routes-test", Level: zerolog.ErrorLevel, Output: io.Discard})

	handler := NewRouter(RouterParams{
		Config:         cfg,
		Logger:         logg,
		DB:             stubPinger{err: context.DeadlineExceeded},
		Users:          stubUserFinder{},
		AuthService:    stubAuthService{},
		ProductService: stubProductService{},
		CatalogService: stubCatalogService{},
		RequestService: stubRequestService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
