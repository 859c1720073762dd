package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	requestsvc "github.com/insight24/insight-backend/internal/requests"
	"github.com/insight24/insight-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
)

type stubRequestService struct {
	created *requestsvc.CreateInput
	rows    []models.Request
	err     error
}

func (s *stubRequestService) Create(_ context.Context, input requestsvc.CreateInput) (*models.Request, error) {
	s.created = &input
	if s.err != nil {
		return nil, s.err
	}
	return &models.Request{ID: uuid.New(), Name: input.Name, Phone: input.Phone, CreatedAt: time.Now()}, nil
}

func (s *stubRequestService) List(_ context.Context) ([]models.Request, error) {
	return s.rows, s.err
}

func TestCreateRequestReturnsCreated(t *testing.T) {
	svc := &stubRequestService{}
	handler := CreateRequest(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{"name":"Ivan","phone":"+79990001122"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	require.Equal(t, "Ivan", svc.created.Name)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "+79990001122", body["phone"])
	require.NotEmpty(t, body["created_at"])
}

func TestCreateRequestRejectsMissingPhone(t *testing.T) {
	handler := CreateRequest(&stubRequestService{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{"name":"Ivan"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRequestsReturnsRows(t *testing.T) {
	svc := &stubRequestService{rows: []models.Request{
		{ID: uuid.New(), Name: "Ivan", Phone: "+7999"},
		{ID: uuid.New(), Name: "Olga", Phone: "+7888"},
	}}
	handler := ListRequests(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
}
