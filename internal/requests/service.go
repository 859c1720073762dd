package requests

import (
	"context"
	"fmt"
	"strings"

	"github.com/insight24/insight-backend/pkg/db/models"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
)

// Service exposes contact request operations. Create serves the public
// form; List is reserved for authenticated callers.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Request, error)
	List(ctx context.Context) ([]models.Request, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a contact request service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("request repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Request, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required").WithDetails(map[string]any{"field": "name"})
	}
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required").WithDetails(map[string]any{"field": "phone"})
	}

	request := &models.Request{Name: name, Phone: phone}
	if _, err := s.repo.Create(ctx, request); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create request")
	}
	return request, nil
}

func (s *service) List(ctx context.Context) ([]models.Request, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list requests")
	}
	return rows, nil
}
