package requests

import (
	"context"

	"github.com/insight24/insight-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes contact request persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all contact requests, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Request, error) {
	var rows []models.Request
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new contact request row.
func (r *Repository) Create(ctx context.Context, request *models.Request) (*models.Request, error) {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}
