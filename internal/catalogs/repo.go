package catalogs

import (
	"context"

	"github.com/google/uuid"
	"github.com/insight24/insight-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes catalog persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all catalogs.
func (r *Repository) List(ctx context.Context) ([]models.Catalog, error) {
	var rows []models.Catalog
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single catalog row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Catalog, error) {
	var catalog models.Catalog
	if err := r.db.WithContext(ctx).First(&catalog, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Create inserts a new catalog row.
func (r *Repository) Create(ctx context.Context, catalog *models.Catalog) (*models.Catalog, error) {
	if err := r.db.WithContext(ctx).Create(catalog).Error; err != nil {
		return nil, err
	}
	return catalog, nil
}

// Save writes every field of an existing catalog row.
func (r *Repository) Save(ctx context.Context, catalog *models.Catalog) (*models.Catalog, error) {
	if err := r.db.WithContext(ctx).Save(catalog).Error; err != nil {
		return nil, err
	}
	return catalog, nil
}

// Delete removes a catalog and detaches its products in a single
// transaction. Products referencing the catalog keep their rows but lose
// the reference.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("catalog_id = ?", id).
			Update("catalog_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Catalog{}).Error
	})
}
