package products

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/insight24/insight-backend/pkg/db/models"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"gorm.io/gorm"
)

const notFoundMessage = "product not found"

// FileStore abstracts the upload directory used for product images.
type FileStore interface {
	Save(r io.Reader, originalName string) (string, error)
	Remove(publicPath string) error
}

// Service exposes product management operations.
type Service interface {
	List(ctx context.Context, catalogID *uuid.UUID) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, input CreateInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  *Repository
	files FileStore
}

// NewService constructs a product service instance.
func NewService(repo *Repository, files FileStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if files == nil {
		return nil, fmt.Errorf("file store required")
	}
	return &service{repo: repo, files: files}, nil
}

func (s *service) List(ctx context.Context, catalogID *uuid.UUID) ([]models.Product, error) {
	rows, err := s.repo.List(ctx, catalogID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required").WithDetails(map[string]any{"field": "title"})
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative").WithDetails(map[string]any{"field": "price"})
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative").WithDetails(map[string]any{"field": "quantity"})
	}

	product := &models.Product{
		Title:       title,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: input.Description,
		CatalogID:   input.CatalogID,
	}

	if input.Image != nil {
		publicPath, err := s.files.Save(input.Image.Data, input.Image.Filename)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store product image")
		}
		product.Image = &publicPath
	}

	if _, err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return product, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(product, input); err != nil {
		return nil, err
	}

	if input.Image != nil {
		// The old file is owned by this row; replace it before recording
		// the new path.
		if product.Image != nil {
			if err := s.files.Remove(*product.Image); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove previous product image")
			}
		}
		publicPath, err := s.files.Save(input.Image.Data, input.Image.Filename)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store product image")
		}
		product.Image = &publicPath
	}

	if _, err := s.repo.Save(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}

	if product.Image != nil {
		if err := s.files.Remove(*product.Image); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove product image")
		}
	}
	return nil
}

// applyUpdate copies supplied fields onto the row, leaving the rest intact.
func applyUpdate(product *models.Product, input UpdateInput) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "title cannot be blank").WithDetails(map[string]any{"field": "title"})
		}
		product.Title = title
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative").WithDetails(map[string]any{"field": "price"})
		}
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative").WithDetails(map[string]any{"field": "quantity"})
		}
		product.Quantity = *input.Quantity
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CatalogID != nil {
		if input.CatalogID.Valid {
			id := input.CatalogID.UUID
			product.CatalogID = &id
		} else {
			product.CatalogID = nil
		}
	}
	return nil
}
