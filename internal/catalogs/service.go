package catalogs

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

const notFoundMessage = "catalog not found"

// FileStore abstracts the upload directory used for catalog images.
type FileStore interface {
	Save(r io.Reader, originalName string) (string, error)
	Remove(publicPath string) error
}

// Service exposes catalog management operations.
type Service interface {
	List(ctx context.Context) ([]models.Catalog, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Catalog, error)
	Create(ctx context.Context, input CreateInput) (*models.Catalog, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Catalog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  *Repository
	files FileStore
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, files FileStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if files == nil {
		return nil, fmt.Errorf("file store required")
	}
	return &service{repo: repo, files: files}, nil
}

func (s *service) List(ctx context.Context) ([]models.Catalog, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list catalogs")
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Catalog, error) {
	catalog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load catalog")
	}
	return catalog, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Catalog, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required").WithDetails(map[string]any{"field": "name"})
	}

	catalog := &models.Catalog{Name: name}

	if input.Image != nil {
		publicPath, err := s.files.Save(input.Image.Data, input.Image.Filename)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store catalog image")
		}
		catalog.Image = &publicPath
	}

	if _, err := s.repo.Create(ctx, catalog); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create catalog")
	}
	return catalog, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Catalog, error) {
	catalog, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be blank").WithDetails(map[string]any{"field": "name"})
		}
		catalog.Name = name
	}

	if input.Image != nil {
		if catalog.Image != nil {
			if err := s.files.Remove(*catalog.Image); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove previous catalog image")
			}
		}
		publicPath, err := s.files.Save(input.Image.Data, input.Image.Filename)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store catalog image")
		}
		catalog.Image = &publicPath
	}

	if _, err := s.repo.Save(ctx, catalog); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update catalog")
	}
	return catalog, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	catalog, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete catalog")
	}

	if catalog.Image != nil {
		if err := s.files.Remove(*catalog.Image); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove catalog image")
		}
	}
	return nil
}
