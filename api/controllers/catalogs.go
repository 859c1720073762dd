package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/insight24/insight-backend/api/responses"
	"github.com/insight24/insight-backend/api/validators"
	catalogsvc "github.com/insight24/insight-backend/internal/catalogs"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"github.com/insight24/insight-backend/pkg/logger"
)

// ListCatalogs returns all catalogs.
func ListCatalogs(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// GetCatalog returns a single catalog by id.
func GetCatalog(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.PathUUID("catalog_id", chi.URLParam(r, "catalogID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		catalog, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalog)
	}
}

// CreateCatalog creates a catalog from a multipart form, optionally storing
// an uploaded image.
func CreateCatalog(svc catalogsvc.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		if err := validators.ParseMultipartForm(r, maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		name, err := validators.RequiredString(r, "name")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		image, err := catalogImageInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		catalog, err := svc.Create(r.Context(), catalogsvc.CreateInput{Name: name, Image: image})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, catalog)
	}
}

// UpdateCatalog applies the supplied multipart form fields to an existing
// catalog.
func UpdateCatalog(svc catalogsvc.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.PathUUID("catalog_id", chi.URLParam(r, "catalogID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := validators.ParseMultipartForm(r, maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input catalogsvc.UpdateInput
		if raw, ok := validators.FormValue(r, "name"); ok {
			name := raw
			input.Name = &name
		}

		image, err := catalogImageInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.Image = image

		catalog, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalog)
	}
}

// DeleteCatalog removes a catalog, detaching any products that reference it.
func DeleteCatalog(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.PathUUID("catalog_id", chi.URLParam(r, "catalogID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

func catalogImageInput(r *http.Request) (*catalogsvc.ImageInput, error) {
	file, header, err := validators.FormFile(r, "image")
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, nil
	}
	return &catalogsvc.ImageInput{Filename: header.Filename, Data: file}, nil
}
