package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/insight24/insight-backend/api/responses"
	"github.com/insight24/insight-backend/api/validators"
	productsvc "github.com/insight24/insight-backend/internal/products"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"github.com/insight24/insight-backend/pkg/logger"
)

// ListProducts returns all products, optionally filtered by the catalog_id
// query parameter.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var catalogID *uuid.UUID
		if raw := r.URL.Query().Get("catalog_id"); raw != "" {
			id, err := validators.PathUUID("catalog_id", raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			catalogID = &id
		}

		rows, err := svc.List(r.Context(), catalogID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// GetProduct returns a single product by id.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.PathUUID("product_id", chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// CreateProduct creates a product from a multipart form, optionally storing
// an uploaded image.
func CreateProduct(svc productsvc.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		if err := validators.ParseMultipartForm(r, maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := productCreateInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// UpdateProduct applies the supplied multipart form fields to an existing
// product. Absent fields keep their stored values.
func UpdateProduct(svc productsvc.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.PathUUID("product_id", chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := validators.ParseMultipartForm(r, maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := productUpdateInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// DeleteProduct removes a product and its stored image.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.PathUUID("product_id", chi.URLParam(r, "productID"))
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

func productCreateInput(r *http.Request) (productsvc.CreateInput, error) {
	title, err := validators.RequiredString(r, "title")
	if err != nil {
		return productsvc.CreateInput{}, err
	}

	rawPrice, err := validators.RequiredString(r, "price")
	if err != nil {
		return productsvc.CreateInput{}, err
	}
	price, err := validators.Price("price", rawPrice)
	if err != nil {
		return productsvc.CreateInput{}, err
	}

	quantity := 0
	if raw, ok := validators.FormValue(r, "quantity"); ok {
		quantity, err = validators.Quantity("quantity", raw)
		if err != nil {
			return productsvc.CreateInput{}, err
		}
	}

	input := productsvc.CreateInput{
		Title:       title,
		Price:       price,
		Quantity:    quantity,
		Description: validators.OptionalString(r, "description"),
	}

	if raw, ok := validators.FormValue(r, "catalog_id"); ok {
		parsed, err := validators.NullableUUID("catalog_id", raw)
		if err != nil {
			return productsvc.CreateInput{}, err
		}
		if parsed.Valid {
			id := parsed.UUID
			input.CatalogID = &id
		}
	}

	image, err := imageInput(r)
	if err != nil {
		return productsvc.CreateInput{}, err
	}
	input.Image = image

	return input, nil
}

func productUpdateInput(r *http.Request) (productsvc.UpdateInput, error) {
	var input productsvc.UpdateInput

	if raw, ok := validators.FormValue(r, "title"); ok {
		title := raw
		input.Title = &title
	}
	if raw, ok := validators.FormValue(r, "price"); ok {
		price, err := validators.Price("price", raw)
		if err != nil {
			return productsvc.UpdateInput{}, err
		}
		input.Price = &price
	}
	if raw, ok := validators.FormValue(r, "quantity"); ok {
		quantity, err := validators.Quantity("quantity", raw)
		if err != nil {
			return productsvc.UpdateInput{}, err
		}
		input.Quantity = &quantity
	}
	if desc := validators.OptionalString(r, "description"); desc != nil {
		input.Description = desc
	}
	if raw, ok := validators.FormValue(r, "catalog_id"); ok {
		parsed, err := validators.NullableUUID("catalog_id", raw)
		if err != nil {
			return productsvc.UpdateInput{}, err
		}
		input.CatalogID = &parsed
	}

	image, err := imageInput(r)
	if err != nil {
		return productsvc.UpdateInput{}, err
	}
	input.Image = image

	return input, nil
}

func imageInput(r *http.Request) (*productsvc.ImageInput, error) {
	file, header, err := validators.FormFile(r, "image")
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, nil
	}
	return &productsvc.ImageInput{Filename: header.Filename, Data: file}, nil
}
