package products

import (
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageInput carries an uploaded image file. The original filename is only
// used for its extension.
type ImageInput struct {
	Filename string
	Data     io.Reader
}

// CreateInput holds the validated payload to create a product.
type CreateInput struct {
	Title       string
	Price       decimal.Decimal
	Quantity    int
	Description *string
	CatalogID   *uuid.UUID
	Image       *ImageInput
}

// UpdateInput holds optional mutation values for a product. Nil fields are
// left unchanged; CatalogID distinguishes "clear the reference" (invalid
// NullUUID) from "not supplied" (nil).
type UpdateInput struct {
	Title       *string
	Price       *decimal.Decimal
	Quantity    *int
	Description *string
	CatalogID   *uuid.NullUUID
	Image       *ImageInput
}
