package catalogs

import "io"

// ImageInput carries an uploaded image file. The original filename is only
// used for its extension.
type ImageInput struct {
	Filename string
	Data     io.Reader
}

// CreateInput holds the validated payload to create a catalog.
type CreateInput struct {
	Name  string
	Image *ImageInput
}

// UpdateInput holds optional mutation values for a catalog. Nil fields are
// left unchanged.
type UpdateInput struct {
	Name  *string
	Image *ImageInput
}
