package validators

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseMultipartForm reads the request body as multipart form data with an
// upload size cap.
func ParseMultipartForm(r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
	}
	return nil
}

// FormValue returns the value of a supplied form field. The second return
// distinguishes a field that was absent from one sent empty.
func FormValue(r *http.Request, field string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// RequiredString returns a trimmed, non-empty form value or a validation
// error naming the field.
func RequiredString(r *http.Request, field string) (string, error) {
	value, ok := FormValue(r, field)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s is required", field)).
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

// OptionalString returns the trimmed form value, or nil when the field was
// not supplied.
func OptionalString(r *http.Request, field string) *string {
	value, ok := FormValue(r, field)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	return &trimmed
}

// Price parses a decimal form value.
func Price(field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("%s must be a decimal number", field)).
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

// Quantity parses an integer form value. Empty input maps to zero, matching
// forms that leave the count blank.
func Quantity(field, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("%s must be an integer", field)).
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

// NullableUUID parses a form value into a NullUUID. An empty value is a
// valid "clear the reference" signal.
func NullableUUID(field, raw string) (uuid.NullUUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.NullUUID{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("%s must be a UUID", field)).
			WithDetails(map[string]any{"field": field})
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// PathUUID parses a URL path segment into a UUID.
func PathUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("%s must be a UUID", field)).
			WithDetails(map[string]any{"field": field})
	}
	return id, nil
}

// FormFile returns the first uploaded file under the field name, or
// (nil, nil, nil) when the field was not supplied.
func FormFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, nil, nil
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("%s upload is invalid", field)).
			WithDetails(map[string]any{"field": field})
	}
	return file, header, nil
}
