// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrTooManyFiles indicates a multipart upload exceeded the file count limit
type ErrTooManyFiles struct {
	Count int
	Limit int
}

func (e *ErrTooManyFiles) Error() string {
	return fmt.Sprintf("too many files: got %d, limit is %d", e.Count, e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		tooMany     *ErrTooManyFiles
		unsupported *ingestion.ErrUnsupportedFormat
		empty       *ingestion.ErrEmptyDocument
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &tooMany):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &empty):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
