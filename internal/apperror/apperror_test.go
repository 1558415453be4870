package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariants(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		sentinel error
		status   int
		msg      string
	}{
		{"not found", NotFound("Article does not exist"), ErrNotFound, http.StatusNotFound, "Article does not exist"},
		{"invalid object", InvalidObject(), ErrInvalidObject, http.StatusBadRequest, "Invalid Object"},
		{"invalid query", InvalidQuery("Invalid query"), ErrInvalidQuery, http.StatusBadRequest, "Invalid query"},
		{"bad request", BadRequest(), ErrBadRequest, http.StatusBadRequest, "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.msg, tt.err.Msg)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("listing articles: %w", InvalidQuery("Invalid query"))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.True(t, errors.Is(wrapped, ErrInvalidQuery))
}
