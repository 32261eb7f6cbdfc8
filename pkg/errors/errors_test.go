package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := New(ErrCodeColumnNotFound, "column %q not found", "column-7")
	assert.Equal(t, `COLUMN_NOT_FOUND: column "column-7" not found`, err.Error())
	assert.Nil(t, err.Unwrap())

	cause := errors.New("permission denied")
	wrapped := Wrap(ErrCodeStorage, cause, "save session")
	assert.Equal(t, "STORAGE_ERROR: save session: permission denied", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIs(t *testing.T) {
	inner := New(ErrCodeInvalidInput, "width must be 1-12")

	assert.True(t, Is(inner, ErrCodeInvalidInput))
	assert.False(t, Is(inner, ErrCodeConflict))
	assert.True(t, Is(fmt.Errorf("column set: %w", inner), ErrCodeInvalidInput))
	// the outermost coded error wins
	assert.True(t, Is(Wrap(ErrCodeStorage, inner, "save"), ErrCodeStorage))
	assert.False(t, Is(errors.New("plain"), ErrCodeInvalidInput))
	assert.False(t, Is(nil, ErrCodeInvalidInput))
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := New(ErrCodeTemplateNotFound, "no template named %q", "Header")
	assert.Equal(t, ErrCodeTemplateNotFound, GetCode(err))
	assert.Equal(t, `no template named "Header"`, UserMessage(err))

	plain := errors.New("disk full")
	assert.Equal(t, Code(""), GetCode(plain))
	assert.Equal(t, "disk full", UserMessage(plain))
	assert.Equal(t, Code(""), GetCode(nil))
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeNotFound, "x"), true},
		{New(ErrCodeColumnNotFound, "x"), true},
		{Wrap(ErrCodeComponentNotFound, errors.New("inner"), "x"), true},
		{New(ErrCodeTemplateNotFound, "x"), true},
		{New(ErrCodeInvalidInput, "x"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := IsNotFound(tt.err); got != tt.want {
			t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", New(ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{"invalid operation", New(ErrCodeInvalidOperation, "x"), http.StatusBadRequest},
		{"column not found", New(ErrCodeColumnNotFound, "x"), http.StatusNotFound},
		{"template not found", New(ErrCodeTemplateNotFound, "x"), http.StatusNotFound},
		{"conflict", New(ErrCodeConflict, "x"), http.StatusConflict},
		{"unavailable", New(ErrCodeUnavailable, "x"), http.StatusServiceUnavailable},
		{"unsupported", New(ErrCodeUnsupported, "x"), http.StatusNotImplemented},
		{"storage", Wrap(ErrCodeStorage, errors.New("disk"), "x"), http.StatusInternalServerError},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
