package web

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPError(t *testing.T) {
	err := NewHTTPError(http.StatusBadRequest)
	assert.Equal(t, "Bad Request", err.Message)
	assert.Equal(t, "code=400, message=Bad Request", err.Error())

	err = NewHTTPError(http.StatusNotFound, "no such page")
	assert.Equal(t, "no such page", err.Message)
}

func TestStatusAndBody(t *testing.T) {
	code, body := StatusAndBody(NewHTTPError(http.StatusTeapot, "short and stout"))
	assert.Equal(t, http.StatusTeapot, code)
	assert.Equal(t, "short and stout", body.Error)

	wrapped := fmt.Errorf("handler: %w", NewHTTPError(http.StatusForbidden))
	code, _ = StatusAndBody(wrapped)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = StatusAndBody(fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "boom", body.Error)
}
