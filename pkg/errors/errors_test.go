package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(NewNotFoundError("recommendation", "abc")))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(NewValidationError("distance", "required")))
	assert.Equal(t, http.StatusBadGateway, GetHTTPStatus(NewUpstreamError("gemini", "timeout", nil)))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(fmt.Errorf("plain error")))
}

func TestGetHTTPStatus_Wrapped(t *testing.T) {
	// errors.As must see through fmt.Errorf wrapping
	wrapped := fmt.Errorf("recommend: %w", NewUpstreamError("maps", "ZERO_RESULTS", nil))
	assert.Equal(t, http.StatusBadGateway, GetHTTPStatus(wrapped))
	assert.Equal(t, "UPSTREAM_ERROR", GetErrorCode(wrapped))
	assert.True(t, IsUpstream(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewUpstreamError("maps", "request failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "maps error")
	assert.Contains(t, err.Error(), "connection refused")
}
