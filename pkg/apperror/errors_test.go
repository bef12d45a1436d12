package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := New(CodeNoRoute, "no route")
	assert.Equal(t, "[NO_ROUTE] no route", err.Error())

	withField := NewWithField(CodeInvalidArgument, "from is required", "from")
	assert.Equal(t, "[INVALID_ARGUMENT] from is required (field: from)", withField.Error())
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to load resort graph")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeInternal, Code(err))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("context: %w", New(CodeSameLocation, "same location"))

	assert.True(t, Is(err, CodeSameLocation))
	assert.False(t, Is(err, CodeNoRoute))
	assert.False(t, Is(errors.New("plain"), CodeSameLocation))
}

func TestCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, Code(New(CodeNotFound, "missing")))
	assert.Equal(t, CodeInternal, Code(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeSameLocation, http.StatusBadRequest},
		{CodeUnsupportedFormat, http.StatusBadRequest},
		{CodeMalformedData, http.StatusUnprocessableEntity},
		{CodeDanglingEdge, http.StatusUnprocessableEntity},
		{CodeSelfLoop, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeNoRoute, http.StatusNotFound},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "test").HTTPStatus())
		})
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestWithDetails(t *testing.T) {
	err := New(CodeMalformedData, "bad edge").
		WithDetails("edgeId", "s1").
		WithField("edges")

	require.Contains(t, err.Details, "edgeId")
	assert.Equal(t, "s1", err.Details["edgeId"])
	assert.Equal(t, "edges", err.Field)
}

func TestSeverity(t *testing.T) {
	assert.True(t, IsWarning(NewWarning(CodeNoRoute, "no route")))
	assert.True(t, IsCritical(NewCritical(CodeInternal, "db down")))
	assert.False(t, IsCritical(New(CodeInternal, "regular")))
	assert.Equal(t, "warning", SeverityWarning.String())
}
