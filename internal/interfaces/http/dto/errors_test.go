package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusForKind(t *testing.T) {
	tests := []struct {
		kind     shared.ErrorKind
		expected int
		status   string
	}{
		{shared.KindInvalidInput, http.StatusBadRequest, StatusInvalidInput},
		{shared.KindNotFound, http.StatusNotFound, StatusNotFound},
		{shared.KindConflict, http.StatusConflict, StatusConflict},
		{shared.KindInternalFailure, http.StatusInternalServerError, StatusInternalFailure},
		{shared.ErrorKind("Other"), http.StatusInternalServerError, StatusInternalFailure},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatusForKind(tt.kind))
			assert.Equal(t, tt.status, StatusForKind(tt.kind))
		})
	}
}

func TestNewErrorResponse_JSON(t *testing.T) {
	resp := NewErrorResponse(StatusConflict, "TARIFF_NOT_EFFECTIVE", "No tariff version", map[string]any{"tariff_id": 1})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"status": "Conflict",
		"message": "No tariff version",
		"error": {"code": "TARIFF_NOT_EFFECTIVE", "message": "No tariff version", "details": {"tariff_id": 1}}
	}`, string(body))
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2}, 42, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, StatusOK, resp.Status)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(42), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Nil(t, resp.Error)
}
