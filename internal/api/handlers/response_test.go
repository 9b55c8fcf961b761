package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "стол не найден")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"стол не найден"}`, rec.Body.String())
}

func TestRespondConflictWarning(t *testing.T) {
	rec := httptest.NewRecorder()
	next := time.Date(2025, 10, 15, 21, 0, 0, 0, time.UTC)

	RespondConflictWarning(rec, "подтвердите", next)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":409,"message":"подтвердите","nextBookingAt":"2025-10-15T21:00:00"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Анна"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Анна", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Анна","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &dst), errEmptyBody)
}

func TestRespondJSON_NilPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}
