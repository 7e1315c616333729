package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/agreement-server/internal/testutil"
)

func TestHealth(t *testing.T) {
	t.Run("livez", func(t *testing.T) {
		h := NewHealth(&MockPinger{}, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Livez(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		db := &MockPinger{}
		db.On("Ping", mock.Anything).Return(nil)
		h := NewHealth(db, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		db.AssertExpectations(t)
	})

	t.Run("database down", func(t *testing.T) {
		db := &MockPinger{}
		db.On("Ping", mock.Anything).Return(errors.New("connection refused"))
		h := NewHealth(db, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"not ready"}`, rec.Body.String())
	})
}
