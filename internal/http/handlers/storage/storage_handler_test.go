package storage_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/http/handlers"
	"mdc-dispatch/internal/http/handlers/mocks"
	storageh "mdc-dispatch/internal/http/handlers/storage"
	repo "mdc-dispatch/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStorageHandler_Get(t *testing.T) {
	mockService := mocks.NewMockStorageService(t)

	mockService.On("Get", mock.Anything, "settings").Return(&api.StorageEntrySchema{
		Key:   "settings",
		Value: json.RawMessage(`{"theme":"dark"}`),
	}, nil)

	handler := storageh.NewStorageHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/storage?key=settings", nil)
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"key":"settings","value":{"theme":"dark"}}`, rr.Body.String())
}

func TestStorageHandler_Get_MissingKey(t *testing.T) {
	mockService := mocks.NewMockStorageService(t)

	handler := storageh.NewStorageHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/storage", nil)
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
	assert.Equal(t, "key is required", resp.Error.Message)
	mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestStorageHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockStorageService(t)

	mockService.On("Get", mock.Anything, "missing").Return((*api.StorageEntrySchema)(nil), repo.ErrNotFound)

	handler := storageh.NewStorageHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/storage?key=missing", nil)
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestStorageHandler_Get_ServiceError(t *testing.T) {
	mockService := mocks.NewMockStorageService(t)

	mockService.On("Get", mock.Anything, "settings").Return((*api.StorageEntrySchema)(nil), errors.New("db down"))

	handler := storageh.NewStorageHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/storage?key=settings", nil)
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

func TestStorageHandler_Put(t *testing.T) {
	mockService := mocks.NewMockStorageService(t)

	mockService.On("Put", mock.Anything, "settings", mock.MatchedBy(func(v json.RawMessage) bool {
		return string(v) == `{"theme":"dark"}`
	})).Return(nil)

	handler := storageh.NewStorageHandler(handlers.NewLogger(), mockService)

	body := `{"key":"settings","value":{"theme":"dark"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/storage", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Put(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.StoredResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "settings", resp.Key)
}

func TestStorageHandler_Put_MissingKey(t *testing.T) {
	mockService := mocks.NewMockStorageService(t)

	handler := storageh.NewStorageHandler(handlers.NewLogger(), mockService)

	body := `{"value":{"theme":"dark"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/storage", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Put(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Key")
	mockService.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestStorageHandler_Put_BadJSON(t *testing.T) {
	mockService := mocks.NewMockStorageService(t)

	handler := storageh.NewStorageHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/storage", bytes.NewBufferString("{bad"))
	rr := httptest.NewRecorder()

	handler.Put(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}
