package unit_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/http/handlers"
	"mdc-dispatch/internal/http/handlers/mocks"
	unith "mdc-dispatch/internal/http/handlers/unit"
	repo "mdc-dispatch/internal/repository"
	"mdc-dispatch/internal/service/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUnitHandler_List(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	now := time.Now().UTC().Truncate(time.Second)
	units := []api.UnitSchema{
		{ID: 1, UnitName: "Alpha-1", Status: "available", Location: "Downtown", LastUpdate: now, Members: []string{"Smith"}},
		{ID: 2, UnitName: "Bravo-2", Status: "busy", Location: "Harbor", LastUpdate: now, Members: []string{}},
	}

	mockService.On("List", mock.Anything).Return(units, nil)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/units", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.UnitsResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Units, 2)
	assert.Equal(t, "Alpha-1", resp.Units[0].UnitName)
	assert.Equal(t, []string{"Smith"}, resp.Units[0].Members)
	assert.NotNil(t, resp.Units[1].Members)
}

func TestUnitHandler_List_ServiceError(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	mockService.On("List", mock.Anything).Return(([]api.UnitSchema)(nil), errors.New("db down"))

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/units", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

func TestUnitHandler_Create(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	mockService.On("Create", mock.Anything, "Alpha-1", "busy", "Downtown", []string{"Smith", "Jones"}).
		Return(int64(7), nil)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	body := `{"unitName":"Alpha-1","status":"busy","location":"Downtown","members":["Smith","Jones"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/units", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp api.CreatedResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, api.MsgUnitCreated, resp.Message)
}

func TestUnitHandler_Create_MissingName(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	body := `{"status":"busy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/units", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "UnitName")
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitHandler_Create_BadJSON(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/units", bytes.NewBufferString("{bad"))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestUnitHandler_Update(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	mockService.On("Update", mock.Anything, mock.MatchedBy(func(input unit.UpdateInput) bool {
		return input.ID == 7 &&
			input.Status == "busy" &&
			input.Members != nil &&
			len(*input.Members) == 1 &&
			(*input.Members)[0] == "Lee"
	})).Return(nil)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	body := `{"id":7,"status":"busy","members":["Lee"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/units", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Update(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.MessageResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, api.MsgUnitUpdated, resp.Message)
}

func TestUnitHandler_Update_OmittedMembersKeepRoster(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	mockService.On("Update", mock.Anything, mock.MatchedBy(func(input unit.UpdateInput) bool {
		return input.ID == 7 && input.Members == nil
	})).Return(nil)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	body := `{"id":7,"location":"Harbor"}`
	req := httptest.NewRequest(http.MethodPut, "/api/units", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Update(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUnitHandler_Update_NotFound(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	mockService.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	body := `{"id":99,"status":"busy"}`
	req := httptest.NewRequest(http.MethodPut, "/api/units", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Update(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestUnitHandler_Update_MissingID(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	body := `{"status":"busy"}`
	req := httptest.NewRequest(http.MethodPut, "/api/units", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.Update(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUnitHandler_Delete(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	mockService.On("Delete", mock.Anything, int64(7)).Return(nil)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodDelete, "/api/units?id=7", nil)
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.MessageResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, api.MsgUnitDeleted, resp.Message)
}

func TestUnitHandler_Delete_MissingID(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodDelete, "/api/units", nil)
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
	assert.Equal(t, "id is required", resp.Error.Message)
}

func TestUnitHandler_Delete_BadID(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodDelete, "/api/units?id=abc", nil)
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
	assert.Equal(t, "id must be an integer", resp.Error.Message)
	mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUnitHandler_Delete_NotFound(t *testing.T) {
	mockService := mocks.NewMockUnitService(t)

	mockService.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	handler := unith.NewUnitHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodDelete, "/api/units?id=99", nil)
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}
