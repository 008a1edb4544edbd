package storage_test

import (
	"context"
	"encoding/json"
	"testing"

	"mdc-dispatch/internal/models"
	repo "mdc-dispatch/internal/repository"
	"mdc-dispatch/internal/service/mocks"
	"mdc-dispatch/internal/service/storage"

	"github.com/stretchr/testify/assert"
)

func TestStorageService_Get_Success(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewStorageStore(t)

	mockStore.On("Get", ctx, "settings").Return(&models.StorageEntry{
		Key:   "settings",
		Value: []byte(`{"theme":"dark"}`),
	}, nil)

	service := storage.NewStorageService(mockStore)

	resp, err := service.Get(ctx, "settings")

	assert.NoError(t, err)
	assert.Equal(t, "settings", resp.Key)
	assert.JSONEq(t, `{"theme":"dark"}`, string(resp.Value))
}

func TestStorageService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewStorageStore(t)

	mockStore.On("Get", ctx, "missing").Return((*models.StorageEntry)(nil), repo.ErrNotFound)

	service := storage.NewStorageService(mockStore)

	resp, err := service.Get(ctx, "missing")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestStorageService_Put_Success(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewStorageStore(t)

	mockStore.On("Put", ctx, "settings", []byte(`{"theme":"dark"}`)).Return(nil)

	service := storage.NewStorageService(mockStore)

	err := service.Put(ctx, "settings", json.RawMessage(`{"theme":"dark"}`))

	assert.NoError(t, err)
}

func TestStorageService_Put_EmptyValueStoresNull(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewStorageStore(t)

	mockStore.On("Put", ctx, "settings", []byte("null")).Return(nil)

	service := storage.NewStorageService(mockStore)

	err := service.Put(ctx, "settings", nil)

	assert.NoError(t, err)
}
