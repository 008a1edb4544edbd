package storage

import (
	"context"
	"encoding/json"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StorageStore
type StorageStore interface {
	Get(ctx context.Context, key string) (*models.StorageEntry, error)
	Put(ctx context.Context, key string, value []byte) error
}

type StorageService struct {
	store StorageStore
}

func NewStorageService(store StorageStore) *StorageService {
	return &StorageService{
		store: store,
	}
}

func (s *StorageService) Get(ctx context.Context, key string) (*api.StorageEntrySchema, error) {
	entry, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	return &api.StorageEntrySchema{
		Key:   entry.Key,
		Value: json.RawMessage(entry.Value),
	}, nil
}

// Put replaces the stored value whole; there are no merge or patch
// semantics. An absent value is stored as JSON null.
func (s *StorageService) Put(ctx context.Context, key string, value json.RawMessage) error {
	if len(value) == 0 {
		value = json.RawMessage("null")
	}

	return s.store.Put(ctx, key, []byte(value))
}
