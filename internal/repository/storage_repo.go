package repo

import (
	"context"
	"database/sql"
	"errors"

	"mdc-dispatch/internal/lib"
	"mdc-dispatch/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type StorageRepository interface {
	Get(ctx context.Context, key string) (*models.StorageEntry, error)
	Put(ctx context.Context, key string, value []byte) error
}

type StorageRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewStorageRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *StorageRepo {
	return &StorageRepo{
		db:     db,
		getter: c,
	}
}

func (r *StorageRepo) Get(ctx context.Context, key string) (*models.StorageEntry, error) {
	const op = "storage_repo.Get"

	query := `
		SELECT key, value, updated_at
		FROM mdc_storage
		WHERE key = $1;
	`

	var entry models.StorageEntry
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &entry, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &entry, nil
}

// Put stores the value under key, replacing any previous value whole.
func (r *StorageRepo) Put(ctx context.Context, key string, value []byte) error {
	const op = "storage_repo.Put"

	query := `
		INSERT INTO mdc_storage (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now();
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, key, value)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
