package models

import (
	"time"
)

type StorageEntry struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
