package repo

import (
	"context"
	"time"

	"mdc-dispatch/internal/lib"
	"mdc-dispatch/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type PresenceRepository interface {
	Upsert(ctx context.Context, user *models.OnlineUser) (*models.OnlineUser, error)
	List(ctx context.Context) ([]*models.OnlineUser, error)
	DeleteStale(ctx context.Context, cutoff time.Time) error
	Delete(ctx context.Context, userID string) error
}

type PresenceRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPresenceRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PresenceRepo {
	return &PresenceRepo{
		db:     db,
		getter: c,
	}
}

func (r *PresenceRepo) Upsert(ctx context.Context, user *models.OnlineUser) (*models.OnlineUser, error) {
	const op = "presence_repo.Upsert"

	query := `
		INSERT INTO online_users (user_id, full_name, role, email, last_heartbeat)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			email = EXCLUDED.email,
			last_heartbeat = now()
		RETURNING user_id, full_name, role, email, last_heartbeat;
	`

	var stored models.OnlineUser
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &stored, query, user.UserID, user.FullName, user.Role, user.Email)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &stored, nil
}

func (r *PresenceRepo) List(ctx context.Context) ([]*models.OnlineUser, error) {
	const op = "presence_repo.List"

	query := `
		SELECT user_id, full_name, role, email, last_heartbeat
		FROM online_users
		ORDER BY last_heartbeat DESC;
	`

	var users []*models.OnlineUser
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

// DeleteStale drops every presence row whose heartbeat is older than cutoff.
// Eviction happens on read rather than via a background sweep.
func (r *PresenceRepo) DeleteStale(ctx context.Context, cutoff time.Time) error {
	const op = "presence_repo.DeleteStale"

	query := `DELETE FROM online_users WHERE last_heartbeat < $1`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, cutoff)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// Delete removes a user's presence row. Deleting an absent user is not
// an error.
func (r *PresenceRepo) Delete(ctx context.Context, userID string) error {
	const op = "presence_repo.Delete"

	query := `DELETE FROM online_users WHERE user_id = $1`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, userID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
