package repo

import (
	"context"
	"database/sql"
	"errors"

	"mdc-dispatch/internal/lib"
	"mdc-dispatch/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ShiftRepository interface {
	GetActiveByDispatcher(ctx context.Context, dispatcherID string) (*models.DispatcherShift, error)
	Create(ctx context.Context, dispatcherID, dispatcherName string) (*models.DispatcherShift, error)
	ListActive(ctx context.Context) ([]*models.DispatcherShift, error)
	End(ctx context.Context, dispatcherID string) error
}

type ShiftRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewShiftRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ShiftRepo {
	return &ShiftRepo{
		db:     db,
		getter: c,
	}
}

func (r *ShiftRepo) GetActiveByDispatcher(ctx context.Context, dispatcherID string) (*models.DispatcherShift, error) {
	const op = "shift_repo.GetActiveByDispatcher"

	query := `
		SELECT id, dispatcher_id, dispatcher_name, start_time, end_time, is_active
		FROM dispatcher_shifts
		WHERE dispatcher_id = $1 AND is_active = TRUE;
	`

	var shift models.DispatcherShift
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &shift, query, dispatcherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &shift, nil
}

// Create inserts a new active shift. The partial unique index on
// (dispatcher_id) WHERE is_active turns a concurrent double start into
// ErrShiftActive instead of a second active row.
func (r *ShiftRepo) Create(ctx context.Context, dispatcherID, dispatcherName string) (*models.DispatcherShift, error) {
	const op = "shift_repo.Create"

	query := `
		INSERT INTO dispatcher_shifts (dispatcher_id, dispatcher_name, is_active)
		VALUES ($1, $2, TRUE)
		RETURNING id, dispatcher_id, dispatcher_name, start_time, end_time, is_active;
	`

	var shift models.DispatcherShift
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &shift, query, dispatcherID, dispatcherName)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return nil, ErrShiftActive
			}
		}
		return nil, lib.Err(op, err)
	}

	return &shift, nil
}

func (r *ShiftRepo) ListActive(ctx context.Context) ([]*models.DispatcherShift, error) {
	const op = "shift_repo.ListActive"

	query := `
		SELECT id, dispatcher_id, dispatcher_name, start_time, end_time, is_active
		FROM dispatcher_shifts
		WHERE is_active = TRUE
		ORDER BY start_time DESC;
	`

	var shifts []*models.DispatcherShift
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &shifts, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return shifts, nil
}

// End closes the dispatcher's active shift if one exists. Ending with
// no active shift affects zero rows and is not an error.
func (r *ShiftRepo) End(ctx context.Context, dispatcherID string) error {
	const op = "shift_repo.End"

	query := `
		UPDATE dispatcher_shifts
		SET is_active = FALSE, end_time = now()
		WHERE dispatcher_id = $1 AND is_active = TRUE;
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, dispatcherID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
