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

type UnitRepository interface {
	List(ctx context.Context) ([]*models.Unit, error)
	ListMembers(ctx context.Context) ([]*models.UnitMember, error)
	GetById(ctx context.Context, unitID int64) (*models.Unit, error)
	Create(ctx context.Context, unit *models.Unit) (int64, error)
	AddMember(ctx context.Context, unitID int64, memberName string) error
	DeleteMembers(ctx context.Context, unitID int64) error
	UpdateStatus(ctx context.Context, unitID int64, status string) error
	UpdateLocation(ctx context.Context, unitID int64, location string) error
	Touch(ctx context.Context, unitID int64) error
	Delete(ctx context.Context, unitID int64) error
}

type UnitRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUnitRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UnitRepo {
	return &UnitRepo{
		db:     db,
		getter: c,
	}
}

func (r *UnitRepo) List(ctx context.Context) ([]*models.Unit, error) {
	const op = "unit_repo.List"

	query := `
		SELECT id, unit_name, status, location, last_update
		FROM units
		ORDER BY id;
	`

	var units []*models.Unit
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &units, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return units, nil
}

func (r *UnitRepo) ListMembers(ctx context.Context) ([]*models.UnitMember, error) {
	const op = "unit_repo.ListMembers"

	query := `
		SELECT unit_id, member_name
		FROM unit_members
		ORDER BY unit_id, id;
	`

	var members []*models.UnitMember
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &members, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return members, nil
}

func (r *UnitRepo) GetById(ctx context.Context, unitID int64) (*models.Unit, error) {
	const op = "unit_repo.GetById"

	query := `
		SELECT id, unit_name, status, location, last_update
		FROM units
		WHERE id = $1;
	`

	var unit models.Unit
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &unit, query, unitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &unit, nil
}

func (r *UnitRepo) Create(ctx context.Context, unit *models.Unit) (int64, error) {
	const op = "unit_repo.Create"

	query := `
		INSERT INTO units (unit_name, status, location, last_update)
		VALUES ($1, $2, $3, now())
		RETURNING id;
	`

	var unitID int64
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, unit.UnitName, unit.Status, unit.Location).Scan(&unitID)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return unitID, nil
}

func (r *UnitRepo) AddMember(ctx context.Context, unitID int64, memberName string) error {
	const op = "unit_repo.AddMember"

	query := `INSERT INTO unit_members (unit_id, member_name) VALUES ($1, $2)`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, unitID, memberName)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *UnitRepo) DeleteMembers(ctx context.Context, unitID int64) error {
	const op = "unit_repo.DeleteMembers"

	query := `DELETE FROM unit_members WHERE unit_id = $1`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, unitID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *UnitRepo) UpdateStatus(ctx context.Context, unitID int64, status string) error {
	const op = "unit_repo.UpdateStatus"

	query := `UPDATE units SET status = $1, last_update = now() WHERE id = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, status, unitID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *UnitRepo) UpdateLocation(ctx context.Context, unitID int64, location string) error {
	const op = "unit_repo.UpdateLocation"

	query := `UPDATE units SET location = $1, last_update = now() WHERE id = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, location, unitID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Touch refreshes last_update after a member roster change.
func (r *UnitRepo) Touch(ctx context.Context, unitID int64) error {
	const op = "unit_repo.Touch"

	query := `UPDATE units SET last_update = now() WHERE id = $1`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, unitID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// Delete removes the unit row; members go with it via ON DELETE CASCADE.
func (r *UnitRepo) Delete(ctx context.Context, unitID int64) error {
	const op = "unit_repo.Delete"

	query := `DELETE FROM units WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, unitID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
