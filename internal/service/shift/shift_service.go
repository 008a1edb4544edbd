package shift

import (
	"context"
	"errors"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/models"
	repo "mdc-dispatch/internal/repository"
	"mdc-dispatch/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ShiftStore
type ShiftStore interface {
	GetActiveByDispatcher(ctx context.Context, dispatcherID string) (*models.DispatcherShift, error)
	Create(ctx context.Context, dispatcherID, dispatcherName string) (*models.DispatcherShift, error)
	ListActive(ctx context.Context) ([]*models.DispatcherShift, error)
	End(ctx context.Context, dispatcherID string) error
}

type ShiftService struct {
	trm   service.TransactionManager
	store ShiftStore
}

func NewShiftService(trm service.TransactionManager, store ShiftStore) *ShiftService {
	return &ShiftService{
		trm:   trm,
		store: store,
	}
}

func (s *ShiftService) ListActive(ctx context.Context) ([]api.ShiftSchema, error) {
	shifts, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]api.ShiftSchema, 0, len(shifts))
	for _, sh := range shifts {
		resp = append(resp, toSchema(sh))
	}

	return resp, nil
}

// Start opens a new active shift for the dispatcher. If one is already
// active it returns repo.ErrShiftActive, which callers surface as the
// informational "already on duty" outcome rather than a failure. The
// check-then-insert runs in a transaction, and the partial unique index
// on dispatcher_shifts backstops concurrent starts.
func (s *ShiftService) Start(ctx context.Context, dispatcherID, dispatcherName string) (*api.ShiftSchema, error) {
	var resp api.ShiftSchema

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		_, err := s.store.GetActiveByDispatcher(ctx, dispatcherID)
		if err == nil {
			return repo.ErrShiftActive
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		shift, err := s.store.Create(ctx, dispatcherID, dispatcherName)
		if err != nil {
			return err
		}

		resp = toSchema(shift)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// End deactivates the dispatcher's active shift and stamps its end
// time. A dispatcher with no active shift is a no-op.
func (s *ShiftService) End(ctx context.Context, dispatcherID string) error {
	return s.store.End(ctx, dispatcherID)
}

func toSchema(sh *models.DispatcherShift) api.ShiftSchema {
	return api.ShiftSchema{
		ID:             sh.ID,
		DispatcherID:   sh.DispatcherID,
		DispatcherName: sh.DispatcherName,
		StartTime:      sh.StartTime,
		EndTime:        sh.EndTime,
		IsActive:       sh.IsActive,
	}
}
