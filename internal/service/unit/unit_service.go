package unit

import (
	"context"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/models"
	"mdc-dispatch/internal/service"
)

const defaultStatus = "available"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UnitStore
type UnitStore interface {
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

// UpdateInput carries the optional fields of a unit update. A nil
// Members means the roster is untouched; a non-nil (even empty) slice
// replaces it entirely.
type UpdateInput struct {
	ID       int64
	Status   string
	Location string
	Members  *[]string
}

type UnitService struct {
	trm   service.TransactionManager
	store UnitStore
}

func NewUnitService(trm service.TransactionManager, store UnitStore) *UnitService {
	return &UnitService{
		trm:   trm,
		store: store,
	}
}

func (s *UnitService) List(ctx context.Context) ([]api.UnitSchema, error) {
	units, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	byUnit := make(map[int64][]string, len(units))
	for _, m := range members {
		byUnit[m.UnitID] = append(byUnit[m.UnitID], m.MemberName)
	}

	resp := make([]api.UnitSchema, 0, len(units))
	for _, u := range units {
		roster := byUnit[u.ID]
		if roster == nil {
			roster = []string{}
		}

		resp = append(resp, api.UnitSchema{
			ID:         u.ID,
			UnitName:   u.UnitName,
			Status:     u.Status,
			Location:   u.Location,
			LastUpdate: u.LastUpdate,
			Members:    roster,
		})
	}

	return resp, nil
}

func (s *UnitService) Create(ctx context.Context, unitName, status, location string, members []string) (int64, error) {
	if status == "" {
		status = defaultStatus
	}

	var unitID int64

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		id, err := s.store.Create(ctx, &models.Unit{
			UnitName: unitName,
			Status:   status,
			Location: location,
		})
		if err != nil {
			return err
		}

		for _, m := range members {
			if err := s.store.AddMember(ctx, id, m); err != nil {
				return err
			}
		}

		unitID = id

		return nil
	})
	if err != nil {
		return 0, err
	}

	return unitID, nil
}

// Update applies whichever fields were supplied. A supplied member list
// replaces the existing roster whole; there is no incremental
// add/remove.
func (s *UnitService) Update(ctx context.Context, input UpdateInput) error {
	return s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.store.GetById(ctx, input.ID); err != nil {
			return err
		}

		if input.Status != "" {
			if err := s.store.UpdateStatus(ctx, input.ID, input.Status); err != nil {
				return err
			}
		}

		if input.Location != "" {
			if err := s.store.UpdateLocation(ctx, input.ID, input.Location); err != nil {
				return err
			}
		}

		if input.Members != nil {
			if err := s.store.DeleteMembers(ctx, input.ID); err != nil {
				return err
			}

			for _, m := range *input.Members {
				if err := s.store.AddMember(ctx, input.ID, m); err != nil {
					return err
				}
			}

			if err := s.store.Touch(ctx, input.ID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *UnitService) Delete(ctx context.Context, unitID int64) error {
	return s.store.Delete(ctx, unitID)
}
