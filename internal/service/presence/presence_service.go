package presence

import (
	"context"
	"time"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/models"
	"mdc-dispatch/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PresenceStore
type PresenceStore interface {
	Upsert(ctx context.Context, user *models.OnlineUser) (*models.OnlineUser, error)
	List(ctx context.Context) ([]*models.OnlineUser, error)
	DeleteStale(ctx context.Context, cutoff time.Time) error
	Delete(ctx context.Context, userID string) error
}

type PresenceService struct {
	trm   service.TransactionManager
	store PresenceStore
	ttl   time.Duration
}

func NewPresenceService(trm service.TransactionManager, store PresenceStore, ttl time.Duration) *PresenceService {
	return &PresenceService{
		trm:   trm,
		store: store,
		ttl:   ttl,
	}
}

// List evicts presence rows older than the staleness threshold, then
// returns whoever is left, most recently active first.
func (s *PresenceService) List(ctx context.Context) ([]api.OnlineUserSchema, error) {
	resp := []api.OnlineUserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		cutoff := time.Now().Add(-s.ttl)
		if err := s.store.DeleteStale(ctx, cutoff); err != nil {
			return err
		}

		users, err := s.store.List(ctx)
		if err != nil {
			return err
		}

		for _, u := range users {
			resp = append(resp, api.OnlineUserSchema{
				UserID:        u.UserID,
				FullName:      u.FullName,
				Role:          u.Role,
				Email:         u.Email,
				LastHeartbeat: u.LastHeartbeat,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Heartbeat upserts the caller's presence row and resets its heartbeat
// timestamp.
func (s *PresenceService) Heartbeat(ctx context.Context, userID, fullName, role, email string) (*api.OnlineUserSchema, error) {
	user := &models.OnlineUser{
		UserID:   userID,
		FullName: fullName,
		Role:     role,
		Email:    email,
	}

	stored, err := s.store.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	return &api.OnlineUserSchema{
		UserID:        stored.UserID,
		FullName:      stored.FullName,
		Role:          stored.Role,
		Email:         stored.Email,
		LastHeartbeat: stored.LastHeartbeat,
	}, nil
}

// Remove is idempotent: removing a user who is already gone succeeds.
func (s *PresenceService) Remove(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID)
}
