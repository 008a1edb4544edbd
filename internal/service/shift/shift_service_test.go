package shift_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mdc-dispatch/internal/models"
	repo "mdc-dispatch/internal/repository"
	"mdc-dispatch/internal/service/mocks"
	"mdc-dispatch/internal/service/shift"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestShiftService_Start_Success(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	created := &models.DispatcherShift{
		ID:             1,
		DispatcherID:   "d1",
		DispatcherName: "Dana",
		StartTime:      time.Now(),
		IsActive:       true,
	}

	mockStore.On("GetActiveByDispatcher", ctx, "d1").Return((*models.DispatcherShift)(nil), repo.ErrNotFound)
	mockStore.On("Create", ctx, "d1", "Dana").Return(created, nil)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := shift.NewShiftService(mockTRM, mockStore)

	resp, err := service.Start(ctx, "d1", "Dana")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "d1", resp.DispatcherID)
	assert.Equal(t, "Dana", resp.DispatcherName)
	assert.True(t, resp.IsActive)
	assert.Nil(t, resp.EndTime)
}

func TestShiftService_Start_AlreadyActive(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	active := &models.DispatcherShift{
		ID:           1,
		DispatcherID: "d1",
		IsActive:     true,
	}

	mockStore.On("GetActiveByDispatcher", ctx, "d1").Return(active, nil)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrShiftActive)
		}).
		Return(repo.ErrShiftActive).Once()

	service := shift.NewShiftService(mockTRM, mockStore)

	resp, err := service.Start(ctx, "d1", "Dana")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrShiftActive)
	mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestShiftService_Start_ConcurrentInsertLosesRace(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	// another transaction committed an active shift between our check
	// and insert; the partial unique index surfaces it as ErrShiftActive
	mockStore.On("GetActiveByDispatcher", ctx, "d1").Return((*models.DispatcherShift)(nil), repo.ErrNotFound)
	mockStore.On("Create", ctx, "d1", "Dana").Return((*models.DispatcherShift)(nil), repo.ErrShiftActive)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrShiftActive)
		}).
		Return(repo.ErrShiftActive).Once()

	service := shift.NewShiftService(mockTRM, mockStore)

	resp, err := service.Start(ctx, "d1", "Dana")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrShiftActive)
}

func TestShiftService_Start_LookupError(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	lookupErr := errors.New("connection reset")

	mockStore.On("GetActiveByDispatcher", ctx, "d1").Return((*models.DispatcherShift)(nil), lookupErr)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), lookupErr)
		}).
		Return(lookupErr).Once()

	service := shift.NewShiftService(mockTRM, mockStore)

	resp, err := service.Start(ctx, "d1", "Dana")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, lookupErr)
}

func TestShiftService_ListActive_Success(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	now := time.Now()
	shifts := []*models.DispatcherShift{
		{ID: 2, DispatcherID: "d2", DispatcherName: "Erik", StartTime: now, IsActive: true},
		{ID: 1, DispatcherID: "d1", DispatcherName: "Dana", StartTime: now.Add(-time.Hour), IsActive: true},
	}

	mockStore.On("ListActive", ctx).Return(shifts, nil)

	service := shift.NewShiftService(nil, mockStore)

	resp, err := service.ListActive(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
	assert.Equal(t, "Erik", resp[0].DispatcherName)
	assert.Equal(t, int64(1), resp[1].ID)
}

func TestShiftService_ListActive_Empty(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	mockStore.On("ListActive", ctx).Return([]*models.DispatcherShift{}, nil)

	service := shift.NewShiftService(nil, mockStore)

	resp, err := service.ListActive(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, resp, 0)
}

func TestShiftService_End_Success(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	mockStore.On("End", ctx, "d1").Return(nil)

	service := shift.NewShiftService(nil, mockStore)

	assert.NoError(t, service.End(ctx, "d1"))
}

func TestShiftService_End_StoreError(t *testing.T) {
	ctx := context.Background()

	mockStore := mocks.NewShiftStore(t)

	endErr := errors.New("update failed")

	mockStore.On("End", ctx, "d1").Return(endErr)

	service := shift.NewShiftService(nil, mockStore)

	assert.ErrorIs(t, service.End(ctx, "d1"), endErr)
}
