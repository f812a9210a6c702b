package trip

import (
	"context"
	"sync"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

var _ tripRepo = &tripRepoMock{}

type tripRepoMock struct {
	AddFunc       func(ctx context.Context, t domain.Trip) (*domain.Trip, error)
	GetFunc       func(ctx context.Context, userID int64, tripID int64) (*domain.Trip, error)
	GetAllForFunc func(ctx context.Context, userID int64) ([]domain.Trip, error)
	UpdateFunc    func(ctx context.Context, userID int64, tripID int64, fields []domain.Field) (*domain.Trip, error)
	RemoveFunc    func(ctx context.Context, userID int64, tripID int64) error

	calls struct {
		Add []struct {
			Ctx context.Context
			T   domain.Trip
		}
		Get []struct {
			Ctx    context.Context
			UserID int64
			TripID int64
		}
		GetAllFor []struct {
			Ctx    context.Context
			UserID int64
		}
		Update []struct {
			Ctx    context.Context
			UserID int64
			TripID int64
			Fields []domain.Field
		}
		Remove []struct {
			Ctx    context.Context
			UserID int64
			TripID int64
		}
	}
	lockAdd       sync.RWMutex
	lockGet       sync.RWMutex
	lockGetAllFor sync.RWMutex
	lockUpdate    sync.RWMutex
	lockRemove    sync.RWMutex
}

func (mock *tripRepoMock) Add(ctx context.Context, t domain.Trip) (*domain.Trip, error) {
	if mock.AddFunc == nil {
		panic("tripRepoMock.AddFunc: method is nil but tripRepo.Add was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Trip
	}{Ctx: ctx, T: t}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, t)
}

func (mock *tripRepoMock) AddCalls() []struct {
	Ctx context.Context
	T   domain.Trip
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *tripRepoMock) Get(ctx context.Context, userID int64, tripID int64) (*domain.Trip, error) {
	if mock.GetFunc == nil {
		panic("tripRepoMock.GetFunc: method is nil but tripRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TripID int64
	}{Ctx: ctx, UserID: userID, TripID: tripID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, tripID)
}

func (mock *tripRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID int64
	TripID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *tripRepoMock) GetAllFor(ctx context.Context, userID int64) ([]domain.Trip, error) {
	if mock.GetAllForFunc == nil {
		panic("tripRepoMock.GetAllForFunc: method is nil but tripRepo.GetAllFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetAllFor.Lock()
	mock.calls.GetAllFor = append(mock.calls.GetAllFor, callInfo)
	mock.lockGetAllFor.Unlock()
	return mock.GetAllForFunc(ctx, userID)
}

func (mock *tripRepoMock) GetAllForCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetAllFor.RLock()
	calls := mock.calls.GetAllFor
	mock.lockGetAllFor.RUnlock()
	return calls
}

func (mock *tripRepoMock) Update(ctx context.Context, userID int64, tripID int64, fields []domain.Field) (*domain.Trip, error) {
	if mock.UpdateFunc == nil {
		panic("tripRepoMock.UpdateFunc: method is nil but tripRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TripID int64
		Fields []domain.Field
	}{Ctx: ctx, UserID: userID, TripID: tripID, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, tripID, fields)
}

func (mock *tripRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID int64
	TripID int64
	Fields []domain.Field
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *tripRepoMock) Remove(ctx context.Context, userID int64, tripID int64) error {
	if mock.RemoveFunc == nil {
		panic("tripRepoMock.RemoveFunc: method is nil but tripRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TripID int64
	}{Ctx: ctx, UserID: userID, TripID: tripID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID, tripID)
}

func (mock *tripRepoMock) RemoveCalls() []struct {
	Ctx    context.Context
	UserID int64
	TripID int64
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
