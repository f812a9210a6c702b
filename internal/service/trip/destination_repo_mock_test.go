package trip

import (
	"context"
	"sync"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

var _ destinationRepo = &destinationRepoMock{}

type destinationRepoMock struct {
	AddFunc       func(ctx context.Context, d domain.Destination) (*domain.Destination, error)
	GetFunc       func(ctx context.Context, userID int64, destinationID int64) (*domain.Destination, error)
	GetAllForFunc func(ctx context.Context, userID int64, tripID int64) ([]domain.Destination, error)
	RemoveFunc    func(ctx context.Context, destinationID int64) error

	calls struct {
		Add []struct {
			Ctx context.Context
			D   domain.Destination
		}
		Get []struct {
			Ctx           context.Context
			UserID        int64
			DestinationID int64
		}
		GetAllFor []struct {
			Ctx    context.Context
			UserID int64
			TripID int64
		}
		Remove []struct {
			Ctx           context.Context
			DestinationID int64
		}
	}
	lockAdd       sync.RWMutex
	lockGet       sync.RWMutex
	lockGetAllFor sync.RWMutex
	lockRemove    sync.RWMutex
}

func (mock *destinationRepoMock) Add(ctx context.Context, d domain.Destination) (*domain.Destination, error) {
	if mock.AddFunc == nil {
		panic("destinationRepoMock.AddFunc: method is nil but destinationRepo.Add was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Destination
	}{Ctx: ctx, D: d}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, d)
}

func (mock *destinationRepoMock) AddCalls() []struct {
	Ctx context.Context
	D   domain.Destination
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *destinationRepoMock) Get(ctx context.Context, userID int64, destinationID int64) (*domain.Destination, error) {
	if mock.GetFunc == nil {
		panic("destinationRepoMock.GetFunc: method is nil but destinationRepo.Get was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		UserID        int64
		DestinationID int64
	}{Ctx: ctx, UserID: userID, DestinationID: destinationID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, destinationID)
}

func (mock *destinationRepoMock) GetCalls() []struct {
	Ctx           context.Context
	UserID        int64
	DestinationID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *destinationRepoMock) GetAllFor(ctx context.Context, userID int64, tripID int64) ([]domain.Destination, error) {
	if mock.GetAllForFunc == nil {
		panic("destinationRepoMock.GetAllForFunc: method is nil but destinationRepo.GetAllFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TripID int64
	}{Ctx: ctx, UserID: userID, TripID: tripID}
	mock.lockGetAllFor.Lock()
	mock.calls.GetAllFor = append(mock.calls.GetAllFor, callInfo)
	mock.lockGetAllFor.Unlock()
	return mock.GetAllForFunc(ctx, userID, tripID)
}

func (mock *destinationRepoMock) GetAllForCalls() []struct {
	Ctx    context.Context
	UserID int64
	TripID int64
} {
	mock.lockGetAllFor.RLock()
	calls := mock.calls.GetAllFor
	mock.lockGetAllFor.RUnlock()
	return calls
}

func (mock *destinationRepoMock) Remove(ctx context.Context, destinationID int64) error {
	if mock.RemoveFunc == nil {
		panic("destinationRepoMock.RemoveFunc: method is nil but destinationRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		DestinationID int64
	}{Ctx: ctx, DestinationID: destinationID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, destinationID)
}

func (mock *destinationRepoMock) RemoveCalls() []struct {
	Ctx           context.Context
	DestinationID int64
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
