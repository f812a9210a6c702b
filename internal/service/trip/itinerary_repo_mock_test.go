package trip

import (
	"context"
	"sync"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

var _ itineraryRepo = &itineraryRepoMock{}

type itineraryRepoMock struct {
	AddFunc        func(ctx context.Context, tripID int64, text string) (*domain.Itinerary, error)
	GetForTripFunc func(ctx context.Context, userID int64, tripID int64) (*domain.Itinerary, error)
	UpdateFunc     func(ctx context.Context, tripID int64, fields []domain.Field) (*domain.Itinerary, error)

	calls struct {
		Add []struct {
			Ctx    context.Context
			TripID int64
			Text   string
		}
		GetForTrip []struct {
			Ctx    context.Context
			UserID int64
			TripID int64
		}
		Update []struct {
			Ctx    context.Context
			TripID int64
			Fields []domain.Field
		}
	}
	lockAdd        sync.RWMutex
	lockGetForTrip sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *itineraryRepoMock) Add(ctx context.Context, tripID int64, text string) (*domain.Itinerary, error) {
	if mock.AddFunc == nil {
		panic("itineraryRepoMock.AddFunc: method is nil but itineraryRepo.Add was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID int64
		Text   string
	}{Ctx: ctx, TripID: tripID, Text: text}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, tripID, text)
}

func (mock *itineraryRepoMock) AddCalls() []struct {
	Ctx    context.Context
	TripID int64
	Text   string
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) GetForTrip(ctx context.Context, userID int64, tripID int64) (*domain.Itinerary, error) {
	if mock.GetForTripFunc == nil {
		panic("itineraryRepoMock.GetForTripFunc: method is nil but itineraryRepo.GetForTrip was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TripID int64
	}{Ctx: ctx, UserID: userID, TripID: tripID}
	mock.lockGetForTrip.Lock()
	mock.calls.GetForTrip = append(mock.calls.GetForTrip, callInfo)
	mock.lockGetForTrip.Unlock()
	return mock.GetForTripFunc(ctx, userID, tripID)
}

func (mock *itineraryRepoMock) GetForTripCalls() []struct {
	Ctx    context.Context
	UserID int64
	TripID int64
} {
	mock.lockGetForTrip.RLock()
	calls := mock.calls.GetForTrip
	mock.lockGetForTrip.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) Update(ctx context.Context, tripID int64, fields []domain.Field) (*domain.Itinerary, error) {
	if mock.UpdateFunc == nil {
		panic("itineraryRepoMock.UpdateFunc: method is nil but itineraryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TripID int64
		Fields []domain.Field
	}{Ctx: ctx, TripID: tripID, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, tripID, fields)
}

func (mock *itineraryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	TripID int64
	Fields []domain.Field
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
