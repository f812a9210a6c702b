package trip

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

var _ forecaster = &forecasterMock{}

type forecasterMock struct {
	SafeFunc func(ctx context.Context, city string, start time.Time, end time.Time) provider.Outcome[[]domain.WeatherDay]

	calls struct {
		Safe []struct {
			Ctx   context.Context
			City  string
			Start time.Time
			End   time.Time
		}
	}
	lockSafe sync.RWMutex
}

func (mock *forecasterMock) Safe(ctx context.Context, city string, start time.Time, end time.Time) provider.Outcome[[]domain.WeatherDay] {
	if mock.SafeFunc == nil {
		panic("forecasterMock.SafeFunc: method is nil but forecaster.Safe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		City  string
		Start time.Time
		End   time.Time
	}{Ctx: ctx, City: city, Start: start, End: end}
	mock.lockSafe.Lock()
	mock.calls.Safe = append(mock.calls.Safe, callInfo)
	mock.lockSafe.Unlock()
	return mock.SafeFunc(ctx, city, start, end)
}

func (mock *forecasterMock) SafeCalls() []struct {
	Ctx   context.Context
	City  string
	Start time.Time
	End   time.Time
} {
	mock.lockSafe.RLock()
	calls := mock.calls.Safe
	mock.lockSafe.RUnlock()
	return calls
}
