package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetFunc    func(ctx context.Context, username string) (*domain.User, error)
	GetAllFunc func(ctx context.Context) ([]domain.User, error)
	UpdateFunc func(ctx context.Context, username string, fields []domain.Field) (*domain.User, error)
	RemoveFunc func(ctx context.Context, username string) error

	calls struct {
		Get []struct {
			Ctx      context.Context
			Username string
		}
		GetAll []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx      context.Context
			Username string
			Fields   []domain.Field
		}
		Remove []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGet    sync.RWMutex
	lockGetAll sync.RWMutex
	lockUpdate sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *userRepoMock) Get(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetFunc == nil {
		panic("userRepoMock.GetFunc: method is nil but userRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, username)
}

func (mock *userRepoMock) GetCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *userRepoMock) GetAll(ctx context.Context) ([]domain.User, error) {
	if mock.GetAllFunc == nil {
		panic("userRepoMock.GetAllFunc: method is nil but userRepo.GetAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetAll.Lock()
	mock.calls.GetAll = append(mock.calls.GetAll, callInfo)
	mock.lockGetAll.Unlock()
	return mock.GetAllFunc(ctx)
}

func (mock *userRepoMock) GetAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetAll.RLock()
	calls := mock.calls.GetAll
	mock.lockGetAll.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, username string, fields []domain.Field) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Fields   []domain.Field
	}{Ctx: ctx, Username: username, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, username, fields)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	Username string
	Fields   []domain.Field
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) Remove(ctx context.Context, username string) error {
	if mock.RemoveFunc == nil {
		panic("userRepoMock.RemoveFunc: method is nil but userRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, username)
}

func (mock *userRepoMock) RemoveCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
