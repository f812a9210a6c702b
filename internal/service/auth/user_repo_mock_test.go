package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddFunc            func(ctx context.Context, u domain.User, password string) (*domain.User, error)
	GetCredentialsFunc func(ctx context.Context, username string) (*domain.Credentials, error)

	calls struct {
		Add []struct {
			Ctx      context.Context
			U        domain.User
			Password string
		}
		GetCredentials []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockAdd            sync.RWMutex
	lockGetCredentials sync.RWMutex
}

func (mock *userRepoMock) Add(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if mock.AddFunc == nil {
		panic("userRepoMock.AddFunc: method is nil but userRepo.Add was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		U        domain.User
		Password string
	}{Ctx: ctx, U: u, Password: password}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, u, password)
}

func (mock *userRepoMock) AddCalls() []struct {
	Ctx      context.Context
	U        domain.User
	Password string
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *userRepoMock) GetCredentials(ctx context.Context, username string) (*domain.Credentials, error) {
	if mock.GetCredentialsFunc == nil {
		panic("userRepoMock.GetCredentialsFunc: method is nil but userRepo.GetCredentials was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetCredentials.Lock()
	mock.calls.GetCredentials = append(mock.calls.GetCredentials, callInfo)
	mock.lockGetCredentials.Unlock()
	return mock.GetCredentialsFunc(ctx, username)
}

func (mock *userRepoMock) GetCredentialsCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetCredentials.RLock()
	calls := mock.calls.GetCredentials
	mock.lockGetCredentials.RUnlock()
	return calls
}
