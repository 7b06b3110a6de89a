package payout

import (
	"context"
	"sync"

	"github.com/peakline/commission-backend/internal/domain"
)

var _ exclusionLister = &exclusionListerMock{}

type exclusionListerMock struct {
	ActiveLoginsForFunc func(ctx context.Context, rng domain.DateRange) (domain.ExcludedLogins, error)

	calls struct {
		ActiveLoginsFor []struct {
			Rng domain.DateRange
		}
	}
	lockActiveLoginsFor sync.RWMutex
}

func (mock *exclusionListerMock) ActiveLoginsFor(ctx context.Context, rng domain.DateRange) (domain.ExcludedLogins, error) {
	if mock.ActiveLoginsForFunc == nil {
		panic("exclusionListerMock.ActiveLoginsForFunc: method is nil but exclusionLister.ActiveLoginsFor was just called")
	}
	callInfo := struct {
		Rng domain.DateRange
	}{Rng: rng}
	mock.lockActiveLoginsFor.Lock()
	mock.calls.ActiveLoginsFor = append(mock.calls.ActiveLoginsFor, callInfo)
	mock.lockActiveLoginsFor.Unlock()
	return mock.ActiveLoginsForFunc(ctx, rng)
}

func (mock *exclusionListerMock) ActiveLoginsForCalls() []struct {
	Rng domain.DateRange
} {
	mock.lockActiveLoginsFor.RLock()
	calls := mock.calls.ActiveLoginsFor
	mock.lockActiveLoginsFor.RUnlock()
	return calls
}
