package payout

import (
	"context"
	"sync"

	"github.com/peakline/commission-backend/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	ListForPeriodFunc func(ctx context.Context, rng domain.DateRange, filter domain.LedgerFilter) ([]domain.LedgerRow, error)

	calls struct {
		ListForPeriod []struct {
			Rng    domain.DateRange
			Filter domain.LedgerFilter
		}
	}
	lockListForPeriod sync.RWMutex
}

func (mock *ledgerRepoMock) ListForPeriod(ctx context.Context, rng domain.DateRange, filter domain.LedgerFilter) ([]domain.LedgerRow, error) {
	if mock.ListForPeriodFunc == nil {
		panic("ledgerRepoMock.ListForPeriodFunc: method is nil but ledgerRepo.ListForPeriod was just called")
	}
	callInfo := struct {
		Rng    domain.DateRange
		Filter domain.LedgerFilter
	}{Rng: rng, Filter: filter}
	mock.lockListForPeriod.Lock()
	mock.calls.ListForPeriod = append(mock.calls.ListForPeriod, callInfo)
	mock.lockListForPeriod.Unlock()
	return mock.ListForPeriodFunc(ctx, rng, filter)
}

func (mock *ledgerRepoMock) ListForPeriodCalls() []struct {
	Rng    domain.DateRange
	Filter domain.LedgerFilter
} {
	mock.lockListForPeriod.RLock()
	calls := mock.calls.ListForPeriod
	mock.lockListForPeriod.RUnlock()
	return calls
}
