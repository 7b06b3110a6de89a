package payout

import (
	"context"
	"sync"

	"github.com/peakline/commission-backend/internal/domain"
)

var _ payoutRepo = &payoutRepoMock{}

type payoutRepoMock struct {
	ReplaceEntriesFunc   func(ctx context.Context, rng domain.DateRange, entries []domain.PayoutEntry) error
	ListEntriesFunc      func(ctx context.Context, rng domain.DateRange) ([]domain.PayoutEntry, error)
	CreateSubmissionFunc func(ctx context.Context, sub domain.Submission) (domain.Submission, error)
	GetSubmissionFunc    func(ctx context.Context, rng domain.DateRange) (domain.Submission, error)

	calls struct {
		ReplaceEntries []struct {
			Rng     domain.DateRange
			Entries []domain.PayoutEntry
		}
		ListEntries []struct {
			Rng domain.DateRange
		}
		CreateSubmission []struct {
			Sub domain.Submission
		}
		GetSubmission []struct {
			Rng domain.DateRange
		}
	}
	lockReplaceEntries   sync.RWMutex
	lockListEntries      sync.RWMutex
	lockCreateSubmission sync.RWMutex
	lockGetSubmission    sync.RWMutex
}

func (mock *payoutRepoMock) ReplaceEntries(ctx context.Context, rng domain.DateRange, entries []domain.PayoutEntry) error {
	if mock.ReplaceEntriesFunc == nil {
		panic("payoutRepoMock.ReplaceEntriesFunc: method is nil but payoutRepo.ReplaceEntries was just called")
	}
	callInfo := struct {
		Rng     domain.DateRange
		Entries []domain.PayoutEntry
	}{Rng: rng, Entries: entries}
	mock.lockReplaceEntries.Lock()
	mock.calls.ReplaceEntries = append(mock.calls.ReplaceEntries, callInfo)
	mock.lockReplaceEntries.Unlock()
	return mock.ReplaceEntriesFunc(ctx, rng, entries)
}

func (mock *payoutRepoMock) ReplaceEntriesCalls() []struct {
	Rng     domain.DateRange
	Entries []domain.PayoutEntry
} {
	mock.lockReplaceEntries.RLock()
	calls := mock.calls.ReplaceEntries
	mock.lockReplaceEntries.RUnlock()
	return calls
}

func (mock *payoutRepoMock) ListEntries(ctx context.Context, rng domain.DateRange) ([]domain.PayoutEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("payoutRepoMock.ListEntriesFunc: method is nil but payoutRepo.ListEntries was just called")
	}
	callInfo := struct {
		Rng domain.DateRange
	}{Rng: rng}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, rng)
}

func (mock *payoutRepoMock) ListEntriesCalls() []struct {
	Rng domain.DateRange
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *payoutRepoMock) CreateSubmission(ctx context.Context, sub domain.Submission) (domain.Submission, error) {
	if mock.CreateSubmissionFunc == nil {
		panic("payoutRepoMock.CreateSubmissionFunc: method is nil but payoutRepo.CreateSubmission was just called")
	}
	callInfo := struct {
		Sub domain.Submission
	}{Sub: sub}
	mock.lockCreateSubmission.Lock()
	mock.calls.CreateSubmission = append(mock.calls.CreateSubmission, callInfo)
	mock.lockCreateSubmission.Unlock()
	return mock.CreateSubmissionFunc(ctx, sub)
}

func (mock *payoutRepoMock) CreateSubmissionCalls() []struct {
	Sub domain.Submission
} {
	mock.lockCreateSubmission.RLock()
	calls := mock.calls.CreateSubmission
	mock.lockCreateSubmission.RUnlock()
	return calls
}

func (mock *payoutRepoMock) GetSubmission(ctx context.Context, rng domain.DateRange) (domain.Submission, error) {
	if mock.GetSubmissionFunc == nil {
		panic("payoutRepoMock.GetSubmissionFunc: method is nil but payoutRepo.GetSubmission was just called")
	}
	callInfo := struct {
		Rng domain.DateRange
	}{Rng: rng}
	mock.lockGetSubmission.Lock()
	mock.calls.GetSubmission = append(mock.calls.GetSubmission, callInfo)
	mock.lockGetSubmission.Unlock()
	return mock.GetSubmissionFunc(ctx, rng)
}

func (mock *payoutRepoMock) GetSubmissionCalls() []struct {
	Rng domain.DateRange
} {
	mock.lockGetSubmission.RLock()
	calls := mock.calls.GetSubmission
	mock.lockGetSubmission.RUnlock()
	return calls
}
