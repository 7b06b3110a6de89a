package exclusion

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/peakline/commission-backend/internal/domain"
)

var _ exclusionRepo = &exclusionRepoMock{}

type exclusionRepoMock struct {
	CreateFunc            func(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (domain.ExclusionRecord, error)
	UpdateFunc            func(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error)
	ListAllFunc           func(ctx context.Context) ([]domain.ExclusionRecord, error)
	ListActiveFunc        func(ctx context.Context) ([]domain.ExclusionRecord, error)
	ActiveOverlappingFunc func(ctx context.Context, login string, rng domain.DateRange) ([]domain.ExclusionRecord, error)
	ActiveForRangeFunc    func(ctx context.Context, rng domain.DateRange) ([]domain.ExclusionRecord, error)

	calls struct {
		Create []struct {
			Rec domain.ExclusionRecord
		}
		GetByID []struct {
			ID uuid.UUID
		}
		Update []struct {
			Rec domain.ExclusionRecord
		}
		ListAll           []struct{}
		ListActive        []struct{}
		ActiveOverlapping []struct {
			Login string
			Rng   domain.DateRange
		}
		ActiveForRange []struct {
			Rng domain.DateRange
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockUpdate            sync.RWMutex
	lockListAll           sync.RWMutex
	lockListActive        sync.RWMutex
	lockActiveOverlapping sync.RWMutex
	lockActiveForRange    sync.RWMutex
}

func (mock *exclusionRepoMock) Create(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error) {
	if mock.CreateFunc == nil {
		panic("exclusionRepoMock.CreateFunc: method is nil but exclusionRepo.Create was just called")
	}
	callInfo := struct {
		Rec domain.ExclusionRecord
	}{Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *exclusionRepoMock) CreateCalls() []struct {
	Rec domain.ExclusionRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *exclusionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.ExclusionRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("exclusionRepoMock.GetByIDFunc: method is nil but exclusionRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *exclusionRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *exclusionRepoMock) Update(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error) {
	if mock.UpdateFunc == nil {
		panic("exclusionRepoMock.UpdateFunc: method is nil but exclusionRepo.Update was just called")
	}
	callInfo := struct {
		Rec domain.ExclusionRecord
	}{Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec)
}

func (mock *exclusionRepoMock) UpdateCalls() []struct {
	Rec domain.ExclusionRecord
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *exclusionRepoMock) ListAll(ctx context.Context) ([]domain.ExclusionRecord, error) {
	if mock.ListAllFunc == nil {
		panic("exclusionRepoMock.ListAllFunc: method is nil but exclusionRepo.ListAll was just called")
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *exclusionRepoMock) ListAllCalls() []struct{} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *exclusionRepoMock) ListActive(ctx context.Context) ([]domain.ExclusionRecord, error) {
	if mock.ListActiveFunc == nil {
		panic("exclusionRepoMock.ListActiveFunc: method is nil but exclusionRepo.ListActive was just called")
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, struct{}{})
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *exclusionRepoMock) ListActiveCalls() []struct{} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *exclusionRepoMock) ActiveOverlapping(ctx context.Context, login string, rng domain.DateRange) ([]domain.ExclusionRecord, error) {
	if mock.ActiveOverlappingFunc == nil {
		panic("exclusionRepoMock.ActiveOverlappingFunc: method is nil but exclusionRepo.ActiveOverlapping was just called")
	}
	callInfo := struct {
		Login string
		Rng   domain.DateRange
	}{Login: login, Rng: rng}
	mock.lockActiveOverlapping.Lock()
	mock.calls.ActiveOverlapping = append(mock.calls.ActiveOverlapping, callInfo)
	mock.lockActiveOverlapping.Unlock()
	return mock.ActiveOverlappingFunc(ctx, login, rng)
}

func (mock *exclusionRepoMock) ActiveOverlappingCalls() []struct {
	Login string
	Rng   domain.DateRange
} {
	mock.lockActiveOverlapping.RLock()
	calls := mock.calls.ActiveOverlapping
	mock.lockActiveOverlapping.RUnlock()
	return calls
}

func (mock *exclusionRepoMock) ActiveForRange(ctx context.Context, rng domain.DateRange) ([]domain.ExclusionRecord, error) {
	if mock.ActiveForRangeFunc == nil {
		panic("exclusionRepoMock.ActiveForRangeFunc: method is nil but exclusionRepo.ActiveForRange was just called")
	}
	callInfo := struct {
		Rng domain.DateRange
	}{Rng: rng}
	mock.lockActiveForRange.Lock()
	mock.calls.ActiveForRange = append(mock.calls.ActiveForRange, callInfo)
	mock.lockActiveForRange.Unlock()
	return mock.ActiveForRangeFunc(ctx, rng)
}

func (mock *exclusionRepoMock) ActiveForRangeCalls() []struct {
	Rng domain.DateRange
} {
	mock.lockActiveForRange.RLock()
	calls := mock.calls.ActiveForRange
	mock.lockActiveForRange.RUnlock()
	return calls
}
