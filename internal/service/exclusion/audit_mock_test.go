package exclusion

import (
	"context"
	"sync"

	"github.com/peakline/commission-backend/internal/domain"
)

var _ auditLog = &auditLogMock{}

type auditLogMock struct {
	LogFunc  func(ctx context.Context, entry domain.AuditEntry) error
	ListFunc func(ctx context.Context, login *string, limit int) ([]domain.AuditEntry, error)

	calls struct {
		Log []struct {
			Entry domain.AuditEntry
		}
		List []struct {
			Login *string
			Limit int
		}
	}
	lockLog  sync.RWMutex
	lockList sync.RWMutex
}

func (mock *auditLogMock) Log(ctx context.Context, entry domain.AuditEntry) error {
	if mock.LogFunc == nil {
		panic("auditLogMock.LogFunc: method is nil but auditLog.Log was just called")
	}
	callInfo := struct {
		Entry domain.AuditEntry
	}{Entry: entry}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, entry)
}

func (mock *auditLogMock) LogCalls() []struct {
	Entry domain.AuditEntry
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *auditLogMock) List(ctx context.Context, login *string, limit int) ([]domain.AuditEntry, error) {
	if mock.ListFunc == nil {
		panic("auditLogMock.ListFunc: method is nil but auditLog.List was just called")
	}
	callInfo := struct {
		Login *string
		Limit int
	}{Login: login, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, login, limit)
}

func (mock *auditLogMock) ListCalls() []struct {
	Login *string
	Limit int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
