package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/mock"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
	"go.uber.org/mock/gomock"
)

// auditSink collects the entries an AuditRecorder persists.
type auditSink struct {
	mu      sync.Mutex
	entries []models.AuditLogEntry
}

func (s *auditSink) all() []models.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditLogEntry(nil), s.entries...)
}

func (s *auditSink) last(t *testing.T) models.AuditLogEntry {
	t.Helper()
	all := s.all()
	if len(all) == 0 {
		t.Fatal("no audit entries recorded")
	}
	return all[len(all)-1]
}

func newTestAudit(ctrl *gomock.Controller) (*guard.AuditRecorder, *auditSink) {
	sink := &auditSink{}
	repo := mock.NewMockAuditRepository(ctrl)
	repo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.AuditLogEntry) error {
			sink.mu.Lock()
			defer sink.mu.Unlock()
			sink.entries = append(sink.entries, entry)
			return nil
		}).
		AnyTimes()
	return guard.NewAuditRecorder(repo, nil, logger.Nop()), sink
}

func newTestLimiter(t *testing.T, max int) *guard.RateLimiter {
	t.Helper()
	l, err := guard.NewRateLimiter(max, time.Minute)
	if err != nil {
		t.Fatalf("create limiter: %v", err)
	}
	return l
}

func withUser(id int64) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, id)
}
