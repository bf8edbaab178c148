package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"dipadubank/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestPruneAudit_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	audit.EXPECT().PruneOlderThan(gomock.Any(), 72*time.Hour).DoAndReturn(
		func(context.Context, time.Duration) (int64, error) {
			cancel()
			return 3, nil
		},
	).Times(1)

	done := make(chan struct{})
	go func() {
		pruneAudit(ctx, audit, 72*time.Hour, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pruneAudit did not return after cancellation")
	}
}

func TestPruneAudit_KeepsRunningAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	audit.EXPECT().PruneOlderThan(gomock.Any(), time.Hour).DoAndReturn(
		func(context.Context, time.Duration) (int64, error) {
			calls++
			if calls >= 2 {
				cancel()
			}
			return 0, errors.New("database is locked")
		},
	).MinTimes(2)

	done := make(chan struct{})
	go func() {
		pruneAudit(ctx, audit, time.Hour, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pruneAudit did not return after cancellation")
	}
	assert.GreaterOrEqual(t, calls, 2)
}
