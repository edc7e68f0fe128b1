package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/mock"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubSyncService считает вызовы TriggerSync
type stubSyncService struct {
	calls atomic.Int64
}

func (s *stubSyncService) TriggerSync(_ context.Context) (models.SyncResult, error) {
	s.calls.Add(1)
	return models.SyncResult{}, nil
}

type flakyProber struct {
	failing atomic.Bool
}

func (p *flakyProber) Ping(_ context.Context) error {
	if p.failing.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func TestSyncJob_SyncsWhenConnectivityReturns(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockLocalQueueRepository(ctrl)

	prober := &flakyProber{}
	prober.failing.Store(true)
	monitor := connectivity.NewMonitor(prober, time.Hour, logger.Nop())
	monitor.ForceCheck(context.Background()) // unknown -> offline

	syncSvc := &stubSyncService{}
	job := NewClientSyncJob(syncSvc, queue, monitor, config.WorkersConfig{
		SyncInterval:      time.Hour,
		RetentionInterval: time.Hour,
	}, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	// связь восстановилась
	prober.failing.Store(false)
	monitor.ForceCheck(context.Background()) // offline -> online

	require.Eventually(t, func() bool {
		return syncSvc.calls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond, "sync was not triggered on reconnect")
}

func TestSyncJob_PeriodicSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockLocalQueueRepository(ctrl)

	monitor := connectivity.NewMonitor(&flakyProber{}, time.Hour, logger.Nop())
	monitor.ForceCheck(context.Background()) // online

	syncSvc := &stubSyncService{}
	job := NewClientSyncJob(syncSvc, queue, monitor, config.WorkersConfig{
		SyncInterval:      20 * time.Millisecond,
		RetentionInterval: time.Hour,
	}, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	require.Eventually(t, func() bool {
		return syncSvc.calls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond, "periodic sync did not run")
}

func TestSyncJob_RetentionPurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockLocalQueueRepository(ctrl)

	purged := make(chan struct{}, 1)
	queue.EXPECT().PurgeSynced(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time) (int64, error) {
			select {
			case purged <- struct{}{}:
			default:
			}
			return 3, nil
		}).MinTimes(1)

	monitor := connectivity.NewMonitor(&flakyProber{}, time.Hour, logger.Nop())

	job := NewClientSyncJob(&stubSyncService{}, queue, monitor, config.WorkersConfig{
		SyncInterval:      time.Hour,
		RetentionInterval: 20 * time.Millisecond,
		RetentionAge:      time.Hour,
	}, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	select {
	case <-purged:
	case <-time.After(2 * time.Second):
		t.Fatal("retention purge did not run")
	}
}

func TestSyncJob_SkipsSyncWhileOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockLocalQueueRepository(ctrl)

	prober := &flakyProber{}
	prober.failing.Store(true)
	monitor := connectivity.NewMonitor(prober, time.Hour, logger.Nop())
	monitor.ForceCheck(context.Background()) // offline

	syncSvc := &stubSyncService{}
	job := NewClientSyncJob(syncSvc, queue, monitor, config.WorkersConfig{
		SyncInterval:      20 * time.Millisecond,
		RetentionInterval: time.Hour,
	}, logger.Nop())

	job.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), syncSvc.calls.Load())
}

func TestSyncJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockLocalQueueRepository(ctrl)

	monitor := connectivity.NewMonitor(&flakyProber{}, time.Hour, logger.Nop())
	job := NewClientSyncJob(&stubSyncService{}, queue, monitor, config.WorkersConfig{}, logger.Nop())

	job.Start(context.Background())
	job.Stop()
	job.Stop() // повторный Stop не должен паниковать или блокироваться
}
