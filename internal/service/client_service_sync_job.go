package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
)

type clientSyncJob struct {
	syncService ClientSyncService
	queue       store.LocalQueueRepository
	monitor     *connectivity.Monitor
	cfg         config.WorkersConfig
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a background worker that drains the queue on a
// ticker, re-drains immediately when connectivity returns, and compacts old
// synced records on the retention schedule. The job is idle until Start is
// called.
func NewClientSyncJob(syncService ClientSyncService, queue store.LocalQueueRepository, monitor *connectivity.Monitor, cfg config.WorkersConfig, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		queue:       queue,
		monitor:     monitor,
		cfg:         cfg,
		logger:      log,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a goroutine multiplexing three wakeup sources: the periodic sync
// ticker, the connectivity monitor's offline-to-online transitions, and the
// retention ticker. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	syncInterval := j.cfg.SyncInterval
	if syncInterval <= 0 {
		syncInterval = 2 * time.Minute
	}
	retentionInterval := j.cfg.RetentionInterval
	if retentionInterval <= 0 {
		retentionInterval = time.Hour
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	transitions := j.monitor.Subscribe()

	go func() {
		defer j.wg.Done()

		syncTicker := time.NewTicker(syncInterval)
		defer syncTicker.Stop()
		retentionTicker := time.NewTicker(retentionInterval)
		defer retentionTicker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-syncTicker.C:
				j.runSync(jobCtx)
			case tr := <-transitions:
				if tr.To == connectivity.StateOnline {
					j.runSync(jobCtx)
				}
			case <-retentionTicker.C:
				j.runRetention(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) runSync(ctx context.Context) {
	if j.monitor.State() == connectivity.StateOffline {
		return
	}

	if _, err := j.syncService.TriggerSync(ctx); err != nil {
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.runSync").
			Msg("background sync pass failed")
	}
}

func (j *clientSyncJob) runRetention(ctx context.Context) {
	age := j.cfg.RetentionAge
	if age <= 0 {
		age = 7 * 24 * time.Hour
	}

	purged, err := j.queue.PurgeSynced(ctx, time.Now().UTC().Add(-age))
	if err != nil {
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.runRetention").
			Msg("retention purge failed")
		return
	}
	if purged > 0 {
		j.logger.Info().
			Str("func", "clientSyncJob.runRetention").
			Int64("purged", purged).
			Msg("compacted synced records")
	}
}
