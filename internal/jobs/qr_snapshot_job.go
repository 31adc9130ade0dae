package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// snapshotRefreshSchedule runs the reconciliation every 30 seconds. QR
// snapshots are refreshed best-effort on the mutation path, so the job only
// has to converge the rare refreshes that failed.
const snapshotRefreshSchedule = "*/30 * * * * *"

// snapshotBatchSize bounds how many stale orders one run repairs.
const snapshotBatchSize = 50

// QRSnapshotJob manages the scheduled reconciliation of QR snapshots.
// It finds orders whose snapshot is missing or stale and regenerates them.
type QRSnapshotJob struct {
	handler commands.RefreshQRSnapshotsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQRSnapshotJob creates a new job for reconciling QR snapshots.
func NewQRSnapshotJob(handler commands.RefreshQRSnapshotsCommandHandler, logger *slog.Logger) *QRSnapshotJob {
	return &QRSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "qr_snapshot_job"),
	}
}

// Start begins the snapshot reconciliation job.
func (j *QRSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(snapshotRefreshSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshQRSnapshotsCommand(snapshotBatchSize)

		refreshed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "QR snapshot reconciliation failed", "error", err)
			return
		}
		if refreshed > 0 {
			j.logger.InfoContext(ctx, "QR snapshots refreshed", "count", refreshed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "QR snapshot job started (running every 30 seconds)")
	return nil
}

// Stop stops the snapshot reconciliation job.
func (j *QRSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "QR snapshot job stopped")
}
