package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"cargotrack/internal/core/application/usecases/queries"
)

// statsSnapshotSchedule runs the snapshot daily at midnight.
const statsSnapshotSchedule = "0 0 0 * * *"

// StatsSnapshotJob periodically logs the dashboard aggregates so operational
// trends survive in the logs even when nobody is watching the dashboard.
// It never mutates orders; status transitions are always operator-driven.
type StatsSnapshotJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsSnapshotJob creates the daily stats snapshot job.
func NewStatsSnapshotJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_snapshot_job"),
	}
}

// Start schedules the snapshot.
func (j *StatsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(statsSnapshotSchedule, func() {
		ctx := context.Background()

		stats, statsErr := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if statsErr != nil {
			j.logger.ErrorContext(ctx, "Stats snapshot job failed", "error", statsErr)
			return
		}

		j.logger.InfoContext(ctx, "Order stats snapshot",
			"total_orders", stats.TotalOrders,
			"active_orders", stats.ActiveOrders,
			"delivered_orders", stats.DeliveredOrders,
			"total_revenue", stats.TotalRevenue,
			"monthly_revenue", stats.MonthlyRevenue,
		)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started (running daily)")
	return nil
}

// Stop stops the snapshot job.
func (j *StatsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}
