// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatsSnapshotJob - Runs daily at midnight to log the order dashboard
// aggregates (totals by status, revenue).
//
// Order status transitions are deliberately NOT automated: every lifecycle
// change goes through the change-status operation with an acting principal,
// so the audit trail always names who moved the order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
