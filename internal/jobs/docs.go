// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. PartnerAssignmentJob - assigns the oldest unassigned order to a free delivery partner
// 2. PaymentExpiryJob - cancels payment intents that were never completed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewPartnerAssignmentJob(autoAssignHandler, "", logger),
//		jobs.NewPaymentExpiryJob(expireHandler, 30*time.Minute, "", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. Assignment runs every
// five seconds and expiry every minute unless configured otherwise. A run
// that is still going when the next one is due is skipped.
//
// # Error Handling
//
// - Assignment job ignores expected business outcomes (no orders, no free partners)
// - Expiry job logs failures; payments that did expire stay expired
// - Failed job starts will stop any already running jobs
package jobs
