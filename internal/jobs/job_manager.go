package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Default schedules, in the six-field (with seconds) cron syntax.
const (
	DefaultAssignmentSchedule = "*/5 * * * * *"
	DefaultExpirySchedule     = "0 * * * * *"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentJob *PartnerAssignmentJob
	expiryJob     *PaymentExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// A nil job is skipped, e.g. when assignment is manual.
func NewJobManager(assignmentJob *PartnerAssignmentJob, expiryJob *PaymentExpiryJob) *JobManager {
	return &JobManager{assignmentJob: assignmentJob, expiryJob: expiryJob}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.assignmentJob != nil {
		if err := jm.assignmentJob.Start(); err != nil {
			return fmt.Errorf("failed to start partner assignment job: %w", err)
		}
	}

	if jm.expiryJob != nil {
		if err := jm.expiryJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			if jm.assignmentJob != nil {
				jm.assignmentJob.Stop()
			}
			return fmt.Errorf("failed to start payment expiry job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	if jm.assignmentJob != nil {
		jm.assignmentJob.Stop()
	}
	if jm.expiryJob != nil {
		jm.expiryJob.Stop()
	}
}

// newCron builds a seconds-aware scheduler that never overlaps runs of the
// same job.
func newCron(log *zap.Logger) *cron.Cron {
	cronLog := cronLogger{log: log.Sugar()}
	return cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
