package jobs

import (
	"context"
	"time"

	"foodies/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PaymentExpirer is satisfied by commands.ExpirePaymentsCommandHandler.
type PaymentExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePaymentsCommand) (int, error)
}

// PaymentExpiryJob cancels payment intents that stayed PENDING longer than
// the intent TTL.
type PaymentExpiryJob struct {
	handler  PaymentExpirer
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewPaymentExpiryJob(handler PaymentExpirer, ttl time.Duration, schedule string, logger *zap.Logger) *PaymentExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "payment_expiry_job"))

	return &PaymentExpiryJob{
		handler:  handler,
		ttl:      ttl,
		schedule: schedule,
		cron:     newCron(logger),
		logger:   logger,
	}
}

// Start validates the TTL and schedules the job.
func (j *PaymentExpiryJob) Start() error {
	if _, err := commands.NewExpirePaymentsCommand(j.ttl); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("payment expiry job started",
		zap.String("schedule", j.schedule),
		zap.Duration("ttl", j.ttl),
	)
	return nil
}

// RunOnce expires stale intents once and returns how many were cancelled.
func (j *PaymentExpiryJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewExpirePaymentsCommand(j.ttl)
	if err != nil {
		j.logger.Error("payment expiry job misconfigured", zap.Error(err))
		return 0
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("payment expiry job failed", zap.Int("expired", expired), zap.Error(err))
	} else if expired > 0 {
		j.logger.Info("stale payment intents expired", zap.Int("expired", expired))
	}
	return expired
}

// Stop stops the job and waits for a running pass to finish.
func (j *PaymentExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("payment expiry job stopped")
}
