package jobs

import (
	"context"
	"errors"
	"time"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PartnerAutoAssigner is satisfied by commands.AutoAssignPartnerCommandHandler.
type PartnerAutoAssigner interface {
	Handle(ctx context.Context, cmd commands.AutoAssignPartnerCommand) (order.Snapshot, error)
}

// PartnerAssignmentJob periodically gives the oldest unassigned order a free
// delivery partner picked by the configured strategy.
type PartnerAssignmentJob struct {
	handler  PartnerAutoAssigner
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewPartnerAssignmentJob(handler PartnerAutoAssigner, schedule string, logger *zap.Logger) *PartnerAssignmentJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "partner_assignment_job"))

	return &PartnerAssignmentJob{
		handler:  handler,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     newCron(logger),
		logger:   logger,
	}
}

// Start schedules the job.
func (j *PartnerAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("partner assignment job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce performs a single assignment attempt.
func (j *PartnerAssignmentJob) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	assigned, err := j.handler.Handle(ctx, commands.NewAutoAssignPartnerCommand())
	switch {
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, commands.ErrNoFreePartnersFound):
		// Nothing to do this round.
	case err != nil:
		j.logger.Error("partner assignment job failed", zap.Error(err))
	default:
		j.logger.Info("partner assigned",
			zap.String("order_id", assigned.ID),
			zap.String("partner_id", assigned.DeliveryPartnerID),
		)
	}
}

// Stop stops the job and waits for a running attempt to finish.
func (j *PartnerAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("partner assignment job stopped")
}
