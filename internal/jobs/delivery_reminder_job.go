package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"parceltrack/internal/core/application/usecases/commands"
)

// DeliveryReminderJob runs a scheduled sweep that publishes reminders for
// shipments expected to arrive the next day.
type DeliveryReminderJob struct {
	handler  commands.NotifyUpcomingDeliveriesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryReminderJob creates a reminder job on the given cron schedule
// (standard five-field syntax, e.g. "0 8 * * *" for daily at 08:00).
func NewDeliveryReminderJob(
	handler commands.NotifyUpcomingDeliveriesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the reminder job on its schedule.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewNotifyUpcomingDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}
