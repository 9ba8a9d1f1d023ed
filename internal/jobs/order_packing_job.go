package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderPackingJob manages the scheduled packing of orders.
// Runs every five seconds to pack pending orders whose line items
// have all been fulfilled.
type OrderPackingJob struct {
	handler commands.PackReadyOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderPackingJob creates a new job for packing ready orders.
// Uses PackReadyOrdersCommandHandler to sweep pending orders every five seconds.
func NewOrderPackingJob(handler commands.PackReadyOrdersCommandHandler, logger *slog.Logger) *OrderPackingJob {
	return &OrderPackingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_packing_job"),
	}
}

// Start begins the order packing job to run every five seconds.
func (j *OrderPackingJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPackReadyOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order packing job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order packing job started (running every five seconds)")
	return nil
}

// Stop stops the order packing job.
func (j *OrderPackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order packing job stopped")
}
