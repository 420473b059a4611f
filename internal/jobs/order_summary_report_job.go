package jobs

import (
	"context"
	"log/slog"

	"orderservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderSummaryReportJob periodically logs order statistics.
// The schedule is configurable; the default is once per minute.
type OrderSummaryReportJob struct {
	handler  queries.GetOrdersSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderSummaryReportJob creates a job that reports order statistics on the
// given cron schedule (with seconds field).
func NewOrderSummaryReportJob(
	handler queries.GetOrdersSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderSummaryReportJob {
	return &OrderSummaryReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_summary_report_job"),
	}
}

// Start begins the report job on its schedule.
func (j *OrderSummaryReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetOrdersSummaryQuery()

		summary, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order summary report job failed", "error", handleErr)
			return
		}

		attrs := []any{"total_orders", summary.TotalOrders}
		if summary.LastCreatedAt != nil {
			attrs = append(attrs, "last_created_at", *summary.LastCreatedAt)
		}
		j.logger.InfoContext(ctx, "Order summary", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order summary report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *OrderSummaryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order summary report job stopped")
}
