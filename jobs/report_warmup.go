package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/warungkas/warungkas/internal/reports"
	"github.com/warungkas/warungkas/internal/shared"
)

// ReportWarmupJob pre-builds the daily, monthly, and yearly report caches so
// the first dashboard hit after an invalidation stays fast.
type ReportWarmupJob struct {
	Reports *reports.Service
	Logger  *slog.Logger
	clock   func() time.Time
}

// NewReportWarmupJob wires dependencies for the warmup handler.
func NewReportWarmupJob(reportsSvc *reports.Service, logger *slog.Logger) *ReportWarmupJob {
	return &ReportWarmupJob{
		Reports: reportsSvc,
		Logger:  logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes report warmup tasks.
func (j *ReportWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Reports == nil {
		return errors.New("report warmup: handler not configured")
	}
	var payload ReportWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	day := j.now()
	if payload.Date != "" {
		parsed, ok := shared.ParseRecordDate(payload.Date)
		if !ok {
			return asynq.SkipRetry
		}
		day = parsed
	}

	logger := j.logger().With(slog.String("date", day.Format(shared.DayLayout)))
	logger.Info("starting report warmup")
	start := j.now()

	warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := j.Reports.Daily(warmCtx, day); err != nil {
		logger.Error("warm daily report", slog.Any("error", err))
		return err
	}
	if _, err := j.Reports.Monthly(warmCtx, day.Year(), day.Month()); err != nil {
		logger.Error("warm monthly report", slog.Any("error", err))
		return err
	}
	if _, err := j.Reports.Yearly(warmCtx, day.Year()); err != nil {
		logger.Error("warm yearly report", slog.Any("error", err))
		return err
	}

	logger.Info("completed report warmup", slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *ReportWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskReportWarmup))
	}
	return slog.Default().With(slog.String("job", TaskReportWarmup))
}

func (j *ReportWarmupJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}
