package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"river-watch/internal/data"
)

// TelemetryRefreshJob keeps the per-station summary cache warm so the
// dashboard's polling never waits on the database.
type TelemetryRefreshJob struct {
	dataService *data.Service
	interval    time.Duration
	logger      *slog.Logger
}

func NewTelemetryRefreshJob(dataService *data.Service, interval time.Duration, logger *slog.Logger) *TelemetryRefreshJob {
	return &TelemetryRefreshJob{
		dataService: dataService,
		interval:    interval,
		logger:      logger,
	}
}

func (j *TelemetryRefreshJob) Name() string {
	return "telemetry_refresh"
}

func (j *TelemetryRefreshJob) Interval() time.Duration {
	return j.interval
}

func (j *TelemetryRefreshJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug("Starting background telemetry refresh", "interval", j.interval)

	if err := j.dataService.RefreshSummaries(ctx); err != nil {
		j.logger.Error("initial telemetry refresh failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("Background telemetry refresh canceled")
			return ctx.Err()
		case <-ticker.C:
			if err := j.dataService.RefreshSummaries(ctx); err != nil {
				j.logger.Error(fmt.Sprintf("Telemetry refresh failed, trying again in %s", j.interval.String()), "error", err)
			}
		}
	}
}
