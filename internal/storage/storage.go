package storage

import (
	"context"

	"river-watch/internal/config"
	"river-watch/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// TelemetryStore is the read-only query surface over the river telemetry
// database. All queries are parameterized; the only interpolated fragment is
// the station table suffix, which is validated at config load.
type TelemetryStore interface {
	Close()
	Ping(ctx context.Context) error

	RainfallSummary(ctx context.Context, station config.StationConfig) (*models.RainfallSummary, error)
	HalfHourlyRainfall(ctx context.Context, station config.StationConfig) ([]models.RainfallPoint, error)
	MonthlyRainfall(ctx context.Context, station config.StationConfig) ([]models.RainfallPoint, error)
	YearlyRainfall(ctx context.Context, station config.StationConfig) ([]models.RainfallPoint, error)
	DailyWaterLevels(ctx context.Context, station config.StationConfig) ([]models.WaterLevelPoint, error)
	MonthlyWaterLevels(ctx context.Context, station config.StationConfig) ([]models.WaterLevelPoint, error)
	YearlyWaterLevels(ctx context.Context, station config.StationConfig) ([]models.WaterLevelPoint, error)
	HistoricalData(ctx context.Context, station config.StationConfig, days int) ([]models.LiveDataPoint, error)
	DeviceMetadata(ctx context.Context) ([]models.DeviceMetadata, error)
}
