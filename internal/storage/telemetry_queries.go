package storage

import (
	"context"
	"fmt"
	"time"

	"river-watch/internal/config"
	"river-watch/internal/metrics"
	"river-watch/internal/models"

	"github.com/jackc/pgx/v5"
)

// observe wraps a query with duration and error metrics.
func observe(query string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.DBQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBQueryErrors.WithLabelValues(query).Inc()
	}
	return err
}

// RainfallSummary aggregates the headline numbers for one station. The daily
// figure sums the two most recent half-hour buckets of the current day, the
// monthly and yearly figures take the latest bucket of their aggregates, and
// the water level is derived from the latest empty-height reading.
func (p *DatabaseProvider) RainfallSummary(ctx context.Context, station config.StationConfig) (*models.RainfallSummary, error) {
	summary := &models.RainfallSummary{
		Station:   station.Name,
		UpdatedAt: time.Now().UTC(),
	}

	err := observe("rainfall_summary", func() error {
		dailySQL := fmt.Sprintf(`
			SELECT COALESCE(SUM(totalrainfall), 0)
			FROM (
				SELECT totalrainfall
				FROM tag.rainfall_in_half_hourly_%s
				WHERE bucket >= NOW()::date AND source_id = $1
				ORDER BY bucket DESC
				LIMIT 2
			) subquery`, station.TableSuffix)
		if err := p.pool.QueryRow(ctx, dailySQL, station.SourceID).Scan(&summary.DailyRainfall); err != nil {
			return fmt.Errorf("daily rainfall query failed: %w", err)
		}

		monthlySQL := fmt.Sprintf(`
			SELECT COALESCE(totalrainfall, 0)
			FROM tag.rainfall_in_monthly_%s
			WHERE source_id = $1
			ORDER BY bucket DESC
			LIMIT 1`, station.TableSuffix)
		if err := p.pool.QueryRow(ctx, monthlySQL, station.SourceID).Scan(&summary.MonthlyRainfall); err != nil && err != pgx.ErrNoRows {
			return fmt.Errorf("monthly rainfall query failed: %w", err)
		}

		yearlySQL := fmt.Sprintf(`
			SELECT COALESCE(totalrainfall, 0)
			FROM tag.rainfall_in_yearly_%s
			WHERE source_id = $1
			ORDER BY bucket DESC
			LIMIT 1`, station.TableSuffix)
		if err := p.pool.QueryRow(ctx, yearlySQL, station.SourceID).Scan(&summary.YearlyRainfall); err != nil && err != pgx.ErrNoRows {
			return fmt.Errorf("yearly rainfall query failed: %w", err)
		}

		liveSQL := `
			SELECT COALESCE(flowrate, 0), ($1 - COALESCE(emptyheightinmm, $1))
			FROM tag.wms_live_data
			WHERE source_id = $2
			ORDER BY time DESC
			LIMIT 1`
		if err := p.pool.QueryRow(ctx, liveSQL, station.BottomLevelMM, station.SourceID).Scan(&summary.FlowRate, &summary.WaterLevelMM); err != nil && err != pgx.ErrNoRows {
			return fmt.Errorf("live data query failed: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (p *DatabaseProvider) HalfHourlyRainfall(ctx context.Context, station config.StationConfig) ([]models.RainfallPoint, error) {
	sql := fmt.Sprintf(`
		SELECT bucket, totalrainfall
		FROM tag.rainfall_in_half_hourly_%s
		WHERE bucket::date = NOW()::date AND source_id = $1
		ORDER BY bucket ASC`, station.TableSuffix)

	return p.queryRainfallPoints(ctx, "half_hourly_rainfall", sql, station.SourceID)
}

func (p *DatabaseProvider) MonthlyRainfall(ctx context.Context, station config.StationConfig) ([]models.RainfallPoint, error) {
	sql := fmt.Sprintf(`
		SELECT bucket, totalrainfall
		FROM tag.rainfall_in_monthly_%s
		WHERE EXTRACT(MONTH FROM bucket) = EXTRACT(MONTH FROM NOW())
			AND EXTRACT(YEAR FROM bucket) = EXTRACT(YEAR FROM NOW())
			AND source_id = $1
		ORDER BY bucket ASC`, station.TableSuffix)

	return p.queryRainfallPoints(ctx, "monthly_rainfall", sql, station.SourceID)
}

func (p *DatabaseProvider) YearlyRainfall(ctx context.Context, station config.StationConfig) ([]models.RainfallPoint, error) {
	sql := fmt.Sprintf(`
		SELECT DATE_TRUNC('month', bucket) AS bucket, SUM(totalrainfall) AS totalrainfall
		FROM tag.rainfall_in_yearly_%s
		WHERE EXTRACT(YEAR FROM bucket) = EXTRACT(YEAR FROM NOW()) AND source_id = $1
		GROUP BY bucket
		ORDER BY bucket ASC`, station.TableSuffix)

	return p.queryRainfallPoints(ctx, "yearly_rainfall", sql, station.SourceID)
}

func (p *DatabaseProvider) queryRainfallPoints(ctx context.Context, name, sql string, sourceID string) ([]models.RainfallPoint, error) {
	var points []models.RainfallPoint

	err := observe(name, func() error {
		rows, err := p.pool.Query(ctx, sql, sourceID)
		if err != nil {
			return fmt.Errorf("%s query failed: %w", name, err)
		}
		defer rows.Close()

		for rows.Next() {
			var point models.RainfallPoint
			if err := rows.Scan(&point.Bucket, &point.TotalRainfall); err != nil {
				return fmt.Errorf("%s scan failed: %w", name, err)
			}
			points = append(points, point)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

func (p *DatabaseProvider) DailyWaterLevels(ctx context.Context, station config.StationConfig) ([]models.WaterLevelPoint, error) {
	sql := fmt.Sprintf(`
		SELECT bucket, source_id, water_level
		FROM (
			SELECT
				bucket,
				source_id,
				last_emptyheight - LAG(last_emptyheight)
					OVER (PARTITION BY source_id ORDER BY bucket) AS water_level
			FROM tag.water_level_half_hourly_aggregate_%s
			WHERE bucket::date = NOW()::date AND source_id = $1
		) sub
		WHERE water_level IS NOT NULL AND water_level >= 0
		ORDER BY bucket ASC`, station.TableSuffix)

	return p.queryWaterLevelPoints(ctx, "daily_water_levels", sql, station.SourceID)
}

func (p *DatabaseProvider) MonthlyWaterLevels(ctx context.Context, station config.StationConfig) ([]models.WaterLevelPoint, error) {
	sql := fmt.Sprintf(`
		SELECT bucket, source_id, water_level
		FROM (
			SELECT
				bucket,
				source_id,
				last_emptyheight - LAG(last_emptyheight)
					OVER (PARTITION BY source_id ORDER BY bucket) AS water_level
			FROM tag.water_level_daily_aggregate_%s
			WHERE source_id = $1
		) sub
		WHERE water_level IS NOT NULL
			AND water_level >= 0
			AND EXTRACT(MONTH FROM bucket) = EXTRACT(MONTH FROM CURRENT_DATE)
			AND EXTRACT(YEAR FROM bucket) = EXTRACT(YEAR FROM CURRENT_DATE)
		ORDER BY bucket ASC`, station.TableSuffix)

	return p.queryWaterLevelPoints(ctx, "monthly_water_levels", sql, station.SourceID)
}

func (p *DatabaseProvider) YearlyWaterLevels(ctx context.Context, station config.StationConfig) ([]models.WaterLevelPoint, error) {
	sql := fmt.Sprintf(`
		SELECT bucket, source_id, water_level
		FROM (
			SELECT
				DATE_TRUNC('month', bucket) AS bucket,
				source_id,
				last_emptyheight - LAG(last_emptyheight)
					OVER (PARTITION BY source_id ORDER BY bucket) AS water_level
			FROM tag.water_level_monthly_aggregate_%s
			WHERE source_id = $1
		) sub
		WHERE water_level IS NOT NULL AND water_level >= 0
		ORDER BY bucket ASC`, station.TableSuffix)

	return p.queryWaterLevelPoints(ctx, "yearly_water_levels", sql, station.SourceID)
}

func (p *DatabaseProvider) queryWaterLevelPoints(ctx context.Context, name, sql string, sourceID string) ([]models.WaterLevelPoint, error) {
	var points []models.WaterLevelPoint

	err := observe(name, func() error {
		rows, err := p.pool.Query(ctx, sql, sourceID)
		if err != nil {
			return fmt.Errorf("%s query failed: %w", name, err)
		}
		defer rows.Close()

		for rows.Next() {
			var point models.WaterLevelPoint
			if err := rows.Scan(&point.Bucket, &point.SourceID, &point.WaterLevel); err != nil {
				return fmt.Errorf("%s scan failed: %w", name, err)
			}
			points = append(points, point)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

func (p *DatabaseProvider) HistoricalData(ctx context.Context, station config.StationConfig, days int) ([]models.LiveDataPoint, error) {
	sql := `
		SELECT
			time,
			COALESCE(($1 - emptyheightinmm), 0) AS water_level,
			COALESCE(flowrate, 0) AS flowrate,
			COALESCE(liquidlevelinmm, 0) AS liquidlevelinmm,
			COALESCE(rainfallonthedaycnt, 0) AS rainfallonthedaycnt
		FROM tag.wms_live_data
		WHERE source_id = $2 AND time >= NOW() - ($3 * INTERVAL '1 day')
		ORDER BY time ASC`

	var points []models.LiveDataPoint

	err := observe("historical_data", func() error {
		rows, err := p.pool.Query(ctx, sql, station.BottomLevelMM, station.SourceID, days)
		if err != nil {
			return fmt.Errorf("historical data query failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var point models.LiveDataPoint
			if err := rows.Scan(&point.Time, &point.WaterLevelMM, &point.FlowRate, &point.LiquidLevelMM, &point.RainfallOnDay); err != nil {
				return fmt.Errorf("historical data scan failed: %w", err)
			}
			points = append(points, point)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

func (p *DatabaseProvider) DeviceMetadata(ctx context.Context) ([]models.DeviceMetadata, error) {
	sql := `
		SELECT DISTINCT ON (source_id)
			time, host, altitude, datetime, latitude, location_name,
			longitude, vndid, source_id, sensor1, sensor2
		FROM tag.wms_metadata
		ORDER BY source_id, time DESC`

	var devices []models.DeviceMetadata

	err := observe("device_metadata", func() error {
		rows, err := p.pool.Query(ctx, sql)
		if err != nil {
			return fmt.Errorf("device metadata query failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var d models.DeviceMetadata
			if err := rows.Scan(&d.Time, &d.Host, &d.Altitude, &d.DateTime, &d.Latitude, &d.LocationName, &d.Longitude, &d.VendorID, &d.SourceID, &d.Sensor1, &d.Sensor2); err != nil {
				return fmt.Errorf("device metadata scan failed: %w", err)
			}
			devices = append(devices, d)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return devices, nil
}
