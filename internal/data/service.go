package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"river-watch/internal/config"
	"river-watch/internal/models"
	"river-watch/internal/storage"
)

// Service keeps the per-station rainfall summaries warm in the cache so the
// dashboard's headline endpoint does not hit the database on every poll.
type Service struct {
	store    storage.TelemetryStore
	cache    CacheProvider
	logger   *slog.Logger
	stations []config.StationConfig
	ttl      time.Duration
}

func NewService(store storage.TelemetryStore, cache CacheProvider, logger *slog.Logger, stations []config.StationConfig, ttl time.Duration) *Service {
	return &Service{
		store:    store,
		cache:    cache,
		logger:   logger,
		stations: stations,
		ttl:      ttl,
	}
}

func summaryKey(station string) string {
	return "summary:" + station
}

// RefreshSummaries queries every configured station and replaces its cached
// summary. A failing station is logged and skipped so the others still update.
func (s *Service) RefreshSummaries(ctx context.Context) error {
	for _, station := range s.stations {
		summary, err := s.store.RainfallSummary(ctx, station)
		if err != nil {
			s.logger.Error("failed to refresh station summary", "station", station.Name, "error", err)
			continue
		}

		payload, err := json.Marshal(summary)
		if err != nil {
			s.logger.Error("failed to marshal station summary", "station", station.Name, "error", err)
			continue
		}

		s.cache.Set(ctx, summaryKey(station.Name), payload, s.ttl)
		s.logger.Debug("cached station summary", "station", station.Name, "ttl", s.ttl)
	}

	return nil
}

// Summary returns the cached summary for a station, falling back to a direct
// query (and re-populating the cache) on a miss.
func (s *Service) Summary(ctx context.Context, station config.StationConfig) (*models.RainfallSummary, error) {
	if payload, found := s.cache.Get(ctx, summaryKey(station.Name)); found {
		var summary models.RainfallSummary
		if err := json.Unmarshal(payload, &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("discarding unreadable cached summary", "station", station.Name)
	}

	summary, err := s.store.RainfallSummary(ctx, station)
	if err != nil {
		return nil, fmt.Errorf("failed to query station summary: %w", err)
	}

	if payload, err := json.Marshal(summary); err == nil {
		s.cache.Set(ctx, summaryKey(station.Name), payload, s.ttl)
	}

	return summary, nil
}
