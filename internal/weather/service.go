package weather

import (
	"context"
	"time"
)

// Service fronts the external weather/sun/tide sources and maintains the
// conditions snapshot cache for saved locations.
type Service struct {
	provider Provider
	sun      SunProvider
	cache    *SnapshotCache
	now      func() time.Time
}

// NewService creates a Service over the given providers and cache.
func NewService(provider Provider, sun SunProvider, cache *SnapshotCache) *Service {
	return &Service{
		provider: provider,
		sun:      sun,
		cache:    cache,
		now:      time.Now,
	}
}

// Current fetches present conditions and scores them.
func (s *Service) Current(ctx context.Context, lat, lon float64) (Report, error) {
	obs, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		return Report{}, err
	}
	score := FishingScore(obs)
	return Report{
		Observation: obs,
		Score:       score,
		Label:       ScoreLabel(score),
	}, nil
}

// Forecast fetches the raw forward observations.
func (s *Service) Forecast(ctx context.Context, lat, lon float64) ([]Observation, error) {
	return s.provider.Forecast(ctx, lat, lon)
}

// DailyForecast fetches the forecast and collapses it into per-day scored
// summaries.
func (s *Service) DailyForecast(ctx context.Context, lat, lon float64) ([]Report, error) {
	observations, err := s.provider.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	days := DailySummaries(observations)
	reports := make([]Report, 0, len(days))
	for _, day := range days {
		score := FishingScore(day)
		reports = append(reports, Report{
			Observation: day,
			Score:       score,
			Label:       ScoreLabel(score),
		})
	}
	return reports, nil
}

// Sun fetches sunrise/sunset and moon phase for a date.
func (s *Service) Sun(ctx context.Context, lat, lon float64, date time.Time) (SunData, error) {
	return s.sun.Sun(ctx, lat, lon, date)
}

// Tides returns the day's tide table for coastal coordinates.
func (s *Service) Tides(lat, lon float64, date string) ([]Tide, error) {
	return TidesFor(lat, lon, date)
}

// RefreshLocation fetches and scores current conditions for a saved location
// and stores the snapshot in the cache.
func (s *Service) RefreshLocation(ctx context.Context, locationID string, lat, lon float64) error {
	report, err := s.Current(ctx, lat, lon)
	if err != nil {
		return err
	}
	s.cache.Put(Snapshot{
		LocationID:  locationID,
		Observation: report.Observation,
		Score:       report.Score,
		Label:       report.Label,
		FetchedAt:   s.now(),
	})
	return nil
}

// CachedConditions returns the latest snapshot for a saved location.
func (s *Service) CachedConditions(locationID string) (Snapshot, error) {
	return s.cache.Get(locationID)
}
