package weather

import (
	"context"
	"time"
)

// Provider abstracts the outbound weather data source.
type Provider interface {
	Name() string

	// Current returns the present conditions at the coordinates.
	Current(ctx context.Context, lat, lon float64) (Observation, error)

	// Forecast returns the provider's forward observations (3-hourly for
	// OpenWeather), ordered by time ascending.
	Forecast(ctx context.Context, lat, lon float64) ([]Observation, error)
}

// SunProvider abstracts the sunrise/sunset data source.
type SunProvider interface {
	Name() string
	Sun(ctx context.Context, lat, lon float64, date time.Time) (SunData, error)
}
