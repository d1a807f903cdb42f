package weather

import "time"

// Observation is a point-in-time weather reading, normalized to the units the
// UI displays: temperature in °F, wind in mph, pressure in hPa, precipitation
// in mm.
type Observation struct {
	Date          time.Time `json:"date"`
	Temperature   float64   `json:"temperature"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDirection string    `json:"windDirection"`
	Pressure      float64   `json:"pressure"`
	Humidity      float64   `json:"humidity"`
	Precipitation float64   `json:"precipitation"`
	Conditions    string    `json:"conditions"`
	Icon          string    `json:"icon"`
}

// Report pairs an observation with its fishing-conditions score.
type Report struct {
	Observation Observation `json:"observation"`
	Score       int         `json:"score"`
	Label       string      `json:"label"`
}

// SunData holds sunrise/sunset times (HH:MM:SS) and the moon phase for a date.
// MoonPhase runs 0 to 1, where 0 is a new moon and 0.5 is a full moon.
type SunData struct {
	Date      string  `json:"date"`
	Sunrise   string  `json:"sunrise"`
	Sunset    string  `json:"sunset"`
	MoonPhase float64 `json:"moonPhase"`
}

// TideType is either "high" or "low".
type TideType string

const (
	TideHigh TideType = "high"
	TideLow  TideType = "low"
)

// Tide is a single tide event on a given date.
type Tide struct {
	Date   string   `json:"date"`
	Time   string   `json:"time"`
	Height float64  `json:"height"`
	Type   TideType `json:"type"`
}
