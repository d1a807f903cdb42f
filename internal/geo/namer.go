package geo

import (
	"errors"
	"fmt"

	"github.com/kelvins/geocoder"
)

// ErrNotConfigured is returned when no geocoding API key was provided.
var ErrNotConfigured = errors.New("geocoder api key is not configured")

// ErrNoMatch is returned when reverse geocoding finds nothing usable.
var ErrNoMatch = errors.New("no address found for coordinates")

// Namer suggests display names for coordinates by reverse geocoding them.
// The feature is optional; without an API key every lookup fails with
// ErrNotConfigured.
type Namer struct {
	configured bool
}

// NewNamer sets the geocoder API key and returns a Namer.
func NewNamer(apiKey string) *Namer {
	if apiKey != "" {
		geocoder.ApiKey = apiKey
	}
	return &Namer{configured: apiKey != ""}
}

// Configured reports whether reverse geocoding is available.
func (n *Namer) Configured() bool {
	return n.configured
}

// SuggestName reverse-geocodes the coordinates into a short display name,
// preferring "City, State" when both are known.
func (n *Namer) SuggestName(lat, lon float64) (string, error) {
	if !n.configured {
		return "", ErrNotConfigured
	}

	addresses, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		return "", err
	}
	if len(addresses) == 0 {
		return "", ErrNoMatch
	}

	addr := addresses[0]
	if addr.City != "" && addr.State != "" {
		return fmt.Sprintf("%s, %s", addr.City, addr.State), nil
	}
	if addr.City != "" {
		return addr.City, nil
	}
	return addr.FormatAddress(), nil
}
