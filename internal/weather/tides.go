package weather

import (
	"errors"
	"math"
)

// ErrNoTideData is returned for inland locations.
var ErrNoTideData = errors.New("no tide data available for inland locations")

// fixedTides is the canned tide table served for every coastal location.
// There is no real tide model behind this; the entries are representative
// samples for a typical semidiurnal day.
var fixedTides = []Tide{
	{Time: "03:42:00", Height: 1.2, Type: TideLow},
	{Time: "09:56:00", Height: 4.5, Type: TideHigh},
	{Time: "16:12:00", Height: 0.8, Type: TideLow},
	{Time: "22:24:00", Height: 3.9, Type: TideHigh},
}

// isCoastal is a crude longitude-band heuristic covering the US Pacific
// (~123°) and Atlantic (~74°) coasts.
func isCoastal(lon float64) bool {
	return math.Abs(math.Abs(lon)-123) < 3 || math.Abs(math.Abs(lon)-74) < 3
}

// TidesFor returns the day's tide events for a coastal location, or
// ErrNoTideData inland. The date is echoed back on each event.
func TidesFor(lat, lon float64, date string) ([]Tide, error) {
	_ = lat // the heuristic only looks at longitude

	if !isCoastal(lon) {
		return nil, ErrNoTideData
	}

	tides := make([]Tide, len(fixedTides))
	copy(tides, fixedTides)
	for i := range tides {
		tides[i].Date = date
	}
	return tides, nil
}
