package weather

import (
	"sort"
	"time"
)

// DailySummaries buckets 3-hourly forecast observations by calendar day (UTC)
// and collapses each day into a single observation. Numeric fields are
// averaged; the conditions text and icon are picked by majority, first seen
// winning a tie. Results are ordered by date ascending.
func DailySummaries(observations []Observation) []Observation {
	if len(observations) == 0 {
		return nil
	}

	type bucket struct {
		day time.Time

		sumTemp     float64
		sumWind     float64
		sumPressure float64
		sumHumidity float64
		sumPrecip   float64
		count       int

		conditionCounts map[string]int
		conditionOrder  []string
		icons           map[string]string
		windDirections  map[string]int
	}

	buckets := make(map[string]*bucket)
	var keys []string

	for _, obs := range observations {
		ts := obs.Date.UTC()
		key := ts.Format("2006-01-02")

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				day:             time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
				conditionCounts: make(map[string]int),
				icons:           make(map[string]string),
				windDirections:  make(map[string]int),
			}
			buckets[key] = b
			keys = append(keys, key)
		}

		b.sumTemp += obs.Temperature
		b.sumWind += obs.WindSpeed
		b.sumPressure += obs.Pressure
		b.sumHumidity += obs.Humidity
		b.sumPrecip += obs.Precipitation
		b.count++

		if _, seen := b.conditionCounts[obs.Conditions]; !seen {
			b.conditionOrder = append(b.conditionOrder, obs.Conditions)
		}
		b.conditionCounts[obs.Conditions]++
		b.icons[obs.Conditions] = obs.Icon
		b.windDirections[obs.WindDirection]++
	}

	sort.Strings(keys)

	out := make([]Observation, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		n := float64(b.count)

		bestCond := ""
		bestCount := 0
		for _, cond := range b.conditionOrder {
			if b.conditionCounts[cond] > bestCount {
				bestCount = b.conditionCounts[cond]
				bestCond = cond
			}
		}

		bestDir := ""
		bestDirCount := 0
		for dir, count := range b.windDirections {
			if count > bestDirCount {
				bestDirCount = count
				bestDir = dir
			}
		}

		out = append(out, Observation{
			Date:          b.day,
			Temperature:   b.sumTemp / n,
			WindSpeed:     b.sumWind / n,
			WindDirection: bestDir,
			Pressure:      b.sumPressure / n,
			Humidity:      b.sumHumidity / n,
			Precipitation: b.sumPrecip / n,
			Conditions:    bestCond,
			Icon:          b.icons[bestCond],
		})
	}
	return out
}
