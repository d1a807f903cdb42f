package weather

import (
	"testing"
	"time"
)

func TestDailySummaries(t *testing.T) {
	day1 := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	observations := []Observation{
		{Date: day1.Add(6 * time.Hour), Temperature: 60, WindSpeed: 5, Conditions: "clear sky", Icon: "01d", WindDirection: "N"},
		{Date: day1.Add(12 * time.Hour), Temperature: 70, WindSpeed: 7, Conditions: "clear sky", Icon: "01d", WindDirection: "N"},
		{Date: day1.Add(18 * time.Hour), Temperature: 65, WindSpeed: 9, Conditions: "few clouds", Icon: "02d", WindDirection: "NW"},
		{Date: day2.Add(9 * time.Hour), Temperature: 55, WindSpeed: 15, Precipitation: 3, Conditions: "light rain", Icon: "10d", WindDirection: "S"},
	}

	days := DailySummaries(observations)
	if len(days) != 2 {
		t.Fatalf("expected 2 daily summaries, got %d", len(days))
	}

	first := days[0]
	if !first.Date.Equal(day1) {
		t.Fatalf("first summary date = %v, want %v", first.Date, day1)
	}
	if first.Temperature != 65 {
		t.Fatalf("first summary temperature = %v, want 65", first.Temperature)
	}
	if first.WindSpeed != 7 {
		t.Fatalf("first summary wind = %v, want 7", first.WindSpeed)
	}
	if first.Conditions != "clear sky" || first.Icon != "01d" {
		t.Fatalf("majority condition not picked: %q / %q", first.Conditions, first.Icon)
	}
	if first.WindDirection != "N" {
		t.Fatalf("majority wind direction not picked: %q", first.WindDirection)
	}

	second := days[1]
	if !second.Date.Equal(day2) || second.Conditions != "light rain" || second.Precipitation != 3 {
		t.Fatalf("second summary wrong: %+v", second)
	}
}

func TestDailySummariesEmpty(t *testing.T) {
	if got := DailySummaries(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestDailySummariesTieFirstSeenWins(t *testing.T) {
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	observations := []Observation{
		{Date: day.Add(6 * time.Hour), Conditions: "overcast", Icon: "04d"},
		{Date: day.Add(9 * time.Hour), Conditions: "mist", Icon: "50d"},
	}
	days := DailySummaries(observations)
	if len(days) != 1 || days[0].Conditions != "overcast" {
		t.Fatalf("tie should go to the first condition seen, got %+v", days)
	}
}
