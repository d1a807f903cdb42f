package weather

import (
	"errors"
	"testing"
)

func TestTidesForCoastalLocation(t *testing.T) {
	// Seattle-ish longitude sits in the Pacific band.
	tides, err := TidesFor(47.6, -122.3, "2026-07-04")
	if err != nil {
		t.Fatalf("expected tide data for coastal longitude, got %v", err)
	}
	if len(tides) != 4 {
		t.Fatalf("expected 4 tide events, got %d", len(tides))
	}

	highs, lows := 0, 0
	for _, tide := range tides {
		if tide.Date != "2026-07-04" {
			t.Fatalf("tide date not echoed back: %q", tide.Date)
		}
		switch tide.Type {
		case TideHigh:
			highs++
		case TideLow:
			lows++
		default:
			t.Fatalf("unexpected tide type %q", tide.Type)
		}
	}
	if highs != 2 || lows != 2 {
		t.Fatalf("expected 2 highs and 2 lows, got %d/%d", highs, lows)
	}
}

func TestTidesForAtlanticBand(t *testing.T) {
	if _, err := TidesFor(40.7, -74.0, "2026-07-04"); err != nil {
		t.Fatalf("expected tide data for Atlantic-band longitude, got %v", err)
	}
}

func TestTidesForInlandLocation(t *testing.T) {
	_, err := TidesFor(44.98, -93.27, "2026-07-04") // Minneapolis
	if !errors.Is(err, ErrNoTideData) {
		t.Fatalf("expected ErrNoTideData inland, got %v", err)
	}
}
