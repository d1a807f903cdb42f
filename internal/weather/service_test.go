package weather

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeProvider struct {
	current  Observation
	forecast []Observation
	err      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Current(ctx context.Context, lat, lon float64) (Observation, error) {
	if f.err != nil {
		return Observation{}, f.err
	}
	return f.current, nil
}

func (f *fakeProvider) Forecast(ctx context.Context, lat, lon float64) ([]Observation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.forecast, nil
}

func TestCurrentScoresObservation(t *testing.T) {
	provider := &fakeProvider{current: Observation{WindSpeed: 5, Precipitation: 1}}
	svc := NewService(provider, nil, NewSnapshotCache(0))

	report, err := svc.Current(context.Background(), 47.6, -122.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Score != 80 || report.Label != "Excellent" {
		t.Fatalf("report = %d/%q, want 80/Excellent", report.Score, report.Label)
	}
}

func TestCurrentPropagatesProviderError(t *testing.T) {
	wantErr := errors.New("upstream down")
	svc := NewService(&fakeProvider{err: wantErr}, nil, NewSnapshotCache(0))

	if _, err := svc.Current(context.Background(), 0, 0); !errors.Is(err, wantErr) {
		t.Fatalf("expected provider error to propagate, got %v", err)
	}
}

func TestRefreshLocationFillsCache(t *testing.T) {
	cache := NewSnapshotCache(0)
	provider := &fakeProvider{current: Observation{WindSpeed: 12}}
	svc := NewService(provider, nil, cache)

	if _, err := svc.CachedConditions("loc-1"); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot before refresh, got %v", err)
	}

	if err := svc.RefreshLocation(context.Background(), "loc-1", 47.6, -122.3); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	snap, err := svc.CachedConditions("loc-1")
	if err != nil {
		t.Fatalf("expected cached snapshot, got %v", err)
	}
	if snap.Score != 65 || snap.Label != "Good" || snap.LocationID != "loc-1" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestSnapshotCacheExpiry(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	cache.Put(Snapshot{
		LocationID: "stale",
		FetchedAt:  time.Now().Add(-2 * time.Minute),
	})
	if _, err := cache.Get("stale"); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected aged-out snapshot to be invisible, got %v", err)
	}

	cache.Put(Snapshot{LocationID: "fresh", FetchedAt: time.Now()})
	if _, err := cache.Get("fresh"); err != nil {
		t.Fatalf("expected fresh snapshot, got %v", err)
	}
}

func TestDailyForecastScoresEachDay(t *testing.T) {
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	provider := &fakeProvider{forecast: []Observation{
		{Date: day.Add(6 * time.Hour), WindSpeed: 4},
		{Date: day.Add(12 * time.Hour), WindSpeed: 6},
		{Date: day.AddDate(0, 0, 1), WindSpeed: 30},
	}}
	svc := NewService(provider, nil, NewSnapshotCache(0))

	reports, err := svc.DailyForecast(context.Background(), 47.6, -122.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 daily reports, got %d", len(reports))
	}
	if reports[0].Score != 75 { // avg wind 5 -> calm bonus
		t.Fatalf("day 1 score = %d, want 75", reports[0].Score)
	}
	if reports[1].Score != 50 { // wind 30 -> strong-wind penalty
		t.Fatalf("day 2 score = %d, want 50", reports[1].Score)
	}
}
