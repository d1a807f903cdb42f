package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mullinsd/fishing-companion/internal/gear"
	"github.com/mullinsd/fishing-companion/internal/geo"
	"github.com/mullinsd/fishing-companion/internal/journal"
	"github.com/mullinsd/fishing-companion/internal/species"
	"github.com/mullinsd/fishing-companion/internal/storage"
	"github.com/mullinsd/fishing-companion/internal/trips"
	"github.com/mullinsd/fishing-companion/internal/weather"
)

func newTestApp() (*fiber.App, Services) {
	store := storage.NewMemoryStore()
	services := Services{
		Trips:   trips.NewService(store),
		Gear:    gear.NewService(store),
		Journal: journal.NewService(store),
		Species: species.NewService(store),
		Weather: weather.NewService(nil, nil, weather.NewSnapshotCache(0)),
		Namer:   geo.NewNamer(""),
	}

	app := fiber.New()
	RegisterRoutes(app, services)
	return app, services
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestTripCreateAndFetch(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", jsonBody(t, fiber.Map{
		"name": "Dawn patrol",
		"date": "2026-09-12T06:00:00Z",
	}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	created := decode[trips.Trip](t, resp)
	if created.ID == "" || len(created.Checklist) == 0 {
		t.Fatalf("created trip missing id or checklist: %+v", created)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/trips/"+created.ID, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	fetched := decode[trips.Trip](t, resp)
	if fetched.Name != "Dawn patrol" {
		t.Fatalf("fetched trip does not match: %+v", fetched)
	}
}

func TestTripValidation(t *testing.T) {
	app, _ := newTestApp()

	// Missing required name should be rejected.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips", jsonBody(t, fiber.Map{
		"date": "2026-09-12T06:00:00Z",
	}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestTripNotFound(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/trips/nope", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestGearQuantityPatchIgnoresNegative(t *testing.T) {
	app, services := newTestApp()
	item := services.Gear.AddItem(gear.ItemInput{Name: "Jig heads", Category: gear.CategoryTackle, Quantity: 5})

	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/v1/gear/%s/quantity", item.ID),
		jsonBody(t, fiber.Map{"quantity": -3}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	got := decode[gear.Item](t, resp)
	if got.Quantity != 5 {
		t.Fatalf("negative quantity must be ignored; got %d", got.Quantity)
	}
}

func TestGearCategoryFilterRejectsUnknown(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/gear?category=kayak", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCatchStatsEmpty(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/catches/stats", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats := decode[journal.Stats](t, resp)
	if stats.TotalCatches != 0 || stats.BiggestCatch != nil {
		t.Fatalf("empty journal stats wrong: %+v", stats)
	}
}

func TestSpeciesSeededAndSearchable(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/species", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all := decode[[]species.FishSpecies](t, resp)
	if len(all) != 5 {
		t.Fatalf("expected 5 seeded species, got %d", len(all))
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/species?q=walleye", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := decode[[]species.FishSpecies](t, resp)
	if len(found) != 1 || found[0].CommonName != "Walleye" {
		t.Fatalf("species search failed: %+v", found)
	}
}

func TestTidesEndpoint(t *testing.T) {
	app, _ := newTestApp()

	// Inland longitude has no tide data.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tides/44.98/-93.27/2026-07-04", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d for inland tides, got %d", http.StatusNotFound, resp.StatusCode)
	}

	// Coastal longitude returns the fixed table.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tides/47.6/-122.3/2026-07-04", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d for coastal tides, got %d", http.StatusOK, resp.StatusCode)
	}
	tides := decode[[]weather.Tide](t, resp)
	if len(tides) != 4 {
		t.Fatalf("expected 4 tide events, got %d", len(tides))
	}

	// Malformed date is rejected before any tide lookup.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tides/47.6/-122.3/july-4th", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d for bad date, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestSuggestNameUnconfigured(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/locations/suggest-name?lat=47.6&lon=-122.3", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d without geocoder key, got %d", http.StatusServiceUnavailable, resp.StatusCode)
	}
}

func TestLocationDeleteCascadesOverHTTP(t *testing.T) {
	app, services := newTestApp()

	loc := services.Trips.AddLocation(trips.LocationInput{Name: "North Pier", Latitude: 47.6, Longitude: -122.3})
	trip := services.Trips.AddTrip(trips.TripInput{Name: "pier day", Location: &loc})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/locations/"+loc.ID, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}

	got, _ := services.Trips.TripByID(trip.ID)
	if got.Location != nil {
		t.Fatal("trip still references deleted location")
	}
}

func TestTripUpdateValidatesAndKeepsChecklist(t *testing.T) {
	app, services := newTestApp()
	trip := services.Trips.AddTrip(trips.TripInput{Name: "before", Date: time.Date(2026, time.September, 12, 6, 0, 0, 0, time.UTC)})

	// Missing required name is rejected.
	req := httptest.NewRequest(http.MethodPut, "/api/v1/trips/"+trip.ID, jsonBody(t, fiber.Map{
		"date": "2026-09-13T06:00:00Z",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// A valid update replaces the fields but keeps the existing checklist.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/trips/"+trip.ID, jsonBody(t, fiber.Map{
		"name": "after",
		"date": "2026-09-13T06:00:00Z",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	updated := decode[trips.Trip](t, resp)
	if updated.Name != "after" {
		t.Fatalf("name not updated: %+v", updated)
	}
	if len(updated.Checklist) != len(trip.Checklist) {
		t.Fatalf("checklist must survive an update: had %d items, got %d", len(trip.Checklist), len(updated.Checklist))
	}
}

func TestClearJournal(t *testing.T) {
	app, services := newTestApp()
	services.Journal.AddEntry(journal.CatchEntry{Species: "Bass", LocationName: "Mill Pond"})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/catches", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}
	if got := services.Journal.AllEntries(); len(got) != 0 {
		t.Fatalf("journal not cleared, %d entries remain", len(got))
	}
}
