package trips

import (
	"testing"
	"time"

	"github.com/mullinsd/fishing-companion/internal/storage"
	"github.com/mullinsd/fishing-companion/internal/storage/storagetest"
)

func newTestService() *Service {
	return NewService(storage.NewMemoryStore())
}

func TestAddTripSeedsDefaultChecklist(t *testing.T) {
	svc := newTestService()

	trip := svc.AddTrip(TripInput{Name: "Opening day", Date: time.Now()})
	if trip.ID == "" {
		t.Fatal("expected trip to be assigned an id")
	}
	if len(trip.Checklist) != len(defaultChecklist) {
		t.Fatalf("expected %d checklist items, got %d", len(defaultChecklist), len(trip.Checklist))
	}
	for _, item := range trip.Checklist {
		if item.ID == "" {
			t.Fatal("checklist item missing id")
		}
		if item.Checked {
			t.Fatalf("checklist item %q should start unchecked", item.Name)
		}
	}

	got, ok := svc.TripByID(trip.ID)
	if !ok {
		t.Fatal("trip not found after add")
	}
	if got.Name != "Opening day" || len(got.Checklist) != len(trip.Checklist) {
		t.Fatalf("round-tripped trip does not match: %+v", got)
	}
}

func TestTripByIDMissing(t *testing.T) {
	svc := newTestService()
	if _, ok := svc.TripByID("nope"); ok {
		t.Fatal("expected ok=false for unknown trip id")
	}
}

func TestUpcomingTrips(t *testing.T) {
	svc := newTestService()

	// Pin "now" so the test is stable across midnight.
	now := time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	yesterday := svc.AddTrip(TripInput{Name: "yesterday", Date: now.AddDate(0, 0, -1)})
	today := svc.AddTrip(TripInput{Name: "today", Date: now.Add(-13 * time.Hour)}) // earlier today
	tomorrow := svc.AddTrip(TripInput{Name: "tomorrow", Date: now.AddDate(0, 0, 1)})

	upcoming := svc.UpcomingTrips()
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming trips, got %d", len(upcoming))
	}
	if upcoming[0].ID != today.ID || upcoming[1].ID != tomorrow.ID {
		t.Fatalf("expected [today, tomorrow], got [%s, %s]", upcoming[0].Name, upcoming[1].Name)
	}
	for _, trip := range upcoming {
		if trip.ID == yesterday.ID {
			t.Fatal("yesterday's trip must not be upcoming")
		}
	}
}

func TestDeleteLocationNullsTripReferences(t *testing.T) {
	svc := newTestService()

	loc := svc.AddLocation(LocationInput{Name: "North Pier", Latitude: 47.6, Longitude: -122.3})
	other := svc.AddLocation(LocationInput{Name: "Mill Pond", Latitude: 45.1, Longitude: -93.2})

	t1 := svc.AddTrip(TripInput{Name: "a", Date: time.Now(), Location: &loc})
	t2 := svc.AddTrip(TripInput{Name: "b", Date: time.Now(), Location: &loc})
	t3 := svc.AddTrip(TripInput{Name: "c", Date: time.Now(), Location: &other})

	svc.DeleteLocation(loc.ID)

	if _, ok := svc.LocationByID(loc.ID); ok {
		t.Fatal("location still present after delete")
	}
	for _, id := range []string{t1.ID, t2.ID} {
		got, ok := svc.TripByID(id)
		if !ok {
			t.Fatalf("trip %s missing after location delete", id)
		}
		if got.Location != nil {
			t.Fatalf("trip %s still references deleted location", id)
		}
	}
	got, _ := svc.TripByID(t3.ID)
	if got.Location == nil || got.Location.ID != other.ID {
		t.Fatal("unrelated trip's location must be untouched")
	}
}

func TestChecklistMutation(t *testing.T) {
	svc := newTestService()
	trip := svc.AddTrip(TripInput{Name: "creek", Date: time.Now()})

	item, ok := svc.AddChecklistItem(trip.ID, "Waders")
	if !ok {
		t.Fatal("expected checklist add to succeed")
	}
	if item.Checked {
		t.Fatal("new checklist item should start unchecked")
	}

	checked, ok := svc.ToggleChecklistItem(trip.ID, item.ID)
	if !ok || !checked {
		t.Fatalf("expected toggle to return checked=true, got checked=%v ok=%v", checked, ok)
	}
	checked, ok = svc.ToggleChecklistItem(trip.ID, item.ID)
	if !ok || checked {
		t.Fatalf("expected second toggle to return checked=false, got checked=%v ok=%v", checked, ok)
	}

	svc.RemoveChecklistItem(trip.ID, item.ID)
	got, _ := svc.TripByID(trip.ID)
	for _, it := range got.Checklist {
		if it.ID == item.ID {
			t.Fatal("checklist item still present after remove")
		}
	}

	if _, ok := svc.ToggleChecklistItem(trip.ID, "missing"); ok {
		t.Fatal("toggling an unknown item must report ok=false")
	}
	if _, ok := svc.AddChecklistItem("missing", "x"); ok {
		t.Fatal("adding to an unknown trip must report ok=false")
	}
}

func TestDeleteTrip(t *testing.T) {
	svc := newTestService()
	trip := svc.AddTrip(TripInput{Name: "gone", Date: time.Now()})
	svc.DeleteTrip(trip.ID)
	if _, ok := svc.TripByID(trip.ID); ok {
		t.Fatal("trip still present after delete")
	}
}

func TestBrokenStoreIsMasked(t *testing.T) {
	svc := NewService(storagetest.FailingStore{})

	if got := svc.AllTrips(); len(got) != 0 {
		t.Fatalf("expected empty trips on broken store, got %d", len(got))
	}
	if got := svc.AllLocations(); len(got) != 0 {
		t.Fatalf("expected empty locations on broken store, got %d", len(got))
	}

	// Mutations go through without surfacing the failure.
	trip := svc.AddTrip(TripInput{Name: "dropped", Date: time.Now()})
	if trip.ID == "" || len(trip.Checklist) != len(defaultChecklist) {
		t.Fatalf("add must still return a fully-formed trip: %+v", trip)
	}
	svc.UpdateTrip(trip)
	svc.DeleteTrip(trip.ID)
	svc.DeleteLocation("any")

	if _, ok := svc.TripByID(trip.ID); ok {
		t.Fatal("dropped write must not be readable")
	}
}
