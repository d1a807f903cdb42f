package trips

import (
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mullinsd/fishing-companion/internal/storage"
)

// Collection keys in the persistence capability.
const (
	tripsKey     = "trips"
	locationsKey = "locations"
)

// Service owns the trips and locations collections.
//
// Persistence failures never escape: reads degrade to an empty collection and
// writes are dropped with a log line, so callers always get a best-effort
// value instead of an error.
type Service struct {
	store storage.Store
	now   func() time.Time
}

// NewService creates a Service backed by the given store.
func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) loadTrips() []Trip {
	var trips []Trip
	if err := s.store.Load(tripsKey, &trips); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("trips: failed to load collection: %v", err)
		return nil
	}
	return trips
}

func (s *Service) saveTrips(trips []Trip) {
	if err := s.store.Save(tripsKey, trips); err != nil {
		log.Printf("trips: failed to save collection: %v", err)
	}
}

func (s *Service) loadLocations() []Location {
	var locs []Location
	if err := s.store.Load(locationsKey, &locs); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("trips: failed to load locations: %v", err)
		return nil
	}
	return locs
}

func (s *Service) saveLocations(locs []Location) {
	if err := s.store.Save(locationsKey, locs); err != nil {
		log.Printf("trips: failed to save locations: %v", err)
	}
}

// AllTrips returns every trip in insertion order.
func (s *Service) AllTrips() []Trip {
	return s.loadTrips()
}

// TripByID returns the trip with the given id, or ok=false if absent.
func (s *Service) TripByID(id string) (Trip, bool) {
	for _, t := range s.loadTrips() {
		if t.ID == id {
			return t, true
		}
	}
	return Trip{}, false
}

// UpcomingTrips returns trips dated today or later, sorted ascending by date.
// The comparison is date-only; time of day is ignored.
func (s *Service) UpcomingTrips() []Trip {
	today := truncateToDay(s.now())

	var upcoming []Trip
	for _, t := range s.loadTrips() {
		if !truncateToDay(t.Date).Before(today) {
			upcoming = append(upcoming, t)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	return upcoming
}

// TripInput holds the caller-supplied fields of a new trip.
type TripInput struct {
	Name     string
	Date     time.Time
	Notes    string
	Location *Location
}

// AddTrip creates a trip with a fresh id and the default checklist, appends it
// to the collection and returns it.
func (s *Service) AddTrip(in TripInput) Trip {
	checklist := make([]TripItem, 0, len(defaultChecklist))
	for _, name := range defaultChecklist {
		checklist = append(checklist, TripItem{
			ID:   uuid.NewString(),
			Name: name,
		})
	}

	trip := Trip{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Location:  in.Location,
		Date:      in.Date,
		Notes:     in.Notes,
		Checklist: checklist,
	}

	s.saveTrips(append(s.loadTrips(), trip))
	return trip
}

// UpdateTrip replaces the stored trip with the same id. Unknown ids are a no-op.
func (s *Service) UpdateTrip(trip Trip) {
	all := s.loadTrips()
	for i := range all {
		if all[i].ID == trip.ID {
			all[i] = trip
			s.saveTrips(all)
			return
		}
	}
}

// DeleteTrip removes the trip with the given id along with its checklist.
func (s *Service) DeleteTrip(id string) {
	all := s.loadTrips()
	kept := all[:0]
	for _, t := range all {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.saveTrips(kept)
}

// AllLocations returns every saved location in insertion order.
func (s *Service) AllLocations() []Location {
	return s.loadLocations()
}

// LocationByID returns the location with the given id, or ok=false if absent.
func (s *Service) LocationByID(id string) (Location, bool) {
	for _, l := range s.loadLocations() {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// LocationInput holds the caller-supplied fields of a new location.
type LocationInput struct {
	Name      string
	Latitude  float64
	Longitude float64
	Notes     string
}

// AddLocation creates a location with a fresh id and returns it.
func (s *Service) AddLocation(in LocationInput) Location {
	loc := Location{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Notes:     in.Notes,
	}
	s.saveLocations(append(s.loadLocations(), loc))
	return loc
}

// UpdateLocation replaces the stored location with the same id. Unknown ids
// are a no-op.
func (s *Service) UpdateLocation(loc Location) {
	all := s.loadLocations()
	for i := range all {
		if all[i].ID == loc.ID {
			all[i] = loc
			s.saveLocations(all)
			return
		}
	}
}

// DeleteLocation removes the location and nulls the embedded location of every
// trip that references it by id. The cascade is mandatory: no trip may keep an
// orphan pointer.
func (s *Service) DeleteLocation(id string) {
	all := s.loadLocations()
	kept := all[:0]
	for _, l := range all {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.saveLocations(kept)

	tripsChanged := false
	allTrips := s.loadTrips()
	for i := range allTrips {
		if allTrips[i].Location != nil && allTrips[i].Location.ID == id {
			allTrips[i].Location = nil
			tripsChanged = true
		}
	}
	if tripsChanged {
		s.saveTrips(allTrips)
	}
}

// AddChecklistItem appends an unchecked item to the trip's checklist and
// returns it, or ok=false when the trip does not exist.
func (s *Service) AddChecklistItem(tripID, name string) (TripItem, bool) {
	all := s.loadTrips()
	for i := range all {
		if all[i].ID != tripID {
			continue
		}
		item := TripItem{
			ID:   uuid.NewString(),
			Name: name,
		}
		all[i].Checklist = append(all[i].Checklist, item)
		s.saveTrips(all)
		return item, true
	}
	return TripItem{}, false
}

// RemoveChecklistItem deletes the item from the trip's checklist. Unknown trip
// or item ids are a no-op.
func (s *Service) RemoveChecklistItem(tripID, itemID string) {
	all := s.loadTrips()
	for i := range all {
		if all[i].ID != tripID {
			continue
		}
		kept := all[i].Checklist[:0]
		for _, item := range all[i].Checklist {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		all[i].Checklist = kept
		s.saveTrips(all)
		return
	}
}

// ToggleChecklistItem flips the checked flag of the item and returns the new
// state, or ok=false when the trip or item does not exist.
func (s *Service) ToggleChecklistItem(tripID, itemID string) (bool, bool) {
	all := s.loadTrips()
	for i := range all {
		if all[i].ID != tripID {
			continue
		}
		for j := range all[i].Checklist {
			if all[i].Checklist[j].ID == itemID {
				all[i].Checklist[j].Checked = !all[i].Checklist[j].Checked
				s.saveTrips(all)
				return all[i].Checklist[j].Checked, true
			}
		}
		return false, false
	}
	return false, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
