package journal

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/mullinsd/fishing-companion/internal/common"
	"github.com/mullinsd/fishing-companion/internal/storage"
)

// Collection key in the persistence capability.
const journalKey = "catch-journal"

// Service owns the catch journal collection. Persistence failures are masked
// as an empty journal on read and a dropped write.
type Service struct {
	store storage.Store
}

// NewService creates a Service backed by the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) load() []CatchEntry {
	var entries []CatchEntry
	if err := s.store.Load(journalKey, &entries); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("journal: failed to load collection: %v", err)
		return nil
	}
	return entries
}

func (s *Service) save(entries []CatchEntry) {
	if err := s.store.Save(journalKey, entries); err != nil {
		log.Printf("journal: failed to save collection: %v", err)
	}
}

// AllEntries returns every catch in insertion order.
func (s *Service) AllEntries() []CatchEntry {
	return s.load()
}

// EntryByID returns the catch with the given id, or ok=false if absent.
func (s *Service) EntryByID(id string) (CatchEntry, bool) {
	for _, e := range s.load() {
		if e.ID == id {
			return e, true
		}
	}
	return CatchEntry{}, false
}

// AddEntry assigns a fresh id to the entry, appends it and returns it.
func (s *Service) AddEntry(entry CatchEntry) CatchEntry {
	entry.ID = uuid.NewString()
	s.save(append(s.load(), entry))
	return entry
}

// UpdateEntry replaces the stored entry with the same id. Unknown ids are a
// no-op.
func (s *Service) UpdateEntry(entry CatchEntry) {
	all := s.load()
	for i := range all {
		if all[i].ID == entry.ID {
			all[i] = entry
			s.save(all)
			return
		}
	}
}

// DeleteEntry removes the entry with the given id.
func (s *Service) DeleteEntry(id string) {
	all := s.load()
	kept := all[:0]
	for _, e := range all {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.save(kept)
}

// ClearAll removes every catch from the journal. Removal failures are logged
// and masked like any other persistence failure.
func (s *Service) ClearAll() {
	if err := s.store.Remove(journalKey); err != nil {
		log.Printf("journal: failed to clear collection: %v", err)
	}
}

// FilterEntries returns the entries matching every provided criterion.
func (s *Service) FilterEntries(f Filter) []CatchEntry {
	var out []CatchEntry
	for _, e := range s.load() {
		if f.Species != "" && !common.ContainsFold(e.Species, f.Species) {
			continue
		}
		if f.Location != "" && !common.ContainsFold(e.LocationName, f.Location) {
			continue
		}
		if f.Technique != "" && !common.ContainsFold(e.Technique, f.Technique) {
			continue
		}
		if f.StartDate != nil && e.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && e.Date.After(*f.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// JournalStats aggregates the journal. Species and locations are counted by
// exact string equality; the biggest catch is the entry with the greatest
// weight, and entries without a weight never win.
func (s *Service) JournalStats() Stats {
	entries := s.load()

	stats := Stats{TotalCatches: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	species := make(map[string]bool)
	locations := make(map[string]bool)

	var biggest *CatchEntry
	for i := range entries {
		species[entries[i].Species] = true
		locations[entries[i].LocationName] = true

		if entries[i].Weight == nil {
			continue
		}
		if biggest == nil || *entries[i].Weight > *biggest.Weight {
			biggest = &entries[i]
		}
	}

	stats.SpeciesCount = len(species)
	stats.Locations = len(locations)
	stats.BiggestCatch = biggest
	return stats
}
