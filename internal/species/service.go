package species

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/mullinsd/fishing-companion/internal/common"
	"github.com/mullinsd/fishing-companion/internal/storage"
)

// Collection key in the persistence capability.
const speciesKey = "fish-species"

// Service owns the fish species collection.
type Service struct {
	store storage.Store
}

// NewService creates a Service backed by the given store and seeds the
// collection with sample species if it is empty.
func NewService(store storage.Store) *Service {
	s := &Service{store: store}
	s.initSeed()
	return s
}

func (s *Service) initSeed() {
	if existing := s.load(); len(existing) > 0 {
		return
	}
	s.save(seedSpecies)
}

func (s *Service) load() []FishSpecies {
	var all []FishSpecies
	if err := s.store.Load(speciesKey, &all); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("species: failed to load collection: %v", err)
		return nil
	}
	return all
}

func (s *Service) save(all []FishSpecies) {
	if err := s.store.Save(speciesKey, all); err != nil {
		log.Printf("species: failed to save collection: %v", err)
	}
}

// AllSpecies returns every species in insertion order.
func (s *Service) AllSpecies() []FishSpecies {
	return s.load()
}

// SpeciesByID returns the species with the given id, or ok=false if absent.
func (s *Service) SpeciesByID(id string) (FishSpecies, bool) {
	for _, sp := range s.load() {
		if sp.ID == id {
			return sp, true
		}
	}
	return FishSpecies{}, false
}

// Search matches the query against common and scientific names,
// case-insensitively.
func (s *Service) Search(query string) []FishSpecies {
	var out []FishSpecies
	for _, sp := range s.load() {
		if common.ContainsFold(sp.CommonName, query) || common.ContainsFold(sp.ScientificName, query) {
			out = append(out, sp)
		}
	}
	return out
}

// FilterCriteria narrows species by habitat and/or technique substring.
type FilterCriteria struct {
	Habitat   string
	Technique string
}

// FilterSpecies returns the species matching every provided criterion.
func (s *Service) FilterSpecies(c FilterCriteria) []FishSpecies {
	var out []FishSpecies
	for _, sp := range s.load() {
		if c.Habitat != "" && !common.ContainsFold(sp.Habitat, c.Habitat) {
			continue
		}
		if c.Technique != "" && !common.AnyContainsFold(sp.Techniques, c.Technique) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// AddSpecies creates a custom species with a fresh id and returns it.
func (s *Service) AddSpecies(sp FishSpecies) FishSpecies {
	sp.ID = uuid.NewString()
	s.save(append(s.load(), sp))
	return sp
}

// UpdateSpecies replaces the stored species with the same id. Unknown ids are
// a no-op.
func (s *Service) UpdateSpecies(sp FishSpecies) {
	all := s.load()
	for i := range all {
		if all[i].ID == sp.ID {
			all[i] = sp
			s.save(all)
			return
		}
	}
}

// DeleteSpecies removes the species with the given id.
func (s *Service) DeleteSpecies(id string) {
	all := s.load()
	kept := all[:0]
	for _, sp := range all {
		if sp.ID != id {
			kept = append(kept, sp)
		}
	}
	s.save(kept)
}
