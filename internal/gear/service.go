package gear

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mullinsd/fishing-companion/internal/storage"
)

// Collection keys in the persistence capability.
const (
	inventoryKey = "gear-inventory"
	setsKey      = "gear-sets"
)

// Service owns the gear inventory and gear set collections. Persistence
// failures are masked the same way as in the trips service.
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

func (s *Service) loadItems() []Item {
	var items []Item
	if err := s.store.Load(inventoryKey, &items); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("gear: failed to load inventory: %v", err)
		return nil
	}
	return items
}

func (s *Service) saveItems(items []Item) {
	if err := s.store.Save(inventoryKey, items); err != nil {
		log.Printf("gear: failed to save inventory: %v", err)
	}
}

func (s *Service) loadSets() []Set {
	var sets []Set
	if err := s.store.Load(setsKey, &sets); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("gear: failed to load sets: %v", err)
		return nil
	}
	return sets
}

func (s *Service) saveSets(sets []Set) {
	if err := s.store.Save(setsKey, sets); err != nil {
		log.Printf("gear: failed to save sets: %v", err)
	}
}

// AllItems returns the full inventory in insertion order.
func (s *Service) AllItems() []Item {
	return s.loadItems()
}

// ItemByID returns the item with the given id, or ok=false if absent.
func (s *Service) ItemByID(id string) (Item, bool) {
	for _, item := range s.loadItems() {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// ItemInput holds the caller-supplied fields of a new gear item.
type ItemInput struct {
	Name                string
	Category            Category
	Brand               string
	Model               string
	Specs               map[string]string
	Notes               string
	LastMaintenance     *time.Time
	MaintenanceInterval int
	Quantity            int
}

// AddItem creates an inventory item with a fresh id and returns it.
func (s *Service) AddItem(in ItemInput) Item {
	item := Item{
		ID:                  uuid.NewString(),
		Name:                in.Name,
		Category:            in.Category,
		Brand:               in.Brand,
		Model:               in.Model,
		Specs:               in.Specs,
		Notes:               in.Notes,
		LastMaintenance:     in.LastMaintenance,
		MaintenanceInterval: in.MaintenanceInterval,
		Quantity:            in.Quantity,
	}
	s.saveItems(append(s.loadItems(), item))
	return item
}

// UpdateItem replaces the stored item with the same id. Unknown ids are a no-op.
func (s *Service) UpdateItem(item Item) {
	all := s.loadItems()
	for i := range all {
		if all[i].ID == item.ID {
			all[i] = item
			s.saveItems(all)
			return
		}
	}
}

// DeleteItem removes the item and prunes its id from every set's membership
// list. The cascade is mandatory: a set may never reference a deleted item.
func (s *Service) DeleteItem(id string) {
	all := s.loadItems()
	kept := all[:0]
	for _, item := range all {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.saveItems(kept)

	sets := s.loadSets()
	changed := false
	for i := range sets {
		members := sets[i].Items[:0]
		for _, member := range sets[i].Items {
			if member != id {
				members = append(members, member)
			}
		}
		if len(members) != len(sets[i].Items) {
			changed = true
		}
		sets[i].Items = members
	}
	if changed {
		s.saveSets(sets)
	}
}

// ItemsByCategory returns the inventory items with the given category.
func (s *Service) ItemsByCategory(c Category) []Item {
	var out []Item
	for _, item := range s.loadItems() {
		if item.Category == c {
			out = append(out, item)
		}
	}
	return out
}

// NeedsMaintenance reports whether the item is due for maintenance: both
// LastMaintenance and MaintenanceInterval must be set, and at least
// MaintenanceInterval whole days must have elapsed since LastMaintenance.
func (s *Service) NeedsMaintenance(item Item) bool {
	if item.LastMaintenance == nil || item.MaintenanceInterval <= 0 {
		return false
	}
	days := int(s.now().Sub(*item.LastMaintenance).Hours() / 24)
	return days >= item.MaintenanceInterval
}

// ItemsNeedingMaintenance returns the inventory items currently due.
func (s *Service) ItemsNeedingMaintenance() []Item {
	var due []Item
	for _, item := range s.loadItems() {
		if s.NeedsMaintenance(item) {
			due = append(due, item)
		}
	}
	return due
}

// UpdateMaintenanceDate sets the item's last-maintenance date. Unknown ids
// are a no-op.
func (s *Service) UpdateMaintenanceDate(id string, date time.Time) {
	all := s.loadItems()
	for i := range all {
		if all[i].ID == id {
			all[i].LastMaintenance = &date
			s.saveItems(all)
			return
		}
	}
}

// UpdateQuantity sets the item's quantity. Negative targets are rejected
// silently; quantity never goes below zero.
func (s *Service) UpdateQuantity(id string, quantity int) {
	if quantity < 0 {
		return
	}
	all := s.loadItems()
	for i := range all {
		if all[i].ID == id {
			all[i].Quantity = quantity
			s.saveItems(all)
			return
		}
	}
}

// AllSets returns every gear set in insertion order.
func (s *Service) AllSets() []Set {
	return s.loadSets()
}

// SetByID returns the set with the given id, or ok=false if absent.
func (s *Service) SetByID(id string) (Set, bool) {
	for _, set := range s.loadSets() {
		if set.ID == id {
			return set, true
		}
	}
	return Set{}, false
}

// SetInput holds the caller-supplied fields of a new gear set.
type SetInput struct {
	Name        string
	Description string
	Items       []string
}

// AddSet creates a gear set with a fresh id and returns it.
func (s *Service) AddSet(in SetInput) Set {
	set := Set{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Items:       in.Items,
	}
	if set.Items == nil {
		set.Items = []string{}
	}
	s.saveSets(append(s.loadSets(), set))
	return set
}

// UpdateSet replaces the stored set with the same id. Unknown ids are a no-op.
func (s *Service) UpdateSet(set Set) {
	all := s.loadSets()
	for i := range all {
		if all[i].ID == set.ID {
			all[i] = set
			s.saveSets(all)
			return
		}
	}
}

// DeleteSet removes the set. Member items are untouched.
func (s *Service) DeleteSet(id string) {
	all := s.loadSets()
	kept := all[:0]
	for _, set := range all {
		if set.ID != id {
			kept = append(kept, set)
		}
	}
	s.saveSets(kept)
}

// SetItems resolves a set's member ids to inventory items. Unknown set ids
// yield an empty slice.
func (s *Service) SetItems(setID string) []Item {
	set, ok := s.SetByID(setID)
	if !ok {
		return nil
	}

	members := make(map[string]bool, len(set.Items))
	for _, id := range set.Items {
		members[id] = true
	}

	var out []Item
	for _, item := range s.loadItems() {
		if members[item.ID] {
			out = append(out, item)
		}
	}
	return out
}
