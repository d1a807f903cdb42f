package gear

import "time"

// Category classifies a gear item.
type Category string

const (
	CategoryRod       Category = "rod"
	CategoryReel      Category = "reel"
	CategoryLine      Category = "line"
	CategoryLure      Category = "lure"
	CategoryHook      Category = "hook"
	CategoryBait      Category = "bait"
	CategoryTackle    Category = "tackle"
	CategoryAccessory Category = "accessory"
)

// ValidCategory reports whether c is one of the fixed gear categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryRod, CategoryReel, CategoryLine, CategoryLure,
		CategoryHook, CategoryBait, CategoryTackle, CategoryAccessory:
		return true
	}
	return false
}

// Item is a single piece of gear in the inventory. Maintenance due-status is
// derived from LastMaintenance and MaintenanceInterval, never stored.
type Item struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Category        Category          `json:"category"`
	Brand           string            `json:"brand,omitempty"`
	Model           string            `json:"model,omitempty"`
	Specs           map[string]string `json:"specs,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	LastMaintenance *time.Time        `json:"lastMaintenance,omitempty"`

	// MaintenanceInterval is in days; zero means no schedule.
	MaintenanceInterval int `json:"maintenanceInterval,omitempty"`

	Quantity int `json:"quantity"`
}

// Set is a named bundle of gear item ids that go out together.
type Set struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Items       []string `json:"items"`
}
