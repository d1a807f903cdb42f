package trips

import "time"

// Location is a saved fishing spot, referenced by trips via its embedded copy.
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     string  `json:"notes"`
}

// TripItem is a single checklist entry. Items belong to exactly one trip and
// have no lifecycle of their own.
type TripItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// Trip is a planned outing. Location is nil when no saved spot is attached or
// after the referenced location has been deleted.
type Trip struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Location  *Location  `json:"location"`
	Date      time.Time  `json:"date"`
	Notes     string     `json:"notes"`
	Checklist []TripItem `json:"checklist"`
}

// defaultChecklist seeds every new trip. Items are independently addable,
// removable and toggleable afterwards.
var defaultChecklist = []string{
	"Fishing rod",
	"Fishing reel",
	"Tackle box",
	"Extra line",
	"Lures/bait",
	"Fishing net",
	"Pliers",
	"Fishing license",
	"Sunscreen",
	"Hat",
	"Polarized sunglasses",
	"Water/drinks",
	"Snacks/food",
	"First aid kit",
	"Camera/phone",
}
