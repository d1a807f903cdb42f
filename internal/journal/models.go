package journal

import "time"

// CatchEntry is one logged catch. Species and LocationName are free text, not
// foreign keys; they join against the species and location collections only by
// display string.
type CatchEntry struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	LocationName string    `json:"locationName"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Species      string    `json:"species"`
	Length       *float64  `json:"length,omitempty"`
	Weight       *float64  `json:"weight,omitempty"`
	Technique    string    `json:"technique"`
	Bait         string    `json:"bait,omitempty"`
	Weather      string    `json:"weather,omitempty"`
	WaterState   string    `json:"waterConditions,omitempty"`
	Notes        string    `json:"notes"`
}

// Filter narrows the journal. Text criteria match case-insensitive substrings;
// date bounds are inclusive; omitted criteria impose no constraint; all
// provided criteria must hold.
type Filter struct {
	Species   string
	Location  string
	Technique string
	StartDate *time.Time
	EndDate   *time.Time
}

// Stats is the aggregate view of the journal. BiggestCatch is nil when no
// entry has a recorded weight.
type Stats struct {
	TotalCatches int         `json:"totalCatches"`
	SpeciesCount int         `json:"speciesCount"`
	Locations    int         `json:"locations"`
	BiggestCatch *CatchEntry `json:"biggestCatch"`
}
