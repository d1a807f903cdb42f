package species

// FishSpecies is reference data about one catchable species. The collection is
// seeded with sample data on first use and is otherwise mostly read-only.
type FishSpecies struct {
	ID             string   `json:"id"`
	CommonName     string   `json:"commonName"`
	ScientificName string   `json:"scientificName"`
	Description    string   `json:"description"`
	Habitat        string   `json:"habitat"`
	Seasonality    []string `json:"seasonality"`
	Techniques     []string `json:"techniques"`
	ImageURL       string   `json:"imageUrl,omitempty"`
}

// seedSpecies is the starter database written when the collection is empty.
var seedSpecies = []FishSpecies{
	{
		ID:             "1",
		CommonName:     "Largemouth Bass",
		ScientificName: "Micropterus salmoides",
		Description:    "The largemouth bass is an olive-green to greenish-gray fish, marked by a series of dark, sometimes black, blotches forming a jagged horizontal stripe along each flank.",
		Habitat:        "Freshwater lakes, rivers, and ponds with vegetation and structure.",
		Seasonality:    []string{"Spring", "Summer", "Fall"},
		Techniques:     []string{"Plastic worms", "Topwater lures", "Crankbaits", "Spinnerbaits"},
		ImageURL:       "/images/largemouth-bass.jpg",
	},
	{
		ID:             "2",
		CommonName:     "Rainbow Trout",
		ScientificName: "Oncorhynchus mykiss",
		Description:    "Rainbow trout are distinguished by a pink stripe along their sides, white underbelly, and small black spots on their back and fins.",
		Habitat:        "Cold, clear streams, rivers, and lakes.",
		Seasonality:    []string{"Spring", "Fall"},
		Techniques:     []string{"Fly fishing", "Spinners", "Bait fishing with worms or powerbait"},
		ImageURL:       "/images/rainbow-trout.jpg",
	},
	{
		ID:             "3",
		CommonName:     "Walleye",
		ScientificName: "Sander vitreus",
		Description:    "Walleyes are primarily olive and golden in color with a white belly. The dorsal side of a walleye is olive, grading into a golden hue on the flanks.",
		Habitat:        "Large, turbid lakes and rivers.",
		Seasonality:    []string{"Spring", "Fall", "Winter"},
		Techniques:     []string{"Jig and minnow", "Trolling with crankbaits", "Bottom bouncers with crawler harnesses"},
		ImageURL:       "/images/walleye.jpg",
	},
	{
		ID:             "4",
		CommonName:     "Northern Pike",
		ScientificName: "Esox lucius",
		Description:    "The northern pike is a species of carnivorous fish. They have elongated bodies with a duckbill-like snout and sharp teeth.",
		Habitat:        "Vegetated lakes and slow rivers.",
		Seasonality:    []string{"Spring", "Fall", "Winter"},
		Techniques:     []string{"Spinners", "Spoons", "Large jerkbaits", "Dead baits in winter"},
		ImageURL:       "/images/northern-pike.jpg",
	},
	{
		ID:             "5",
		CommonName:     "Bluegill",
		ScientificName: "Lepomis macrochirus",
		Description:    "The bluegill is a small freshwater fish with a distinctive bright blue edge on its gill plate and an overall olive-green to brown color.",
		Habitat:        "Ponds, lakes, and slow-moving streams with vegetation.",
		Seasonality:    []string{"Spring", "Summer"},
		Techniques:     []string{"Small jigs", "Worms", "Crickets", "Small flies"},
		ImageURL:       "/images/bluegill.jpg",
	},
}
