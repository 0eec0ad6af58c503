package product

import "github.com/shopspring/decimal"

// MusicStore returns the fixed catalog of The Music Store.
func MusicStore() *Catalog {
	return MustCatalog(
		Product{Name: "Drum brushes", Price: decimal.RequireFromString("12.99")},
		Product{Name: "Drumsticks", Price: decimal.RequireFromString("4.49")},
		Product{Name: "Electric guitar strings", Price: decimal.RequireFromString("5.49")},
		Product{Name: "Guitar tuner", Price: decimal.RequireFromString("9.99")},
		Product{Name: "Headphones", Price: decimal.RequireFromString("34.99")},
		Product{Name: "Manuscript paper", Price: decimal.RequireFromString("5.99")},
		Product{Name: "Metronome", Price: decimal.RequireFromString("21.99")},
		Product{Name: "Microphone", Price: decimal.RequireFromString("32.29")},
		Product{Name: "Music stand", Price: decimal.RequireFromString("21.99")},
		Product{Name: "Music stand light", Price: decimal.RequireFromString("30.99")},
		Product{Name: "Piano stool", Price: decimal.RequireFromString("17.99")},
		Product{Name: "Plectrums (x20)", Price: decimal.RequireFromString("3.99")},
		Product{Name: "Sheet music clips (x4)", Price: decimal.RequireFromString("5.19")},
	)
}
