package models

import "time"

// Product represents a catalog product. Aliases are a client-side
// augmentation used by voice matching and are never sent upstream.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Barcode   string    `json:"barcode,omitempty"`
	Category  string    `json:"category,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Official  bool      `json:"official,omitempty"`
	Aliases   []string  `json:"aliases,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
