package models

import "time"

// Product is a catalog entry. Category is free text, not a controlled
// enum, and price is an opaque string shown to the buyer verbatim.
// Products are created and deleted by operators; there is no in-place
// edit path.
type Product struct {
	ID          int64
	Category    string
	Name        string
	Features    string
	Price       string
	Description string
	CreatedAt   time.Time
}
