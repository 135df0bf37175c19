package models

import "time"

// Favorite is a product saved by a user. Favorites from every user share a
// single persisted collection; user scoping is enforced by filtering on
// UserID at read time.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     string    `json:"price"`
	OldPrice  string    `json:"oldPrice,omitempty"`
	Specs     string    `json:"specs"`
	Brand     string    `json:"brand"`
	DateAdded time.Time `json:"dateAdded"`
}
