package models

import "time"

// Product mirrors a catalog record as served by the inventory backend. The
// dashboard never owns product state; every instance is a re-fetched snapshot.
type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
}

// IsLowStock reports whether the product sits below its restock threshold.
func (p Product) IsLowStock() bool {
	return p.Stock < p.Threshold
}

// ProductPayload is the mutation body sent to the backend for create/update.
type ProductPayload struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
	Threshold int     `json:"threshold"`
}

// ProductForm carries the raw text inputs of the product dialog. Numeric
// fields stay strings until the catalog service coerces them.
type ProductForm struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice string `json:"unit_price"`
	Stock     string `json:"stock"`
	Threshold string `json:"threshold"`
}

// DefaultThreshold is the pre-parse default offered by the product form.
const DefaultThreshold = "10"
