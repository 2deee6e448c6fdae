package models

import "time"

// ChangeType enumerates the two kinds of stock movements the backend logs.
type ChangeType string

const (
	ChangePurchase ChangeType = "purchase"
	ChangeSale     ChangeType = "sale"
)

// Valid reports whether the change type is one the backend accepts.
func (c ChangeType) Valid() bool {
	return c == ChangePurchase || c == ChangeSale
}

// InventoryLog is one append-only stock-change entry. The dashboard never
// edits or deletes these.
type InventoryLog struct {
	ID         int        `json:"id"`
	ProductID  int        `json:"product_id"`
	ChangeType ChangeType `json:"change_type"`
	Quantity   int        `json:"quantity"`
	Timestamp  time.Time  `json:"timestamp"`
}

// TransactionPayload is the body posted to /inventory/purchase or /inventory/sale.
type TransactionPayload struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// TransactionForm carries the raw dialog inputs for logging a transaction.
type TransactionForm struct {
	Kind      ChangeType `json:"kind"`
	ProductID string     `json:"product_id"`
	Quantity  string     `json:"quantity"`
}
