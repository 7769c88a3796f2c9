package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MovementIn         = "IN"
	MovementOut        = "OUT"
	MovementAdjustment = "ADJUSTMENT"
)

type InventoryItem struct {
	ID              int             `json:"id"`
	RestaurantID    int             `json:"restaurant_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (i *InventoryItem) OwningRestaurantID() int { return i.RestaurantID }

// LowStock reports whether the item is at or below its reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.CurrentQuantity.LessThanOrEqual(i.MinimumQuantity)
}

type StockMovement struct {
	ID              int             `json:"id"`
	InventoryItemID int             `json:"inventory_item_id"`
	MovementType    string          `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
