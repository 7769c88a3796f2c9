package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuCategory struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	SortOrder    int       `json:"sort_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *MenuCategory) OwningRestaurantID() int { return c.RestaurantID }

// Recipe maps an inventory item ID to the quantity consumed per ordered unit.
// Stored as JSONB on the menu item row.
type Recipe map[int]decimal.Decimal

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	CategoryID   int             `json:"category_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url,omitempty"`
	CloudinaryID string          `json:"-"`
	IsAvailable  bool            `json:"is_available"`
	IsVegetarian bool            `json:"is_vegetarian"`
	Recipe       Recipe          `json:"recipe,omitempty"`
	PrepMinutes  int             `json:"preparation_time"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (m *MenuItem) OwningRestaurantID() int { return m.RestaurantID }
