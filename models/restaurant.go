package models

import "time"

type Restaurant struct {
	ID           int       `json:"id"`
	OwnerID      int       `json:"owner_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ImageURL     string    `json:"image_url,omitempty"`
	CloudinaryID string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *Restaurant) OwnerUserID() int        { return r.OwnerID }
func (r *Restaurant) OwningRestaurantID() int { return r.ID }

type Table struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	TableNumber  string    `json:"table_number"`
	Capacity     int       `json:"capacity"`
	Location     string    `json:"location,omitempty"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *Table) OwningRestaurantID() int { return t.RestaurantID }
