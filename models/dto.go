package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
	Role     string `json:"role" binding:"omitempty,oneof=CUSTOMER RESTAURANT_OWNER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type RestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
}

type TableRequest struct {
	TableNumber string `json:"table_number" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Location    string `json:"location"`
	IsAvailable *bool  `json:"is_available"`
}

type MenuCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type MenuItemRequest struct {
	CategoryID   int             `json:"category_id" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	IsAvailable  *bool           `json:"is_available"`
	IsVegetarian bool            `json:"is_vegetarian"`
	Recipe       Recipe          `json:"recipe"`
	PrepMinutes  int             `json:"preparation_time"`
}

type CheckoutItem struct {
	MenuItemID int `json:"menu_item_id" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	RestaurantID    int            `json:"restaurant_id" binding:"required"`
	Items           []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string         `json:"delivery_address" binding:"required"`
	PaymentMethod   string         `json:"payment_method" binding:"required"`
	PromoCode       string         `json:"promo_code"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type ReservationRequest struct {
	RestaurantID    int    `json:"restaurant_id" binding:"required"`
	TableID         int    `json:"table_id" binding:"required"`
	ReservationDate string `json:"reservation_date" binding:"required"` // YYYY-MM-DD
	ReservationTime string `json:"reservation_time" binding:"required"` // HH:MM
	GuestsCount     int    `json:"guests_count" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
}

type InventoryItemRequest struct {
	Name            string          `json:"name" binding:"required"`
	Unit            string          `json:"unit" binding:"required"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
}

type StockAdjustmentRequest struct {
	MovementType string          `json:"movement_type" binding:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Notes        string          `json:"notes"`
}

type PromotionRequest struct {
	Code         string          `json:"code" binding:"required"`
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	DiscountType string          `json:"discount_type" binding:"required,oneof=PERCENT FIXED"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	ValidFrom    string          `json:"valid_from" binding:"required"`  // YYYY-MM-DD
	ValidUntil   string          `json:"valid_until" binding:"required"` // YYYY-MM-DD
	MaxUses      int             `json:"max_uses"`
}

type SupportTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=CUSTOMER RESTAURANT_OWNER ADMIN"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=CUSTOMER RESTAURANT_OWNER ADMIN"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
