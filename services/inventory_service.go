package services

import (
	"context"
	"fmt"
	"log"

	"restaurant-platform/models"

	"github.com/shopspring/decimal"
)

// InsufficientStockError reports which ingredient blocked an order. The whole
// decrement is rejected; no partial deduction happens.
type InsufficientStockError struct {
	Ingredient string
	Available  decimal.Decimal
	Required   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: have %s, need %s",
		e.Ingredient, e.Available.String(), e.Required.String())
}

// InventoryRepo is the storage surface for stock deduction.
type InventoryRepo interface {
	ItemsByIDs(ctx context.Context, restaurantID int, ids []int) ([]models.InventoryItem, error)
	// ApplyConsumption decrements each referenced inventory item and records
	// the movement rows, all inside one transaction. It re-checks quantities
	// under row locks and fails the whole batch on any shortfall.
	ApplyConsumption(ctx context.Context, restaurantID int, movements []models.StockMovement) error
}

type InventoryService struct {
	repo        InventoryRepo
	menu        MenuSource
	restaurants RestaurantSource
	notifier    Notifier
}

func NewInventoryService(repo InventoryRepo, menu MenuSource, restaurants RestaurantSource, notifier Notifier) *InventoryService {
	return &InventoryService{repo: repo, menu: menu, restaurants: restaurants, notifier: notifier}
}

// ConsumeForOrder deducts the ingredients required by the order's items
// according to each menu item's recipe. The deduction is all-or-nothing:
// if any ingredient is short, nothing is decremented and the caller gets an
// InsufficientStockError naming it. Ingredients in a recipe that have no
// inventory row are treated as untracked and skipped.
func (s *InventoryService) ConsumeForOrder(ctx context.Context, o *models.Order) error {
	if len(o.Items) == 0 {
		return nil
	}

	menuIDs := make([]int, 0, len(o.Items))
	orderQty := map[int]int{}
	for _, it := range o.Items {
		menuIDs = append(menuIDs, it.MenuItemID)
		orderQty[it.MenuItemID] += it.Quantity
	}

	menuItems, err := s.menu.MenuItemsByIDs(ctx, o.RestaurantID, menuIDs)
	if err != nil {
		return err
	}

	required := map[int]decimal.Decimal{}
	for _, mi := range menuItems {
		n := decimal.NewFromInt(int64(orderQty[mi.ID]))
		for ingredientID, perUnit := range mi.Recipe {
			required[ingredientID] = required[ingredientID].Add(perUnit.Mul(n))
		}
	}
	if len(required) == 0 {
		return nil
	}

	ingredientIDs := make([]int, 0, len(required))
	for id := range required {
		ingredientIDs = append(ingredientIDs, id)
	}

	items, err := s.repo.ItemsByIDs(ctx, o.RestaurantID, ingredientIDs)
	if err != nil {
		return err
	}

	byID := map[int]models.InventoryItem{}
	for _, it := range items {
		byID[it.ID] = it
	}

	movements := make([]models.StockMovement, 0, len(required))
	var lowStock []models.InventoryItem
	for id, need := range required {
		item, ok := byID[id]
		if !ok {
			continue // ingredient not tracked in inventory
		}
		if item.CurrentQuantity.LessThan(need) {
			return &InsufficientStockError{
				Ingredient: item.Name,
				Available:  item.CurrentQuantity,
				Required:   need,
			}
		}
		movements = append(movements, models.StockMovement{
			InventoryItemID: id,
			MovementType:    models.MovementOut,
			Quantity:        need,
			Notes:           fmt.Sprintf("Consumed by order %s", o.OrderNumber),
		})

		item.CurrentQuantity = item.CurrentQuantity.Sub(need)
		if item.LowStock() {
			lowStock = append(lowStock, item)
		}
	}
	if len(movements) == 0 {
		return nil
	}

	if err := s.repo.ApplyConsumption(ctx, o.RestaurantID, movements); err != nil {
		return err
	}

	s.alertLowStock(ctx, o.RestaurantID, lowStock)
	return nil
}

// alertLowStock notifies the restaurant owner about items at or below their
// minimum quantity. Alert failures never fail the decrement that already
// committed.
func (s *InventoryService) alertLowStock(ctx context.Context, restaurantID int, items []models.InventoryItem) {
	if s.notifier == nil || len(items) == 0 {
		return
	}

	restaurant, err := s.restaurants.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		log.Printf("Low-stock alert: restaurant %d lookup failed: %v", restaurantID, err)
		return
	}

	for _, it := range items {
		draft := NotificationDraft{
			Type:  models.NotifyAlert,
			Title: "Low Stock Alert",
			Message: fmt.Sprintf("%s is running low: %s %s left (minimum %s %s)",
				it.Name, it.CurrentQuantity.String(), it.Unit, it.MinimumQuantity.String(), it.Unit),
			Data: map[string]any{"inventory_item_id": it.ID, "restaurant_id": restaurantID},
		}
		if err := s.notifier.Notify(ctx, restaurant.OwnerID, draft); err != nil {
			log.Printf("Low-stock alert for %s failed: %v", it.Name, err)
		}
	}
}
