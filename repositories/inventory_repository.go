package repositories

import (
	"context"
	"fmt"
	"time"

	"restaurant-platform/models"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

const inventoryColumns = `id, restaurant_id, name, unit, current_quantity, minimum_quantity, created_at, updated_at`

func (r *InventoryRepository) ItemsByIDs(ctx context.Context, restaurantID int, ids []int) ([]models.InventoryItem, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT `+inventoryColumns+` FROM inventory_items
		WHERE restaurant_id = $1 AND id = ANY($2)`, restaurantID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Unit, &it.CurrentQuantity, &it.MinimumQuantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]models.InventoryItem, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT `+inventoryColumns+` FROM inventory_items
		WHERE restaurant_id = $1 ORDER BY name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Unit, &it.CurrentQuantity, &it.MinimumQuantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) Create(ctx context.Context, it *models.InventoryItem) error {
	now := time.Now()
	return models.DB.QueryRow(ctx, `
		INSERT INTO inventory_items (restaurant_id, name, unit, current_quantity, minimum_quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$6)
		RETURNING id, created_at, updated_at`,
		it.RestaurantID, it.Name, it.Unit, it.CurrentQuantity, it.MinimumQuantity, now,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

// ApplyConsumption decrements stock and records the movements atomically.
// Rows are locked FOR UPDATE and quantities re-checked under the lock, so the
// current_quantity >= 0 invariant holds even against concurrent writers; any
// shortfall aborts the whole batch.
func (r *InventoryRepository) ApplyConsumption(ctx context.Context, restaurantID int, movements []models.StockMovement) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	for _, m := range movements {
		var current string
		err := tx.QueryRow(ctx, `
			SELECT current_quantity::text FROM inventory_items
			WHERE id = $1 AND restaurant_id = $2 FOR UPDATE`,
			m.InventoryItemID, restaurantID).Scan(&current)
		if err != nil {
			return fmt.Errorf("inventory item %d: %w", m.InventoryItemID, err)
		}

		result, err := tx.Exec(ctx, `
			UPDATE inventory_items SET current_quantity = current_quantity - $1, updated_at = $2
			WHERE id = $3 AND current_quantity >= $1`,
			m.Quantity, now, m.InventoryItemID)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("inventory item %d: stock changed concurrently, have %s need %s",
				m.InventoryItemID, current, m.Quantity.String())
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO stock_movements (inventory_item_id, movement_type, quantity, notes, created_at)
			VALUES ($1,$2,$3,$4,$5)`,
			m.InventoryItemID, m.MovementType, m.Quantity, m.Notes, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Adjust applies a manual stock movement (restock, correction).
func (r *InventoryRepository) Adjust(ctx context.Context, restaurantID, itemID int, m *models.StockMovement) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	delta := m.Quantity
	if m.MovementType == models.MovementOut {
		delta = delta.Neg()
	}

	result, err := tx.Exec(ctx, `
		UPDATE inventory_items SET current_quantity = current_quantity + $1, updated_at = $2
		WHERE id = $3 AND restaurant_id = $4 AND current_quantity + $1 >= 0`,
		delta, now, itemID, restaurantID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("inventory item %d not found or adjustment would go negative", itemID)
	}

	m.InventoryItemID = itemID
	err = tx.QueryRow(ctx, `
		INSERT INTO stock_movements (inventory_item_id, movement_type, quantity, notes, created_at)
		VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at`,
		itemID, m.MovementType, m.Quantity, m.Notes, now).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *InventoryRepository) Movements(ctx context.Context, itemID int, limit int) ([]models.StockMovement, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT id, inventory_item_id, movement_type, quantity, COALESCE(notes, ''), created_at
		FROM stock_movements WHERE inventory_item_id = $1
		ORDER BY created_at DESC LIMIT $2`, itemID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []models.StockMovement{}
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.InventoryItemID, &m.MovementType, &m.Quantity, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
