package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"restaurant-platform/models"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

const menuItemColumns = `id, restaurant_id, category_id, name, COALESCE(description, ''),
	price, COALESCE(image_url, ''), COALESCE(cloudinary_id, ''), is_available,
	is_vegetarian, COALESCE(recipe, '{}'), preparation_time, created_at, updated_at`

func scanMenuItem(row interface{ Scan(...any) error }) (*models.MenuItem, error) {
	var m models.MenuItem
	var recipe []byte
	err := row.Scan(&m.ID, &m.RestaurantID, &m.CategoryID, &m.Name, &m.Description,
		&m.Price, &m.ImageURL, &m.CloudinaryID, &m.IsAvailable,
		&m.IsVegetarian, &recipe, &m.PrepMinutes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(recipe) > 0 {
		if err := json.Unmarshal(recipe, &m.Recipe); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

func (r *MenuRepository) MenuItemsByIDs(ctx context.Context, restaurantID int, ids []int) ([]models.MenuItem, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE restaurant_id = $1 AND id = ANY($2)`,
		restaurantID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

func (r *MenuRepository) GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error) {
	m, err := scanMenuItem(models.DB.QueryRow(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *MenuRepository) ListMenuItems(ctx context.Context, restaurantID, categoryID int, availableOnly bool) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE restaurant_id = $1`
	args := []any{restaurantID}
	if categoryID > 0 {
		args = append(args, categoryID)
		query += ` AND category_id = $2`
	}
	if availableOnly {
		query += ` AND is_available = true`
	}
	query += ` ORDER BY name`

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

func (r *MenuRepository) CreateMenuItem(ctx context.Context, m *models.MenuItem) error {
	recipe, err := json.Marshal(m.Recipe)
	if err != nil {
		return err
	}
	now := time.Now()
	return models.DB.QueryRow(ctx, `
		INSERT INTO menu_items (restaurant_id, category_id, name, description, price,
			image_url, cloudinary_id, is_available, is_vegetarian, recipe,
			preparation_time, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$12)
		RETURNING id, created_at, updated_at`,
		m.RestaurantID, m.CategoryID, m.Name, m.Description, m.Price,
		m.ImageURL, m.CloudinaryID, m.IsAvailable, m.IsVegetarian, recipe,
		m.PrepMinutes, now,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MenuRepository) UpdateMenuItem(ctx context.Context, m *models.MenuItem) error {
	recipe, err := json.Marshal(m.Recipe)
	if err != nil {
		return err
	}
	result, err := models.DB.Exec(ctx, `
		UPDATE menu_items SET category_id = $1, name = $2, description = $3, price = $4,
			image_url = $5, cloudinary_id = $6, is_available = $7, is_vegetarian = $8,
			recipe = $9, preparation_time = $10, updated_at = $11
		WHERE id = $12`,
		m.CategoryID, m.Name, m.Description, m.Price,
		m.ImageURL, m.CloudinaryID, m.IsAvailable, m.IsVegetarian,
		recipe, m.PrepMinutes, time.Now(), m.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteMenuItem(ctx context.Context, id int) error {
	result, err := models.DB.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) GetCategory(ctx context.Context, id int) (*models.MenuCategory, error) {
	var c models.MenuCategory
	err := models.DB.QueryRow(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), sort_order, is_active, created_at
		FROM menu_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuRepository) ListCategories(ctx context.Context, restaurantID int) ([]models.MenuCategory, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), sort_order, is_active, created_at
		FROM menu_categories WHERE restaurant_id = $1
		ORDER BY sort_order, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.MenuCategory{}
	for rows.Next() {
		var c models.MenuCategory
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Description,
			&c.SortOrder, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *MenuRepository) CreateCategory(ctx context.Context, c *models.MenuCategory) error {
	return models.DB.QueryRow(ctx, `
		INSERT INTO menu_categories (restaurant_id, name, description, sort_order, is_active, created_at)
		VALUES ($1,$2,$3,$4,true,$5)
		RETURNING id, is_active, created_at`,
		c.RestaurantID, c.Name, c.Description, c.SortOrder, time.Now(),
	).Scan(&c.ID, &c.IsActive, &c.CreatedAt)
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, c *models.MenuCategory) error {
	result, err := models.DB.Exec(ctx, `
		UPDATE menu_categories SET name = $1, description = $2, sort_order = $3, is_active = $4
		WHERE id = $5`,
		c.Name, c.Description, c.SortOrder, c.IsActive, c.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteCategory(ctx context.Context, id int) error {
	result, err := models.DB.Exec(ctx, `DELETE FROM menu_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
