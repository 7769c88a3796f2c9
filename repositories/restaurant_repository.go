package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"restaurant-platform/models"
)

var ErrNotFound = errors.New("record not found")

type RestaurantRepository struct{}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{}
}

const restaurantColumns = `id, owner_id, name, slug, COALESCE(description, ''), address,
	phone, email, COALESCE(image_url, ''), COALESCE(cloudinary_id, ''), is_active,
	created_at, updated_at`

func scanRestaurant(row interface{ Scan(...any) error }) (*models.Restaurant, error) {
	var r models.Restaurant
	err := row.Scan(&r.ID, &r.OwnerID, &r.Name, &r.Slug, &r.Description, &r.Address,
		&r.Phone, &r.Email, &r.ImageURL, &r.CloudinaryID, &r.IsActive,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (repo *RestaurantRepository) GetRestaurantByID(ctx context.Context, id int) (*models.Restaurant, error) {
	r, err := scanRestaurant(models.DB.QueryRow(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (repo *RestaurantRepository) GetBySlug(ctx context.Context, slug string) (*models.Restaurant, error) {
	r, err := scanRestaurant(models.DB.QueryRow(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (repo *RestaurantRepository) List(ctx context.Context, search string, page, limit int) ([]models.Restaurant, int, error) {
	offset := (page - 1) * limit
	pattern := "%" + search + "%"

	var total int
	if err := models.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM restaurants
		WHERE is_active = true AND name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := models.DB.Query(ctx, `
		SELECT `+restaurantColumns+` FROM restaurants
		WHERE is_active = true AND name ILIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, 0, err
		}
		restaurants = append(restaurants, *r)
	}
	return restaurants, total, rows.Err()
}

func (repo *RestaurantRepository) Create(ctx context.Context, r *models.Restaurant) error {
	now := time.Now()
	return models.DB.QueryRow(ctx, `
		INSERT INTO restaurants (owner_id, name, slug, description, address, phone,
			email, image_url, cloudinary_id, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,true,$10,$10)
		RETURNING id, is_active, created_at, updated_at`,
		r.OwnerID, r.Name, r.Slug, r.Description, r.Address, r.Phone,
		r.Email, r.ImageURL, r.CloudinaryID, now,
	).Scan(&r.ID, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
}

func (repo *RestaurantRepository) Update(ctx context.Context, r *models.Restaurant) error {
	result, err := models.DB.Exec(ctx, `
		UPDATE restaurants SET name = $1, description = $2, address = $3, phone = $4,
			email = $5, image_url = $6, cloudinary_id = $7, is_active = $8, updated_at = $9
		WHERE id = $10`,
		r.Name, r.Description, r.Address, r.Phone,
		r.Email, r.ImageURL, r.CloudinaryID, r.IsActive, time.Now(), r.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *RestaurantRepository) Delete(ctx context.Context, id int) error {
	result, err := models.DB.Exec(ctx,
		`UPDATE restaurants SET is_active = false, updated_at = $1 WHERE id = $2`,
		time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const tableColumns = `id, restaurant_id, table_number, capacity, COALESCE(location, ''),
	is_available, created_at`

func (repo *RestaurantRepository) GetTable(ctx context.Context, id int) (*models.Table, error) {
	var t models.Table
	err := models.DB.QueryRow(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE id = $1`, id,
	).Scan(&t.ID, &t.RestaurantID, &t.TableNumber, &t.Capacity, &t.Location,
		&t.IsAvailable, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (repo *RestaurantRepository) ListTables(ctx context.Context, restaurantID int) ([]models.Table, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE restaurant_id = $1 ORDER BY table_number`,
		restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []models.Table{}
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.TableNumber, &t.Capacity,
			&t.Location, &t.IsAvailable, &t.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (repo *RestaurantRepository) CreateTable(ctx context.Context, t *models.Table) error {
	return models.DB.QueryRow(ctx, `
		INSERT INTO tables (restaurant_id, table_number, capacity, location, is_available, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`,
		t.RestaurantID, t.TableNumber, t.Capacity, t.Location, t.IsAvailable, time.Now(),
	).Scan(&t.ID, &t.CreatedAt)
}

func (repo *RestaurantRepository) UpdateTable(ctx context.Context, t *models.Table) error {
	result, err := models.DB.Exec(ctx, `
		UPDATE tables SET table_number = $1, capacity = $2, location = $3, is_available = $4
		WHERE id = $5`,
		t.TableNumber, t.Capacity, t.Location, t.IsAvailable, t.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *RestaurantRepository) DeleteTable(ctx context.Context, id int) error {
	result, err := models.DB.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
