package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"restaurant-platform/models"
)

type PromoRepository struct{}

func NewPromoRepository() *PromoRepository {
	return &PromoRepository{}
}

const promoColumns = `id, code, title, COALESCE(description, ''), discount_type, value,
	valid_from, valid_until, max_uses, used_count, is_active, created_at`

func scanPromotion(row interface{ Scan(...any) error }) (*models.Promotion, error) {
	var p models.Promotion
	err := row.Scan(&p.ID, &p.Code, &p.Title, &p.Description, &p.DiscountType, &p.Value,
		&p.ValidFrom, &p.ValidUntil, &p.MaxUses, &p.UsedCount, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepository) GetActiveByCode(ctx context.Context, code string) (*models.Promotion, error) {
	p, err := scanPromotion(models.DB.QueryRow(ctx,
		`SELECT `+promoColumns+` FROM promotions WHERE code = $1 AND is_active = true`,
		strings.ToUpper(code)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PromoRepository) GetByID(ctx context.Context, id int) (*models.Promotion, error) {
	p, err := scanPromotion(models.DB.QueryRow(ctx,
		`SELECT `+promoColumns+` FROM promotions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// IncrementUse bumps the redemption counter without exceeding max_uses.
// A zero max_uses means unlimited.
func (r *PromoRepository) IncrementUse(ctx context.Context, id int) error {
	result, err := models.DB.Exec(ctx, `
		UPDATE promotions SET used_count = used_count + 1
		WHERE id = $1 AND (max_uses = 0 OR used_count < max_uses)`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("promotion exhausted")
	}
	return nil
}

func (r *PromoRepository) List(ctx context.Context, activeOnly bool, page, limit int) ([]models.Promotion, int, error) {
	offset := (page - 1) * limit
	filter := ""
	if activeOnly {
		filter = ` WHERE is_active = true AND valid_until >= NOW()`
	}

	var total int
	if err := models.DB.QueryRow(ctx, `SELECT COUNT(*) FROM promotions`+filter).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := models.DB.Query(ctx,
		`SELECT `+promoColumns+` FROM promotions`+filter+` ORDER BY valid_until DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	promos := []models.Promotion{}
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, 0, err
		}
		promos = append(promos, *p)
	}
	return promos, total, rows.Err()
}

func (r *PromoRepository) Create(ctx context.Context, p *models.Promotion) error {
	return models.DB.QueryRow(ctx, `
		INSERT INTO promotions (code, title, description, discount_type, value,
			valid_from, valid_until, max_uses, used_count, is_active, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,true,$9)
		RETURNING id, used_count, is_active, created_at`,
		strings.ToUpper(p.Code), p.Title, p.Description, p.DiscountType, p.Value,
		p.ValidFrom, p.ValidUntil, p.MaxUses, time.Now(),
	).Scan(&p.ID, &p.UsedCount, &p.IsActive, &p.CreatedAt)
}

func (r *PromoRepository) Update(ctx context.Context, p *models.Promotion) error {
	result, err := models.DB.Exec(ctx, `
		UPDATE promotions SET title = $1, description = $2, discount_type = $3, value = $4,
			valid_from = $5, valid_until = $6, max_uses = $7, is_active = $8
		WHERE id = $9`,
		p.Title, p.Description, p.DiscountType, p.Value,
		p.ValidFrom, p.ValidUntil, p.MaxUses, p.IsActive, p.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PromoRepository) Delete(ctx context.Context, id int) error {
	result, err := models.DB.Exec(ctx,
		`UPDATE promotions SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
