package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

var _ repository.CouponRepository = (*CouponRepo)(nil)

// CouponRepo implementación de CouponRepository sobre PostgreSQL.
type CouponRepo struct {
	q Querier
}

// NewCouponRepository construye el adaptador de cupones. Pasar pool o tx (Querier).
func NewCouponRepository(q Querier) *CouponRepo {
	return &CouponRepo{q: q}
}

const couponColumns = `id, store_id, code, type, value, expires_at, max_uses, used_count, status, created_at`

// Create persiste un nuevo cupón. Code es único.
func (r *CouponRepo) Create(coupon *entity.Coupon) error {
	query := `
		INSERT INTO coupons (` + couponColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		coupon.ID, coupon.StoreID, coupon.Code, coupon.Type, coupon.Value,
		coupon.ExpiresAt, coupon.MaxUses, coupon.UsedCount, coupon.Status, coupon.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

// GetByID obtiene un cupón por ID.
func (r *CouponRepo) GetByID(id string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get coupon")
}

// GetByCode obtiene un cupón por su código.
func (r *CouponRepo) GetByCode(code string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get coupon by code")
}

func (r *CouponRepo) scanOne(row pgx.Row, op string) (*entity.Coupon, error) {
	var c entity.Coupon
	err := row.Scan(&c.ID, &c.StoreID, &c.Code, &c.Type, &c.Value,
		&c.ExpiresAt, &c.MaxUses, &c.UsedCount, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// ListByStore lista cupones de una tienda con paginación.
func (r *CouponRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Coupon
	for rows.Next() {
		var c entity.Coupon
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Code, &c.Type, &c.Value,
			&c.ExpiresAt, &c.MaxUses, &c.UsedCount, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Assign agrega un usuario a la lista de asignación del cupón. Idempotente.
func (r *CouponRepo) Assign(couponID, userID string) error {
	query := `
		INSERT INTO coupon_assignments (coupon_id, user_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (coupon_id, user_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, couponID, userID)
	if err != nil {
		return fmt.Errorf("assign coupon: %w", err)
	}
	return nil
}

// IsAssigned indica si el cupón está asignado al usuario.
func (r *CouponRepo) IsAssigned(couponID, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM coupon_assignments WHERE coupon_id = $1 AND user_id = $2)`,
		couponID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("coupon assigned: %w", err)
	}
	return exists, nil
}

// HasAssignments indica si el cupón tiene lista de asignación (si no, es público).
func (r *CouponRepo) HasAssignments(couponID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM coupon_assignments WHERE coupon_id = $1)`,
		couponID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("coupon has assignments: %w", err)
	}
	return exists, nil
}

// IncrementUsage consume un uso del cupón. El UPDATE es condicional: si aplicaciones
// concurrentes agotaron los usos entre la lectura y este punto, no afecta filas y se
// devuelve ErrCouponExhausted en lugar de exceder max_uses.
func (r *CouponRepo) IncrementUsage(couponID string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE coupons
		 SET used_count = used_count + 1
		 WHERE id = $1 AND (max_uses = 0 OR used_count < max_uses)`,
		couponID,
	)
	if err != nil {
		return fmt.Errorf("increment coupon usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCouponExhausted
	}
	return nil
}

// Delete elimina un cupón y su lista de asignación (FK cascade).
func (r *CouponRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}
