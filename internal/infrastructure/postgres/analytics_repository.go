package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard (conteos agrupados por bucket).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountMovementsByType agrupa los movimientos de inventario de una tienda por tipo en el período.
// Filtra por el store_id desnormalizado del libro: los movimientos de productos ya
// eliminados cuentan igual que los del resto.
func (r *AnalyticsRepo) CountMovementsByType(
	ctx context.Context,
	storeID string,
	from, to time.Time,
) ([]repository.BucketCount, error) {
	const query = `
	SELECT type, COUNT(*)
	FROM movements
	WHERE store_id = $1
	  AND created_at BETWEEN $2 AND $3
	GROUP BY type
	ORDER BY COUNT(*) DESC`

	return r.countBuckets(ctx, "CountMovementsByType", query, storeID, from, to)
}

// CountProductsByCategory agrupa los productos de una tienda por categoría.
func (r *AnalyticsRepo) CountProductsByCategory(ctx context.Context, storeID string) ([]repository.BucketCount, error) {
	const query = `
	SELECT category, COUNT(*)
	FROM products
	WHERE store_id = $1
	GROUP BY category
	ORDER BY COUNT(*) DESC`

	return r.countBuckets(ctx, "CountProductsByCategory", query, storeID)
}

// CountTicketsByStatus agrupa todos los tickets por estado.
func (r *AnalyticsRepo) CountTicketsByStatus(ctx context.Context) ([]repository.BucketCount, error) {
	const query = `
	SELECT status, COUNT(*)
	FROM tickets
	GROUP BY status
	ORDER BY COUNT(*) DESC`

	return r.countBuckets(ctx, "CountTicketsByStatus", query)
}

// CountLowStock cuenta los productos de la tienda en o por debajo de su umbral.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, storeID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE store_id = $1 AND quantity <= low_stock_threshold`,
		storeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) countBuckets(ctx context.Context, op, query string, args ...any) ([]repository.BucketCount, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.BucketCount
	for rows.Next() {
		var row repository.BucketCount
		if err := rows.Scan(&row.Bucket, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
