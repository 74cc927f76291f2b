package repository

import (
	"context"
	"time"
)

// BucketCount resultado de una agregación por grupo (GROUP BY).
type BucketCount struct {
	Bucket string
	Count  int64
}

// AnalyticsRepository consultas de solo lectura para el dashboard (conteos agrupados).
type AnalyticsRepository interface {
	CountMovementsByType(ctx context.Context, storeID string, from, to time.Time) ([]BucketCount, error)
	CountProductsByCategory(ctx context.Context, storeID string) ([]BucketCount, error)
	CountTicketsByStatus(ctx context.Context) ([]BucketCount, error)
	CountLowStock(ctx context.Context, storeID string) (int64, error)
}
