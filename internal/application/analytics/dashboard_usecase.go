package analytics

import (
	"context"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

// DefaultPeriodDays ventana por defecto para los conteos de movimientos.
const DefaultPeriodDays = 30

// DashboardUseCase arma el resumen del panel de una tienda a partir de
// agregaciones de solo lectura.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// Summary devuelve los conteos agrupados del panel. periodDays acota la ventana
// de los movimientos; valores fuera de [1, 365] se reemplazan por el defecto.
func (uc *DashboardUseCase) Summary(ctx context.Context, storeID string, periodDays int) (*dto.DashboardResponse, error) {
	if storeID == "" {
		return nil, domain.ErrInvalidInput
	}
	if periodDays < 1 || periodDays > 365 {
		periodDays = DefaultPeriodDays
	}
	to := time.Now()
	from := to.AddDate(0, 0, -periodDays)

	movements, err := uc.analyticsRepo.CountMovementsByType(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	products, err := uc.analyticsRepo.CountProductsByCategory(ctx, storeID)
	if err != nil {
		return nil, err
	}
	tickets, err := uc.analyticsRepo.CountTicketsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analyticsRepo.CountLowStock(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		MovementsByType:    toBuckets(movements),
		ProductsByCategory: toBuckets(products),
		TicketsByStatus:    toBuckets(tickets),
		LowStockCount:      lowStock,
		PeriodDays:         periodDays,
	}, nil
}

func toBuckets(in []repository.BucketCount) []dto.BucketCountDTO {
	out := make([]dto.BucketCountDTO, 0, len(in))
	for _, b := range in {
		out = append(out, dto.BucketCountDTO{Bucket: b.Bucket, Count: b.Count})
	}
	return out
}
