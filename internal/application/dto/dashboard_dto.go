package dto

// BucketCountDTO conteo de un grupo en una agregación.
type BucketCountDTO struct {
	Bucket string `json:"bucket"`
	Count  int64  `json:"count"`
}

// DashboardResponse resumen del dashboard de una tienda: conteos agrupados
// por tipo de movimiento, categoría de producto y estado de ticket.
type DashboardResponse struct {
	MovementsByType    []BucketCountDTO `json:"movements_by_type"`
	ProductsByCategory []BucketCountDTO `json:"products_by_category"`
	TicketsByStatus    []BucketCountDTO `json:"tickets_by_status"`
	LowStockCount      int64            `json:"low_stock_count"`
	PeriodDays         int              `json:"period_days"`
}
