package notify

import (
	"github.com/mercadito-app/mercadito-api/internal/application/inventory"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/pkg/logger"
)

var _ inventory.LowStockNotifier = (*LogNotifier)(nil)

// LogNotifier emite el aviso de stock bajo como evento estructurado en el log.
// Otras implementaciones (email, webhook) pueden sustituirlo vía el puerto.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador sobre el logger de la aplicación.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// NotifyLowStock registra el evento con producto, stock actual y umbral.
func (n *LogNotifier) NotifyLowStock(product *entity.Product) {
	n.log.Warn().
		Str("event", "low_stock").
		Str("product_id", product.ID).
		Str("store_id", product.StoreID).
		Str("name", product.Name).
		Int64("quantity", product.Quantity).
		Int64("threshold", product.LowStockThreshold).
		Msg("stock bajo")
}
