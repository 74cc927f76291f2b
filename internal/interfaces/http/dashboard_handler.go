package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mercadito-app/mercadito-api/internal/application/analytics"
	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
)

// DashboardHandler expone el resumen del panel de la tienda.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard de la tienda
// @Description  Conteos agrupados: movimientos por tipo en la ventana, productos por categoría, tickets por estado y productos en stock bajo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period_days  query  int  false  "Ventana en días"  default(30)
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	if storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id requerido"})
	}
	out, err := h.uc.Summary(c.UserContext(), storeID, c.QueryInt("period_days", analytics.DefaultPeriodDays))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
