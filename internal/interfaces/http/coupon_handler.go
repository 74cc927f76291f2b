package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/application/usecase"
	"github.com/mercadito-app/mercadito-api/internal/domain"
)

// CouponHandler maneja cupones de descuento (protegido).
type CouponHandler struct {
	uc *usecase.CouponUseCase
}

// NewCouponHandler construye el handler.
func NewCouponHandler(uc *usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{uc: uc}
}

func couponError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cupón no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el cupón pertenece a otra tienda"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"})
	case errors.Is(err, domain.ErrCouponExpired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "COUPON_EXPIRED", Message: "el cupón ya venció"})
	case errors.Is(err, domain.ErrCouponExhausted):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "COUPON_EXHAUSTED", Message: "el cupón agotó sus usos"})
	case errors.Is(err, domain.ErrCouponNotAssigned):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "COUPON_NOT_ASSIGNED", Message: "el cupón no está asignado a este usuario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear cupón
// @Tags         coupons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCouponRequest  true  "Datos del cupón"
// @Success      201   {object}  dto.CouponResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/coupons [post]
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetStoreID(c), in)
	if err != nil {
		return couponError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cupones de la tienda
// @Tags         coupons
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CouponListResponse
// @Router       /api/coupons [get]
func (h *CouponHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetStoreID(c), page.Limit, page.Offset)
	if err != nil {
		return couponError(c, err)
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar cupón a un usuario
// @Description  Con asignaciones, el cupón deja de ser público y solo lo pueden aplicar los usuarios asignados.
// @Tags         coupons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cupón"
// @Param        body  body  dto.AssignCouponRequest  true  "Usuario a asignar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/coupons/{id}/assign [post]
func (h *CouponHandler) Assign(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de cupón inválido"})
	}
	var in dto.AssignCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Assign(GetStoreID(c), id, in.UserID); err != nil {
		return couponError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cupón asignado"})
}

// Apply godoc
// @Summary      Aplicar un código de cupón sobre un total
// @Tags         coupons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyCouponRequest  true  "Código y total"
// @Success      200   {object}  dto.ApplyCouponResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/coupons/apply [post]
func (h *CouponHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Apply(GetUserID(c), in)
	if err != nil {
		return couponError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cupón
// @Tags         coupons
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cupón"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de cupón inválido"})
	}
	if err := h.uc.Delete(GetStoreID(c), id); err != nil {
		return couponError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cupón eliminado"})
}
