package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/application/usecase"
	"github.com/mercadito-app/mercadito-api/internal/domain"
)

// ListingHandler maneja los anuncios clasificados entre usuarios.
type ListingHandler struct {
	uc *usecase.ListingUseCase
}

// NewListingHandler construye el handler.
func NewListingHandler(uc *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

func listingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de anuncio inválido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "anuncio no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el anuncio pertenece a otro usuario"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el anuncio ya no está activo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func parseListingID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errInvalidID
	}
	return id, nil
}

// Create godoc
// @Summary      Publicar anuncio
// @Tags         listings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListingRequest  true  "Datos del anuncio"
// @Success      201   {object}  dto.ListingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/listings [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return listingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar anuncios activos
// @Tags         listings
// @Produce      json
// @Param        category  query  string  false  "Categoría"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.ListingListResponse
// @Router       /api/listings [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return listingError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener anuncio por ID
// @Tags         listings
// @Produce      json
// @Param        id   path  string  true  "ID del anuncio"
// @Success      200  {object}  dto.ListingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listings/{id} [get]
func (h *ListingHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseListingID(c)
	if err != nil {
		return listingError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return listingError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "anuncio no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar anuncio propio
// @Tags         listings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del anuncio"
// @Param        body  body  dto.UpdateListingRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ListingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/listings/{id} [put]
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	id, err := parseListingID(c)
	if err != nil {
		return listingError(c, err)
	}
	var in dto.UpdateListingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		return listingError(c, err)
	}
	return c.JSON(out)
}

// MarkSold godoc
// @Summary      Marcar anuncio como vendido
// @Tags         listings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del anuncio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listings/{id}/sold [post]
func (h *ListingHandler) MarkSold(c *fiber.Ctx) error {
	id, err := parseListingID(c)
	if err != nil {
		return listingError(c, err)
	}
	if err := h.uc.MarkSold(GetUserID(c), id); err != nil {
		return listingError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "anuncio marcado como vendido"})
}

// Delete godoc
// @Summary      Eliminar anuncio propio
// @Tags         listings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del anuncio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listings/{id} [delete]
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseListingID(c)
	if err != nil {
		return listingError(c, err)
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		return listingError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "anuncio eliminado"})
}
