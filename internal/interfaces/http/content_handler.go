package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/application/usecase"
	"github.com/mercadito-app/mercadito-api/internal/domain"
)

// ContentHandler maneja el contenido editorial: blog y eventos.
// Las lecturas son públicas; las escrituras requieren rol admin.
type ContentHandler struct {
	uc *usecase.ContentUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

func contentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenido no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el slug ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// CreatePost godoc
// @Summary      Publicar entrada de blog
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostRequest  true  "Entrada"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/content/posts [post]
func (h *ContentHandler) CreatePost(c *fiber.Ctx) error {
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePost(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return contentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPosts godoc
// @Summary      Listar entradas del blog
// @Tags         content
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PostListResponse
// @Router       /api/content/posts [get]
func (h *ContentHandler) ListPosts(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListPosts(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(out)
}

// GetPost godoc
// @Summary      Obtener entrada de blog por slug
// @Tags         content
// @Produce      json
// @Param        slug  path  string  true  "Slug de la entrada"
// @Success      200   {object}  dto.PostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/content/posts/{slug} [get]
func (h *ContentHandler) GetPost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "slug es requerido"})
	}
	out, err := h.uc.GetPostBySlug(c.UserContext(), slug)
	if err != nil {
		return contentError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// UpdatePost godoc
// @Summary      Editar entrada de blog
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Slug de la entrada"
// @Param        body  body  dto.UpdatePostRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/content/posts/{slug} [put]
func (h *ContentHandler) UpdatePost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "slug es requerido"})
	}
	var in dto.UpdatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePost(c.UserContext(), slug, in)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(out)
}

// DeletePost godoc
// @Summary      Eliminar entrada de blog
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        slug  path  string  true  "Slug de la entrada"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/content/posts/{slug} [delete]
func (h *ContentHandler) DeletePost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "slug es requerido"})
	}
	if err := h.uc.DeletePost(c.UserContext(), slug); err != nil {
		return contentError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "entrada eliminada"})
}

// CreateEvent godoc
// @Summary      Publicar evento
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "Evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/content/events [post]
func (h *ContentHandler) CreateEvent(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEvent(c.UserContext(), in)
	if err != nil {
		return contentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEvents godoc
// @Summary      Listar eventos (próximos primero)
// @Tags         content
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.EventListResponse
// @Router       /api/content/events [get]
func (h *ContentHandler) ListEvents(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListEvents(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(out)
}

// DeleteEvent godoc
// @Summary      Eliminar evento
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/events/{id} [delete]
func (h *ContentHandler) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de evento inválido"})
	}
	if err := h.uc.DeleteEvent(c.UserContext(), id); err != nil {
		return contentError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "evento eliminado"})
}
