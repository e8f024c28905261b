package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/inventory"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// ItemHandler expone el catálogo de artículos del API externo.
type ItemHandler struct {
	uc *inventory.ItemUseCase
}

// NewItemHandler construye el handler de artículos.
func NewItemHandler(uc *inventory.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos, con filtro opcional por código, nombre o categoría
// @Tags         items
// @Produce      json
// @Param        search  query  string  false  "subcadena a buscar"
// @Success      200  {array}  entity.Item
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Categories godoc
// @Summary      Listar las categorías disponibles para artículos
// @Tags         items
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/items/categories [get]
func (h *ItemHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(entity.ItemCategories)
}

// GetByID godoc
// @Summary      Consultar un artículo por ID
// @Tags         items
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  entity.Item
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	item, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Create godoc
// @Summary      Registrar un artículo en el catálogo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "datos del artículo"
// @Success      201   {object}  entity.Item
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update godoc
// @Summary      Actualizar un artículo del catálogo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del artículo"
// @Param        body  body  dto.ItemRequest  true  "datos del artículo"
// @Success      200   {object}  entity.Item
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar un artículo del catálogo (solo ADMIN)
// @Tags         items
// @Param        id  path  int  true  "ID del artículo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
