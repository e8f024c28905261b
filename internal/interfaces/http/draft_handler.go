package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kishanbeldas/pahana-edu/internal/application/billing"
	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
)

// DraftHandler expone el compositor de facturas: borradores en memoria con
// totales derivados en el servidor.
type DraftHandler struct {
	composer *billing.Composer
}

// NewDraftHandler construye el handler de borradores.
func NewDraftHandler(composer *billing.Composer) *DraftHandler {
	return &DraftHandler{composer: composer}
}

// Open godoc
// @Summary      Abrir un borrador de factura (nuevo o precargado desde una factura existente)
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenDraftRequest  false  "billId opcional para modo edición"
// @Success      201   {object}  dto.OpenDraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenDraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.composer.Open(c.UserContext(), in.BillID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Consultar un borrador con sus totales
// @Tags         drafts
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	out, err := h.composer.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateHeader godoc
// @Summary      Actualizar cliente y fechas del borrador
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del borrador"
// @Param        body  body  dto.UpdateDraftRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [put]
func (h *DraftHandler) UpdateHeader(c *fiber.Ctx) error {
	var in dto.UpdateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.composer.UpdateHeader(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar una línea en blanco al borrador
// @Tags         drafts
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/lines [post]
func (h *DraftHandler) AddLine(c *fiber.Ctx) error {
	out, err := h.composer.AddLine(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine godoc
// @Summary      Actualizar una línea del borrador (artículo, cantidad o precio)
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id     path  string                      true  "ID del borrador"
// @Param        index  path  int                         true  "posición de la línea (base 0)"
// @Param        body   body  dto.UpdateDraftLineRequest  true  "campos a actualizar"
// @Success      200    {object}  dto.DraftResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/lines/{index} [put]
func (h *DraftHandler) UpdateLine(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice de línea inválido"})
	}
	var in dto.UpdateDraftLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.composer.UpdateLine(c.Params("id"), index, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Eliminar una línea del borrador
// @Tags         drafts
// @Produce      json
// @Param        id     path  string  true  "ID del borrador"
// @Param        index  path  int     true  "posición de la línea (base 0)"
// @Success      200    {object}  dto.DraftResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/lines/{index} [delete]
func (h *DraftHandler) RemoveLine(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice de línea inválido"})
	}
	out, err := h.composer.RemoveLine(c.Params("id"), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Validar el borrador y enviarlo al API de facturación
// @Tags         drafts
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {object}  entity.Bill
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	bill, err := h.composer.Submit(c.UserContext(), c.Params("id"))
	if err != nil {
		var verr *billing.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: verr.Code, Message: verr.Message})
		}
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// Discard godoc
// @Summary      Descartar el borrador
// @Tags         drafts
// @Param        id  path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [delete]
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	if err := h.composer.Discard(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
