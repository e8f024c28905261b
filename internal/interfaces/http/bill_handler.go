package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kishanbeldas/pahana-edu/internal/application/billing"
	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
)

// BillHandler expone el almacén de facturas del API externo.
type BillHandler struct {
	uc *billing.BillUseCase
}

// NewBillHandler construye el handler de facturas.
func NewBillHandler(uc *billing.BillUseCase) *BillHandler {
	return &BillHandler{uc: uc}
}

// List godoc
// @Summary      Listar facturas, con filtro opcional por número, cliente o estado
// @Tags         bills
// @Produce      json
// @Param        search  query  string  false  "subcadena a buscar (insensible a mayúsculas)"
// @Success      200  {array}  entity.Bill
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/bills [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	bills, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bills)
}

// GetByID godoc
// @Summary      Consultar una factura por ID
// @Tags         bills
// @Produce      json
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {object}  entity.Bill
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [get]
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	bill, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// GetByNumber godoc
// @Summary      Consultar una factura por número
// @Tags         bills
// @Produce      json
// @Param        billNumber  path  string  true  "número de factura"
// @Success      200  {object}  entity.Bill
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/number/{billNumber} [get]
func (h *BillHandler) GetByNumber(c *fiber.Ctx) error {
	bill, err := h.uc.GetByNumber(c.UserContext(), c.Params("billNumber"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// ListByCustomer godoc
// @Summary      Listar facturas de un cliente
// @Tags         bills
// @Produce      json
// @Param        customerId  path  int  true  "ID del cliente"
// @Success      200  {array}  entity.Bill
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/bills/customer/{customerId} [get]
func (h *BillHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := parseID(c, "customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de cliente inválido"})
	}
	bills, err := h.uc.ListByCustomer(c.UserContext(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bills)
}

// Create godoc
// @Summary      Crear una factura directamente (sin pasar por el compositor)
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BillPayload  true  "factura completa"
// @Success      201   {object}  entity.Bill
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.BillPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// Update godoc
// @Summary      Reemplazar una factura existente
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID de la factura"
// @Param        body  body  dto.BillPayload  true  "factura completa"
// @Success      200   {object}  entity.Bill
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [put]
func (h *BillHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.BillPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// Delete godoc
// @Summary      Eliminar una factura (solo ADMIN)
// @Tags         bills
// @Param        id  path  int  true  "ID de la factura"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [delete]
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descargar el PDF de una factura
// @Tags         bills
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id}/pdf [get]
func (h *BillHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	data, filename, err := h.uc.DownloadPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
