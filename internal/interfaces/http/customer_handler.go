package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kishanbeldas/pahana-edu/internal/application/billing"
	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
)

// CustomerHandler expone las cuentas de cliente del API externo.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes, con filtro opcional por cuenta o nombre
// @Tags         customers
// @Produce      json
// @Param        search  query  string  false  "subcadena a buscar"
// @Success      200  {array}  entity.Customer
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// GetByID godoc
// @Summary      Consultar un cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  entity.Customer
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	customer, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Create godoc
// @Summary      Registrar una cuenta de cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "datos del cliente"
// @Success      201   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update godoc
// @Summary      Actualizar una cuenta de cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del cliente"
// @Param        body  body  dto.CustomerRequest  true  "datos del cliente"
// @Success      200   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Delete godoc
// @Summary      Eliminar una cuenta de cliente (solo ADMIN)
// @Tags         customers
// @Param        id  path  int  true  "ID del cliente"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
