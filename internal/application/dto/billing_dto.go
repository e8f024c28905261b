package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// BillPayload payload normalizado que se envía al API externo en create/update.
// Las líneas van reducidas a sus cuatro campos; el registro completo del
// artículo seleccionado nunca se envía.
type BillPayload struct {
	BillNumber string            `json:"billNumber"`
	CustomerID int64             `json:"customerId"`
	BillDate   string            `json:"billDate"`
	DueDate    string            `json:"dueDate"`
	BillItems  []BillItemPayload `json:"billItems"`
}

// BillItemPayload línea reducida del payload.
type BillItemPayload struct {
	ItemID     int64           `json:"itemId"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// OpenDraftRequest body para POST /api/drafts.
// Con BillID el borrador se precarga desde la factura persistida (modo edición);
// sin él se crea un borrador nuevo con valores por defecto.
type OpenDraftRequest struct {
	BillID *int64 `json:"billId,omitempty"`
}

// OpenDraftResponse borrador recién abierto junto con las listas de referencia.
// Warnings reporta fallos no fatales al cargar clientes o artículos: el
// borrador sigue siendo usable con lo que sí cargó.
type OpenDraftResponse struct {
	Draft     DraftResponse     `json:"draft"`
	Customers []entity.Customer `json:"customers"`
	Items     []entity.Item     `json:"items"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// DraftResponse borrador con sus totales derivados. Subtotal, impuesto y total
// se recalculan en cada lectura; nunca se almacenan en el borrador.
type DraftResponse struct {
	ID          string              `json:"id"`
	BillID      *int64              `json:"billId,omitempty"`
	BillNumber  string              `json:"billNumber"`
	CustomerID  *int64              `json:"customerId,omitempty"`
	BillDate    string              `json:"billDate"`
	DueDate     string              `json:"dueDate"`
	BillItems   []DraftLineResponse `json:"billItems"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	TaxAmount   decimal.Decimal     `json:"taxAmount"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
}

// DraftLineResponse línea del borrador. ItemCode y ItemName son el snapshot
// tomado al seleccionar el artículo, para mostrar en la tabla.
type DraftLineResponse struct {
	ItemID     *int64          `json:"itemId,omitempty"`
	ItemCode   string          `json:"itemCode,omitempty"`
	ItemName   string          `json:"itemName,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// UpdateDraftRequest body para PUT /api/drafts/:id (cabecera del borrador).
// Solo se tocan los campos presentes.
type UpdateDraftRequest struct {
	CustomerID *int64  `json:"customerId,omitempty"`
	BillDate   *string `json:"billDate,omitempty"`
	DueDate    *string `json:"dueDate,omitempty"`
}

// UpdateDraftLineRequest body para PUT /api/drafts/:id/lines/:index.
// Solo se tocan los campos presentes. Seleccionar item_id toma snapshot del
// precio de catálogo vigente; el precio queda luego libremente editable.
type UpdateDraftLineRequest struct {
	ItemID    *int64           `json:"itemId,omitempty"`
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
}
