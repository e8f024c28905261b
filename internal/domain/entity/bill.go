package entity

import "github.com/shopspring/decimal"

// Estados de una factura según el API externo.
const (
	BillStatusPending = "PENDING"
	BillStatusPaid    = "PAID"
	BillStatusOverdue = "OVERDUE"
)

// Bill representa una factura tal como la expone el API externo.
// La consola nunca la persiste; solo la lee y envía payloads de creación/actualización.
// Las fechas son calendario puro en formato YYYY-MM-DD.
type Bill struct {
	ID          int64           `json:"id"`
	BillNumber  string          `json:"billNumber"`
	CustomerID  int64           `json:"customerId"`
	Customer    *Customer       `json:"customer,omitempty"`
	BillDate    string          `json:"billDate"`
	DueDate     string          `json:"dueDate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	BillItems   []BillItem      `json:"billItems,omitempty"`
}

// BillItem línea de una factura persistida.
type BillItem struct {
	ID         int64           `json:"id,omitempty"`
	ItemID     int64           `json:"itemId"`
	Item       *Item           `json:"item,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
