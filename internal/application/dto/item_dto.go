package dto

import "github.com/shopspring/decimal"

// ItemRequest body para crear/actualizar artículos en el API externo.
type ItemRequest struct {
	ItemCode      string          `json:"itemCode"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Category      string          `json:"category,omitempty"`
	StockQuantity int             `json:"stockQuantity"`
}
