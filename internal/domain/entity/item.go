package entity

import "github.com/shopspring/decimal"

// Categorías de artículos de la librería.
var ItemCategories = []string{"Books", "Stationery", "Electronics", "Accessories", "Software", "Other"}

// Item representa un artículo del catálogo (dato de referencia del API externo).
// UnitPrice es el precio de catálogo vigente; al seleccionarlo en una factura
// se toma un snapshot y no se vuelve a sincronizar.
type Item struct {
	ID            int64           `json:"id"`
	ItemCode      string          `json:"itemCode"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Category      string          `json:"category,omitempty"`
	StockQuantity int             `json:"stockQuantity"`
}
