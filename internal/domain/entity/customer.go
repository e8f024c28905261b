package entity

import "github.com/shopspring/decimal"

// Customer representa un cliente de la librería (dato de referencia del API externo).
type Customer struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Telephone     string          `json:"telephone"`
	Email         string          `json:"email,omitempty"`
	UnitsConsumed decimal.Decimal `json:"unitsConsumed"`
}
