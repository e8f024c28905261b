package billing

import "github.com/shopspring/decimal"

// TaxRate tarifa de impuesto fija aplicada al subtotal (10%).
var TaxRate = decimal.NewFromFloat(0.10)

// Totals totales derivados de una factura. Nunca se almacenan: se recalculan
// desde las líneas en cada lectura.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// LineTotal calcula el total de una línea: cantidad * precio unitario.
// Siempre se deriva de los valores actuales de la línea; nunca del precio
// vigente del catálogo.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Compute deriva subtotal, impuesto y total a partir de los totales de línea.
// Es puro e idempotente:
//
//	subtotal    = Σ lineTotals
//	taxAmount   = round2(subtotal * 0.10)
//	totalAmount = subtotal + taxAmount
func Compute(lineTotals []decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, lt := range lineTotals {
		subtotal = subtotal.Add(lt)
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}
}
