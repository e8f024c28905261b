package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// BillUseCase vista de lista/detalle de facturas: lee del API externo, filtra
// en memoria y enruta las mutaciones de vuelta al API.
type BillUseCase struct {
	bills ports.BillGateway
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(bills ports.BillGateway) *BillUseCase {
	return &BillUseCase{bills: bills}
}

// List trae todas las facturas y aplica el filtro de búsqueda: subcadena sin
// distinguir mayúsculas sobre número de factura, nombre del cliente y estado.
// Término vacío devuelve todo.
func (uc *BillUseCase) List(ctx context.Context, search string) ([]entity.Bill, error) {
	bills, err := uc.bills.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBills(bills, search), nil
}

// FilterBills filtro en memoria de la vista de facturas.
func FilterBills(bills []entity.Bill, term string) []entity.Bill {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return bills
	}
	out := make([]entity.Bill, 0, len(bills))
	for _, b := range bills {
		customerName := ""
		if b.Customer != nil {
			customerName = b.Customer.Name
		}
		if strings.Contains(strings.ToLower(b.BillNumber), term) ||
			strings.Contains(strings.ToLower(customerName), term) ||
			strings.Contains(strings.ToLower(b.Status), term) {
			out = append(out, b)
		}
	}
	return out
}

// GetByID obtiene el detalle completo de una factura.
func (uc *BillUseCase) GetByID(ctx context.Context, id int64) (*entity.Bill, error) {
	return uc.bills.GetByID(ctx, id)
}

// GetByNumber obtiene una factura por su número.
func (uc *BillUseCase) GetByNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	if billNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.bills.GetByNumber(ctx, billNumber)
}

// ListByCustomer facturas de un cliente.
func (uc *BillUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]entity.Bill, error) {
	return uc.bills.ListByCustomer(ctx, customerID)
}

// Create delega la creación al API externo. La validación fuerte vive en el
// Composer; aquí solo se rechazan payloads estructuralmente imposibles.
func (uc *BillUseCase) Create(ctx context.Context, payload dto.BillPayload) (*entity.Bill, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	return uc.bills.Create(ctx, payload)
}

// Update delega la actualización al API externo.
func (uc *BillUseCase) Update(ctx context.Context, id int64, payload dto.BillPayload) (*entity.Bill, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	return uc.bills.Update(ctx, id, payload)
}

func validatePayload(payload dto.BillPayload) error {
	if payload.BillNumber == "" || payload.CustomerID <= 0 || len(payload.BillItems) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range payload.BillItems {
		if item.ItemID <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// Delete elimina la factura. La confirmación previa (sí/no con el número de la
// factura) es asunto de la presentación; aquí solo se ejecuta.
func (uc *BillUseCase) Delete(ctx context.Context, id int64) error {
	return uc.bills.Delete(ctx, id)
}

// DownloadPDF pide el documento binario al API externo y devuelve los bytes
// junto con el nombre de archivo sugerido. Sin reintentos.
func (uc *BillUseCase) DownloadPDF(ctx context.Context, id int64) ([]byte, string, error) {
	data, err := uc.bills.DownloadPDF(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("bill-%d.pdf", id), nil
}
