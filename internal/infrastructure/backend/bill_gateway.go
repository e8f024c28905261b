package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// Verificar en tiempo de compilación que BillGateway implementa el puerto.
var _ ports.BillGateway = (*BillGateway)(nil)

// BillGateway adaptador de facturas contra el API externo.
type BillGateway struct {
	c *Client
}

// NewBillGateway construye el adaptador.
func NewBillGateway(c *Client) *BillGateway {
	return &BillGateway{c: c}
}

// List GET /bills
func (g *BillGateway) List(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := g.c.doJSON(ctx, http.MethodGet, "/bills", nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetByID GET /bills/{id}
func (g *BillGateway) GetByID(ctx context.Context, id int64) (*entity.Bill, error) {
	var bill entity.Bill
	if err := g.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/bills/%d", id), nil, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// GetByNumber GET /bills/number/{billNumber}
func (g *BillGateway) GetByNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	var bill entity.Bill
	path := "/bills/number/" + url.PathEscape(billNumber)
	if err := g.c.doJSON(ctx, http.MethodGet, path, nil, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// ListByCustomer GET /bills/customer/{id}
func (g *BillGateway) ListByCustomer(ctx context.Context, customerID int64) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := g.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/bills/customer/%d", customerID), nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// Create POST /bills
func (g *BillGateway) Create(ctx context.Context, payload dto.BillPayload) (*entity.Bill, error) {
	var bill entity.Bill
	if err := g.c.doJSON(ctx, http.MethodPost, "/bills", payload, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// Update PUT /bills/{id}
func (g *BillGateway) Update(ctx context.Context, id int64, payload dto.BillPayload) (*entity.Bill, error) {
	var bill entity.Bill
	if err := g.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/bills/%d", id), payload, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// Delete DELETE /bills/{id}
func (g *BillGateway) Delete(ctx context.Context, id int64) error {
	return g.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/bills/%d", id), nil, nil)
}

// DownloadPDF GET /bills/{id}/pdf (binario)
func (g *BillGateway) DownloadPDF(ctx context.Context, id int64) ([]byte, error) {
	return g.c.doRaw(ctx, fmt.Sprintf("/bills/%d/pdf", id))
}
