package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

var _ ports.CustomerGateway = (*CustomerGateway)(nil)

// CustomerGateway adaptador de clientes contra el API externo.
type CustomerGateway struct {
	c *Client
}

// NewCustomerGateway construye el adaptador.
func NewCustomerGateway(c *Client) *CustomerGateway {
	return &CustomerGateway{c: c}
}

// List GET /customers
func (g *CustomerGateway) List(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := g.c.doJSON(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID GET /customers/{id}
func (g *CustomerGateway) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customer entity.Customer
	if err := g.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create POST /customers
func (g *CustomerGateway) Create(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	var customer entity.Customer
	if err := g.c.doJSON(ctx, http.MethodPost, "/customers", in, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update PUT /customers/{id}
func (g *CustomerGateway) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*entity.Customer, error) {
	var customer entity.Customer
	if err := g.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), in, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete DELETE /customers/{id}
func (g *CustomerGateway) Delete(ctx context.Context, id int64) error {
	return g.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
}
