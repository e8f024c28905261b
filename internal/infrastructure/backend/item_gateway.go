package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

var _ ports.ItemGateway = (*ItemGateway)(nil)

// ItemGateway adaptador de artículos contra el API externo.
type ItemGateway struct {
	c *Client
}

// NewItemGateway construye el adaptador.
func NewItemGateway(c *Client) *ItemGateway {
	return &ItemGateway{c: c}
}

// List GET /items
func (g *ItemGateway) List(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	if err := g.c.doJSON(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID GET /items/{id}
func (g *ItemGateway) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	var item entity.Item
	if err := g.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create POST /items
func (g *ItemGateway) Create(ctx context.Context, in dto.ItemRequest) (*entity.Item, error) {
	var item entity.Item
	if err := g.c.doJSON(ctx, http.MethodPost, "/items", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update PUT /items/{id}
func (g *ItemGateway) Update(ctx context.Context, id int64, in dto.ItemRequest) (*entity.Item, error) {
	var item entity.Item
	if err := g.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete DELETE /items/{id}
func (g *ItemGateway) Delete(ctx context.Context, id int64) error {
	return g.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}
