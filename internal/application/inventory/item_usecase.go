package inventory

import (
	"context"
	"strings"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

const itemNameMaxLen = 100

// ItemUseCase pantalla de artículos: valida en la consola y delega el CRUD al
// API externo. El stock y el precio de catálogo los administra el API; la
// consola solo los muestra y edita.
type ItemUseCase struct {
	items ports.ItemGateway
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(items ports.ItemGateway) *ItemUseCase {
	return &ItemUseCase{items: items}
}

// List trae todos los artículos, con filtro opcional de subcadena sobre
// código, nombre y categoría.
func (uc *ItemUseCase) List(ctx context.Context, search string) ([]entity.Item, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return items, nil
	}
	out := make([]entity.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.ItemCode), term) ||
			strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.Category), term) {
			out = append(out, it)
		}
	}
	return out, nil
}

// GetByID obtiene un artículo.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return uc.items.GetByID(ctx, id)
}

// Create valida y crea el artículo en el API externo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*entity.Item, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	return uc.items.Create(ctx, in)
}

// Update valida y actualiza el artículo en el API externo.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.ItemRequest) (*entity.Item, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	return uc.items.Update(ctx, id, in)
}

// Delete elimina el artículo.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.items.Delete(ctx, id)
}

func validateItem(in dto.ItemRequest) error {
	if in.ItemCode == "" || in.Name == "" {
		return domain.ErrInvalidInput
	}
	if len(in.Name) > itemNameMaxLen {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() || in.StockQuantity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}
