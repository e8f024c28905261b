package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/inventory"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

type fakeItemGateway struct {
	items   []entity.Item
	created []dto.ItemRequest
}

func (f *fakeItemGateway) List(_ context.Context) ([]entity.Item, error) { return f.items, nil }
func (f *fakeItemGateway) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
func (f *fakeItemGateway) Create(_ context.Context, in dto.ItemRequest) (*entity.Item, error) {
	f.created = append(f.created, in)
	return &entity.Item{ID: int64(len(f.created)), ItemCode: in.ItemCode, Name: in.Name}, nil
}
func (f *fakeItemGateway) Update(_ context.Context, _ int64, _ dto.ItemRequest) (*entity.Item, error) {
	return nil, errors.New("no implementado en el fake")
}
func (f *fakeItemGateway) Delete(_ context.Context, _ int64) error { return nil }

func catalog() []entity.Item {
	return []entity.Item{
		{ID: 10, ItemCode: "BK-001", Name: "Madol Doova", Category: "Books"},
		{ID: 20, ItemCode: "ST-002", Name: "Cuaderno A4", Category: "Stationery"},
	}
}

func TestItemList_FiltraPorCodigoNombreYCategoria(t *testing.T) {
	uc := inventory.NewItemUseCase(&fakeItemGateway{items: catalog()})

	out, err := uc.List(context.Background(), "books")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(10), out[0].ID)

	out, err = uc.List(context.Background(), "st-002")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(20), out[0].ID)

	out, err = uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestItemCreate_Validaciones(t *testing.T) {
	gw := &fakeItemGateway{}
	uc := inventory.NewItemUseCase(gw)

	valid := dto.ItemRequest{
		ItemCode:      "BK-003",
		Name:          "Gamperaliya",
		UnitPrice:     decimal.RequireFromString("550.00"),
		Category:      "Books",
		StockQuantity: 10,
	}

	_, err := uc.Create(context.Background(), valid)
	require.NoError(t, err)
	assert.Len(t, gw.created, 1)

	bad := valid
	bad.ItemCode = ""
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin código")

	bad = valid
	bad.Name = ""
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin nombre")

	bad = valid
	bad.UnitPrice = decimal.RequireFromString("-1")
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	bad = valid
	bad.StockQuantity = -5
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo")

	assert.Len(t, gw.created, 1, "ningún artículo inválido debe llegar al API")
}
