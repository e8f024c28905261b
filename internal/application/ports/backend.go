package ports

import (
	"context"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// Puertos hacia el API externo de facturación. La consola es solo una capa de
// interacción: toda la persistencia vive detrás de estas interfaces. Cada
// llamada recibe context.Context para que la petición saliente se cancele
// cuando el llamador desaparece.

// BillGateway operaciones de facturas del API externo.
type BillGateway interface {
	List(ctx context.Context) ([]entity.Bill, error)
	GetByID(ctx context.Context, id int64) (*entity.Bill, error)
	GetByNumber(ctx context.Context, billNumber string) (*entity.Bill, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entity.Bill, error)
	Create(ctx context.Context, payload dto.BillPayload) (*entity.Bill, error)
	Update(ctx context.Context, id int64, payload dto.BillPayload) (*entity.Bill, error)
	Delete(ctx context.Context, id int64) error
	DownloadPDF(ctx context.Context, id int64) ([]byte, error)
}

// CustomerGateway operaciones de clientes del API externo.
type CustomerGateway interface {
	List(ctx context.Context) ([]entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error)
	Update(ctx context.Context, id int64, in dto.CustomerRequest) (*entity.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// ItemGateway operaciones de artículos del API externo.
type ItemGateway interface {
	List(ctx context.Context) ([]entity.Item, error)
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	Create(ctx context.Context, in dto.ItemRequest) (*entity.Item, error)
	Update(ctx context.Context, id int64, in dto.ItemRequest) (*entity.Item, error)
	Delete(ctx context.Context, id int64) error
}
