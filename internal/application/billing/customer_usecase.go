package billing

import (
	"context"
	"regexp"
	"strings"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// Reglas de validación de la pantalla de clientes.
var (
	phoneRe = regexp.MustCompile(`^\+?[0-9\s\-()]{10,15}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const customerNameMaxLen = 100

// CustomerUseCase pantalla de clientes: valida en la consola y delega el CRUD
// al API externo.
type CustomerUseCase struct {
	customers ports.CustomerGateway
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers ports.CustomerGateway) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List trae todos los clientes, con filtro opcional de subcadena sobre número
// de cuenta y nombre.
func (uc *CustomerUseCase) List(ctx context.Context, search string) ([]entity.Customer, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return customers, nil
	}
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.AccountNumber), term) ||
			strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return uc.customers.GetByID(ctx, id)
}

// Create valida y crea el cliente en el API externo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	return uc.customers.Create(ctx, in)
}

// Update valida y actualiza el cliente en el API externo.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*entity.Customer, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	return uc.customers.Update(ctx, id, in)
}

// Delete elimina el cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.customers.Delete(ctx, id)
}

func validateCustomer(in dto.CustomerRequest) error {
	if in.AccountNumber == "" || in.Name == "" || in.Address == "" || in.Telephone == "" {
		return domain.ErrInvalidInput
	}
	if len(in.Name) > customerNameMaxLen {
		return domain.ErrInvalidInput
	}
	if !phoneRe.MatchString(in.Telephone) {
		return domain.ErrInvalidInput
	}
	if in.Email != "" && !emailRe.MatchString(in.Email) {
		return domain.ErrInvalidInput
	}
	return nil
}
