package billing_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kishanbeldas/pahana-edu/internal/application/billing"
	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

func validCustomer() dto.CustomerRequest {
	return dto.CustomerRequest{
		AccountNumber: "ACC-001",
		Name:          "Nimal Perera",
		Address:       "Calle 123, Colombo",
		Telephone:     "0771234567",
		Email:         "nimal@example.com",
	}
}

func TestCustomerList_FiltraPorCuentaYNombre(t *testing.T) {
	gw := &fakeCustomerGateway{customers: []entity.Customer{
		{ID: 1, AccountNumber: "ACC-001", Name: "Nimal Perera"},
		{ID: 2, AccountNumber: "ACC-002", Name: "Kamala Silva"},
	}}
	uc := billing.NewCustomerUseCase(gw)

	out, err := uc.List(context.Background(), "kamala")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)

	out, err = uc.List(context.Background(), "acc-001")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)

	out, err = uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, out, 2, "término vacío devuelve todos")
}

func TestCustomerCreate_Validaciones(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerGateway{})

	cases := map[string]func(*dto.CustomerRequest){
		"cuenta vacía":          func(c *dto.CustomerRequest) { c.AccountNumber = "" },
		"nombre vacío":          func(c *dto.CustomerRequest) { c.Name = "" },
		"dirección vacía":       func(c *dto.CustomerRequest) { c.Address = "" },
		"teléfono vacío":        func(c *dto.CustomerRequest) { c.Telephone = "" },
		"teléfono muy corto":    func(c *dto.CustomerRequest) { c.Telephone = "123" },
		"teléfono con letras":   func(c *dto.CustomerRequest) { c.Telephone = "07712345ab" },
		"email sin arroba":      func(c *dto.CustomerRequest) { c.Email = "nimal.example.com" },
		"nombre muy largo":      func(c *dto.CustomerRequest) { c.Name = strings.Repeat("a", 101) },
	}
	for name, mutate := range cases {
		in := validCustomer()
		mutate(&in)
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestCustomerCreate_EmailEsOpcional(t *testing.T) {
	// El fake devuelve error en Create: si la validación pasó, el error viene
	// del gateway y no de la validación.
	uc := billing.NewCustomerUseCase(&fakeCustomerGateway{})
	in := validCustomer()
	in.Email = ""

	_, err := uc.Create(context.Background(), in)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput, "sin email la validación debe pasar")
}

func TestCustomerCreate_TelefonoConFormatoInternacional(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerGateway{})
	in := validCustomer()
	in.Telephone = "+94 77 123-4567"

	_, err := uc.Create(context.Background(), in)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput, "el prefijo + y separadores son válidos")
}
