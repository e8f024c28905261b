package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
	"github.com/kishanbeldas/pahana-edu/internal/infrastructure/backend"
	"github.com/kishanbeldas/pahana-edu/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del adaptador HTTP contra un API externo simulado con httptest.
// ──────────────────────────────────────────────────────────────────────────────

func newClient(srv *httptest.Server) *backend.Client {
	return backend.NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 5})
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestBillGateway_GetByID_DecodificaCamelCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bills/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 7,
			"billNumber": "bill-20260801-1001",
			"customerId": 3,
			"billDate": "2026-08-01",
			"dueDate": "2026-08-31",
			"subtotal": "450.00",
			"taxAmount": "45.00",
			"totalAmount": "495.00",
			"status": "PENDING",
			"billItems": [
				{"id": 1, "itemId": 10, "quantity": "3", "unitPrice": "150.00", "totalPrice": "450.00"}
			]
		}`))
	}))
	defer srv.Close()

	gw := backend.NewBillGateway(newClient(srv))
	bill, err := gw.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), bill.ID)
	assert.Equal(t, "bill-20260801-1001", bill.BillNumber)
	assert.Equal(t, int64(3), bill.CustomerID)
	assert.Equal(t, entity.BillStatusPending, bill.Status)
	assert.True(t, bill.TotalAmount.Equal(d("495.00")))
	require.Len(t, bill.BillItems, 1)
	assert.True(t, bill.BillItems[0].Quantity.Equal(d("3")))
}

func TestBillGateway_404SeTraduceAErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Bill not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	gw := backend.NewBillGateway(newClient(srv))
	_, err := gw.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBillGateway_500SeEnvuelveComoErrBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom interno", http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := backend.NewBillGateway(newClient(srv))
	_, err := gw.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Contains(t, err.Error(), "boom interno", "el mensaje incluye un fragmento del cuerpo")
}

func TestBillGateway_Create_EnviaElPayloadComoJSON(t *testing.T) {
	var received dto.BillPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bills", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1, "billNumber": "bill-20260801-1001"}`))
	}))
	defer srv.Close()

	gw := backend.NewBillGateway(newClient(srv))
	bill, err := gw.Create(context.Background(), dto.BillPayload{
		BillNumber: "bill-20260801-1001",
		CustomerID: 3,
		BillDate:   "2026-08-01",
		DueDate:    "2026-08-31",
		BillItems: []dto.BillItemPayload{
			{ItemID: 10, Quantity: d("3"), UnitPrice: d("150.00"), TotalPrice: d("450.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), bill.ID)
	assert.Equal(t, "bill-20260801-1001", received.BillNumber)
	assert.Equal(t, int64(3), received.CustomerID)
	require.Len(t, received.BillItems, 1)
	assert.Equal(t, int64(10), received.BillItems[0].ItemID)
}

func TestBillGateway_DownloadPDF_DevuelveBytesCrudos(t *testing.T) {
	pdf := []byte("%PDF-1.4 contenido binario")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bills/7/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	gw := backend.NewBillGateway(newClient(srv))
	data, err := gw.DownloadPDF(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestBillGateway_Delete_SinCuerpoDeRespuesta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	gw := backend.NewBillGateway(newClient(srv))
	assert.NoError(t, gw.Delete(context.Background(), 7))
}

func TestBillGateway_GetByNumber_EscapaElNumeroEnLaRuta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bills/number/bill-20260801-1001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "billNumber": "bill-20260801-1001"}`))
	}))
	defer srv.Close()

	gw := backend.NewBillGateway(newClient(srv))
	bill, err := gw.GetByNumber(context.Background(), "bill-20260801-1001")
	require.NoError(t, err)
	assert.Equal(t, int64(7), bill.ID)
}

func TestCustomerGateway_CicloBasico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers":
			w.Write([]byte(`[{"id": 1, "accountNumber": "ACC-001", "name": "Nimal Perera"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/customers":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 2, "accountNumber": "ACC-002", "name": "Kamala Silva"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	gw := backend.NewCustomerGateway(newClient(srv))

	customers, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "ACC-001", customers[0].AccountNumber)

	created, err := gw.Create(context.Background(), dto.CustomerRequest{
		AccountNumber: "ACC-002", Name: "Kamala Silva", Address: "Calle 45", Telephone: "0779876543",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestClient_ContextCanceladoAbortaLaPeticion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	gw := backend.NewItemGateway(newClient(srv))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
