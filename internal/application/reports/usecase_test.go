package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/reports"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
	"github.com/kishanbeldas/pahana-edu/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: el reporte solo usa List de cada gateway.
// ──────────────────────────────────────────────────────────────────────────────

type listBills struct {
	bills []entity.Bill
	err   error
}

func (f *listBills) List(_ context.Context) ([]entity.Bill, error) { return f.bills, f.err }
func (f *listBills) GetByID(_ context.Context, _ int64) (*entity.Bill, error) {
	return nil, domain.ErrNotFound
}
func (f *listBills) GetByNumber(_ context.Context, _ string) (*entity.Bill, error) {
	return nil, domain.ErrNotFound
}
func (f *listBills) ListByCustomer(_ context.Context, _ int64) ([]entity.Bill, error) {
	return nil, nil
}
func (f *listBills) Create(_ context.Context, _ dto.BillPayload) (*entity.Bill, error) {
	return nil, errors.New("no implementado")
}
func (f *listBills) Update(_ context.Context, _ int64, _ dto.BillPayload) (*entity.Bill, error) {
	return nil, errors.New("no implementado")
}
func (f *listBills) Delete(_ context.Context, _ int64) error          { return errors.New("no implementado") }
func (f *listBills) DownloadPDF(_ context.Context, _ int64) ([]byte, error) {
	return nil, errors.New("no implementado")
}

type listCustomers struct {
	customers []entity.Customer
	err       error
}

func (f *listCustomers) List(_ context.Context) ([]entity.Customer, error) {
	return f.customers, f.err
}
func (f *listCustomers) GetByID(_ context.Context, _ int64) (*entity.Customer, error) {
	return nil, domain.ErrNotFound
}
func (f *listCustomers) Create(_ context.Context, _ dto.CustomerRequest) (*entity.Customer, error) {
	return nil, errors.New("no implementado")
}
func (f *listCustomers) Update(_ context.Context, _ int64, _ dto.CustomerRequest) (*entity.Customer, error) {
	return nil, errors.New("no implementado")
}
func (f *listCustomers) Delete(_ context.Context, _ int64) error { return errors.New("no implementado") }

type listItems struct {
	items []entity.Item
	err   error
}

func (f *listItems) List(_ context.Context) ([]entity.Item, error) { return f.items, f.err }
func (f *listItems) GetByID(_ context.Context, _ int64) (*entity.Item, error) {
	return nil, domain.ErrNotFound
}
func (f *listItems) Create(_ context.Context, _ dto.ItemRequest) (*entity.Item, error) {
	return nil, errors.New("no implementado")
}
func (f *listItems) Update(_ context.Context, _ int64, _ dto.ItemRequest) (*entity.Item, error) {
	return nil, errors.New("no implementado")
}
func (f *listItems) Delete(_ context.Context, _ int64) error { return errors.New("no implementado") }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func reportBills() []entity.Bill {
	return []entity.Bill{
		{ID: 1, BillDate: "2026-08-05", Status: entity.BillStatusPaid, TotalAmount: dec("110.00")},
		{ID: 2, BillDate: "2026-08-15", Status: entity.BillStatusPending, TotalAmount: dec("220.00")},
		{ID: 3, BillDate: "2026-08-20", Status: entity.BillStatusOverdue, TotalAmount: dec("330.00")},
		{ID: 4, BillDate: "2026-07-30", Status: entity.BillStatusPaid, TotalAmount: dec("999.00")}, // fuera de rango
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_FiltraPorRangoYAgregaPorEstado(t *testing.T) {
	uc := reports.NewReportUseCase(&listBills{bills: reportBills()}, &listCustomers{}, &listItems{}, testLogger())

	out, err := uc.Sales(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, 3, out.Summary.TotalBills, "la factura de julio queda fuera")
	assert.True(t, out.Summary.TotalSales.Equal(dec("660.00")))
	assert.Equal(t, 1, out.Summary.PaidBills)
	assert.True(t, out.Summary.PaidAmount.Equal(dec("110.00")))
	assert.Equal(t, 1, out.Summary.PendingBills)
	assert.True(t, out.Summary.PendingAmount.Equal(dec("220.00")))
	assert.Equal(t, 1, out.Summary.OverdueBills)
	assert.True(t, out.Summary.OverdueAmount.Equal(dec("330.00")))
	assert.Len(t, out.Bills, 3)
}

func TestSales_RangoInclusiveEnAmbosExtremos(t *testing.T) {
	uc := reports.NewReportUseCase(&listBills{bills: reportBills()}, &listCustomers{}, &listItems{}, testLogger())

	out, err := uc.Sales(context.Background(), "2026-08-05", "2026-08-20")
	require.NoError(t, err)
	assert.Equal(t, 3, out.Summary.TotalBills, "las facturas en los bordes del rango cuentan")
}

func TestSales_FechasPorDefecto(t *testing.T) {
	uc := reports.NewReportUseCase(&listBills{}, &listCustomers{}, &listItems{}, testLogger())

	out, err := uc.Sales(context.Background(), "", "")
	require.NoError(t, err)

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	assert.Equal(t, firstOfMonth, out.StartDate, "sin start se usa el primer día del mes")
	assert.Equal(t, now.Format("2006-01-02"), out.EndDate, "sin end se usa hoy")
}

func TestSales_FechasInvalidas(t *testing.T) {
	uc := reports.NewReportUseCase(&listBills{}, &listCustomers{}, &listItems{}, testLogger())

	_, err := uc.Sales(context.Background(), "01/08/2026", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Sales(context.Background(), "2026-08-31", "2026-08-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "start posterior a end es inválido")
}

func TestSales_FalloDelBackendPropaga(t *testing.T) {
	uc := reports.NewReportUseCase(&listBills{err: errors.New("backend caído")}, &listCustomers{}, &listItems{}, testLogger())
	_, err := uc.Sales(context.Background(), "2026-08-01", "2026-08-31")
	assert.Error(t, err, "el reporte no tiene secciones independientes: un fallo lo aborta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ConteosCompletos(t *testing.T) {
	uc := reports.NewReportUseCase(
		&listBills{bills: reportBills()},
		&listCustomers{customers: []entity.Customer{{ID: 1}, {ID: 2}}},
		&listItems{items: []entity.Item{{ID: 10}}},
		testLogger(),
	)

	out := uc.Dashboard(context.Background())
	assert.Equal(t, 2, out.TotalCustomers)
	assert.Equal(t, 1, out.TotalItems)
	assert.Equal(t, 4, out.TotalBills)
	assert.Equal(t, 1, out.PendingBills)
	assert.True(t, out.TotalRevenue.Equal(dec("1659.00")))
	assert.Empty(t, out.Warnings)
}

func TestDashboard_SeccionesFallanDeFormaIndependiente(t *testing.T) {
	uc := reports.NewReportUseCase(
		&listBills{bills: reportBills()},
		&listCustomers{err: errors.New("backend caído")},
		&listItems{items: []entity.Item{{ID: 10}}},
		testLogger(),
	)

	out := uc.Dashboard(context.Background())
	assert.Zero(t, out.TotalCustomers, "la sección caída queda en cero")
	assert.Equal(t, 1, out.TotalItems, "las demás secciones se cargan igual")
	assert.Equal(t, 4, out.TotalBills)
	assert.Len(t, out.Warnings, 1)
}
