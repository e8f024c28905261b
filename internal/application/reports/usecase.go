package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
	"github.com/kishanbeldas/pahana-edu/pkg/logger"
)

// ReportUseCase reporte de ventas y tablero. Los volúmenes de la librería son
// modestos: se traen todas las facturas y el filtrado por rango se hace en
// memoria, igual que el resto de filtros de la consola.
type ReportUseCase struct {
	bills     ports.BillGateway
	customers ports.CustomerGateway
	items     ports.ItemGateway
	log       *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(bills ports.BillGateway, customers ports.CustomerGateway, items ports.ItemGateway, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{bills: bills, customers: customers, items: items, log: log}
}

// Sales genera el reporte del rango [start, end] (YYYY-MM-DD, ambos
// inclusive). Sin start se usa el primer día del mes actual; sin end, hoy.
func (uc *ReportUseCase) Sales(ctx context.Context, start, end string) (*dto.SalesReportResponse, error) {
	now := time.Now()
	if start == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	}
	if end == "" {
		end = now.Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if start > end {
		return nil, domain.ErrInvalidInput
	}

	bills, err := uc.bills.List(ctx)
	if err != nil {
		return nil, err
	}

	// Las fechas YYYY-MM-DD ordenan lexicográficamente, así que el rango se
	// resuelve con comparación de strings.
	inRange := make([]entity.Bill, 0, len(bills))
	for _, b := range bills {
		if b.BillDate >= start && b.BillDate <= end {
			inRange = append(inRange, b)
		}
	}

	summary := dto.SalesSummary{
		TotalBills:    len(inRange),
		TotalSales:    decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
		OverdueAmount: decimal.Zero,
	}
	for _, b := range inRange {
		summary.TotalSales = summary.TotalSales.Add(b.TotalAmount)
		switch b.Status {
		case entity.BillStatusPaid:
			summary.PaidBills++
			summary.PaidAmount = summary.PaidAmount.Add(b.TotalAmount)
		case entity.BillStatusPending:
			summary.PendingBills++
			summary.PendingAmount = summary.PendingAmount.Add(b.TotalAmount)
		case entity.BillStatusOverdue:
			summary.OverdueBills++
			summary.OverdueAmount = summary.OverdueAmount.Add(b.TotalAmount)
		}
	}

	return &dto.SalesReportResponse{
		StartDate: start,
		EndDate:   end,
		Summary:   summary,
		Bills:     inRange,
	}, nil
}

// Dashboard conteos generales. Cada sección se carga con su propia llamada y
// falla de forma independiente: un fallo deja la sección en cero y agrega un
// warning, sin tumbar el tablero completo.
func (uc *ReportUseCase) Dashboard(ctx context.Context) *dto.DashboardResponse {
	resp := &dto.DashboardResponse{TotalRevenue: decimal.Zero}

	customers, err := uc.customers.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("dashboard: cargar clientes")
		resp.Warnings = append(resp.Warnings, "no se pudieron cargar los clientes")
	} else {
		resp.TotalCustomers = len(customers)
	}

	items, err := uc.items.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("dashboard: cargar artículos")
		resp.Warnings = append(resp.Warnings, "no se pudieron cargar los artículos")
	} else {
		resp.TotalItems = len(items)
	}

	bills, err := uc.bills.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("dashboard: cargar facturas")
		resp.Warnings = append(resp.Warnings, "no se pudieron cargar las facturas")
	} else {
		resp.TotalBills = len(bills)
		for _, b := range bills {
			resp.TotalRevenue = resp.TotalRevenue.Add(b.TotalAmount)
			if b.Status == entity.BillStatusPending {
				resp.PendingBills++
			}
		}
	}

	return resp
}
