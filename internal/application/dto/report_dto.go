package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// SalesSummary estadísticas agregadas del rango del reporte.
type SalesSummary struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalBills    int             `json:"totalBills"`
	PaidBills     int             `json:"paidBills"`
	PendingBills  int             `json:"pendingBills"`
	OverdueBills  int             `json:"overdueBills"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
}

// SalesReportResponse reporte de ventas de un rango de fechas.
type SalesReportResponse struct {
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Summary   SalesSummary  `json:"summary"`
	Bills     []entity.Bill `json:"bills"`
}

// DashboardResponse conteos del tablero. Cada sección se carga de forma
// independiente: un fallo se reporta en Warnings y deja la sección en cero.
type DashboardResponse struct {
	TotalCustomers int             `json:"totalCustomers"`
	TotalItems     int             `json:"totalItems"`
	TotalBills     int             `json:"totalBills"`
	PendingBills   int             `json:"pendingBills"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	Warnings       []string        `json:"warnings,omitempty"`
}
