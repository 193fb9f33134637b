package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportDTO resultado de GET /api/reports. Solo la sección del tipo pedido viene poblada.
type ReportDTO struct {
	Type        string    `json:"type"`
	Period      string    `json:"period"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`

	Sales     *SalesReportDTO     `json:"sales,omitempty"`
	Products  []ProductReportRow  `json:"products,omitempty"`
	Orders    *OrdersReportDTO    `json:"orders,omitempty"`
	Customers *CustomersReportDTO `json:"customers,omitempty"`
}

// SalesReportDTO resumen de ventas del período.
type SalesReportDTO struct {
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	OrderCount    int              `json:"order_count"`
	AverageTicket decimal.Decimal  `json:"average_ticket"`
	StatusCounts  []StatusCountDTO `json:"status_counts"`
}

// ProductReportRow unidades e ingreso por producto.
type ProductReportRow struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Stock     int             `json:"stock"`
}

// OrdersReportDTO hasta 10 pedidos del período.
type OrdersReportDTO struct {
	Orders     []OrderRow `json:"orders"`
	TotalCount int        `json:"total_count"`
	Truncated  bool       `json:"truncated"`
}

// CustomersReportDTO top 10 clientes por gasto.
type CustomersReportDTO struct {
	Customers         []CustomerStatDTO `json:"customers"`
	DistinctCustomers int               `json:"distinct_customers"`
}

// CustomerStatDTO pedidos y gasto de un cliente.
type CustomerStatDTO struct {
	Name   string          `json:"name"`
	Phone  string          `json:"phone"`
	Orders int             `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}
