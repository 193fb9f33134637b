package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las métricas del día consideran solo pedidos cuya fecha cae en el día calendario actual.
type DashboardSummaryDTO struct {
	TotalSales   decimal.Decimal `json:"total_sales"`   // suma de totales de hoy
	TotalOrders  int             `json:"total_orders"`  // pedidos de hoy
	ActiveOrders int             `json:"active_orders"` // pedidos de hoy en preparo
	AvgPrepTime  int             `json:"avg_prep_time"` // minutos

	// Top 4 productos por ingreso en todos los pedidos (precio actual)
	TopProducts []TopProductDTO `json:"top_products"`

	// Serie de 7 días para el gráfico de barras (más antiguo primero)
	SalesByDay []DailySalesDTO `json:"sales_by_day"`

	StatusDistribution []StatusCountDTO `json:"status_distribution"`

	DateLabel string `json:"date_label"`
}

// TopProductDTO tarjeta de producto destacado.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	Glyph       string          `json:"glyph"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"` // recortada a 80 caracteres
	Sales       int             `json:"sales"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DailySalesDTO total vendido en un día.
type DailySalesDTO struct {
	Date  time.Time       `json:"date"`
	Label string          `json:"label"` // día de la semana abreviado
	Total decimal.Decimal `json:"total"`
}

// StatusCountDTO cantidad y valor de pedidos por estado.
type StatusCountDTO struct {
	Status string          `json:"status"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}
