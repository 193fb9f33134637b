package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/view"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// Períodos de reporte.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// Tipos de reporte.
const (
	ReportSales     = "sales"
	ReportProducts  = "products"
	ReportOrders    = "orders"
	ReportCustomers = "customers"
)

const (
	reportOrdersLimit    = 10
	reportCustomersLimit = 10
)

var periodLabels = map[string]string{
	PeriodToday: "Hoje",
	PeriodWeek:  "Esta Semana",
	PeriodMonth: "Este Mês",
	PeriodAll:   "Todo o Período",
}

var reportTitles = map[string]string{
	ReportSales:     "Relatório de Vendas",
	ReportProducts:  "Relatório de Produtos",
	ReportOrders:    "Relatório de Pedidos",
	ReportCustomers: "Relatório de Clientes",
}

// ValidatePeriod domain.ValidationError si el período no es conocido.
func ValidatePeriod(period string) error {
	if _, ok := periodLabels[period]; !ok {
		return domain.NewValidationError("period", "Período inválido!")
	}
	return nil
}

// ValidateType domain.ValidationError si el tipo no es conocido.
func ValidateType(typ string) error {
	if _, ok := reportTitles[typ]; !ok {
		return domain.NewValidationError("type", "Tipo de relatório inválido!")
	}
	return nil
}

// Title título del reporte, ej: "Relatório de Vendas - Hoje".
func Title(typ, period string) string {
	return reportTitles[typ] + " - " + periodLabels[period]
}

// PeriodStart inicio del período en la zona de now. ok=false para "all" (sin límite).
//
//	today: hoy 00:00
//	week:  domingo más reciente 00:00 (hoy si hoy es domingo)
//	month: día 1 del mes 00:00
func PeriodStart(period string, now time.Time) (start time.Time, ok bool) {
	today := startOfDay(now)
	switch period {
	case PeriodToday:
		return today, true
	case PeriodWeek:
		return today.AddDate(0, 0, -int(today.Weekday())), true
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// FilterOrders pedidos del período, en el orden recibido.
func FilterOrders(orders []entity.Order, period string, now time.Time) []entity.Order {
	start, ok := PeriodStart(period, now)
	if !ok {
		return orders
	}
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if period == PeriodToday {
			if sameDay(o.Date, now, now.Location()) {
				out = append(out, o)
			}
			continue
		}
		if !o.Date.Before(start) {
			out = append(out, o)
		}
	}
	return out
}

// BuildReport arma el reporte del tipo pedido sobre los pedidos del período.
func BuildReport(st *state.State, typ, period string, now time.Time) (*dto.ReportDTO, error) {
	if err := ValidateType(typ); err != nil {
		return nil, err
	}
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}
	orders := FilterOrders(st.Orders, period, now)
	out := &dto.ReportDTO{Type: typ, Period: period, Title: Title(typ, period), GeneratedAt: now}
	switch typ {
	case ReportSales:
		out.Sales = salesReport(orders)
	case ReportProducts:
		out.Products = productsReport(st.Products, orders)
	case ReportOrders:
		out.Orders = ordersReport(orders, st.Products)
	case ReportCustomers:
		out.Customers = customersReport(orders)
	}
	return out, nil
}

func salesReport(orders []entity.Order) *dto.SalesReportDTO {
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}
	avg := decimal.Zero
	if len(orders) > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(len(orders))))
	}
	return &dto.SalesReportDTO{
		TotalRevenue:  revenue.Round(2),
		OrderCount:    len(orders),
		AverageTicket: avg.Round(2),
		StatusCounts:  StatusCounts(orders),
	}
}

// productsReport una fila por producto del catálogo, ordenada por ingreso descendente.
func productsReport(catalog []entity.Product, orders []entity.Order) []dto.ProductReportRow {
	rows := productRows(catalog, orders)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue.GreaterThan(rows[j].Revenue) })
	return rows
}

// productRows una fila por producto en orden de catálogo: unidades pedidas e ingreso a precio actual.
func productRows(catalog []entity.Product, orders []entity.Order) []dto.ProductReportRow {
	units := unitsSold(catalog, orders)
	rows := make([]dto.ProductReportRow, 0, len(catalog))
	for _, p := range catalog {
		n := units[p.ID]
		rows = append(rows, dto.ProductReportRow{
			ProductID: p.ID.String(),
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.Price.Round(2),
			UnitsSold: n,
			Revenue:   p.Price.Mul(decimal.NewFromInt(int64(n))).Round(2),
			Stock:     p.Stock,
		})
	}
	return rows
}

func ordersReport(orders []entity.Order, catalog []entity.Product) *dto.OrdersReportDTO {
	shown := orders
	if len(shown) > reportOrdersLimit {
		shown = shown[:reportOrdersLimit]
	}
	return &dto.OrdersReportDTO{
		Orders:     view.OrderRows(shown, catalog),
		TotalCount: len(orders),
		Truncated:  len(orders) > reportOrdersLimit,
	}
}

// customersReport agrupa por nombre de cliente; el teléfono es el del primer pedido visto.
func customersReport(orders []entity.Order) *dto.CustomersReportDTO {
	idx := map[string]int{}
	stats := []dto.CustomerStatDTO{}
	for _, o := range orders {
		i, ok := idx[o.Customer]
		if !ok {
			i = len(stats)
			idx[o.Customer] = i
			stats = append(stats, dto.CustomerStatDTO{Name: o.Customer, Phone: o.Phone, Total: decimal.Zero})
		}
		stats[i].Orders++
		stats[i].Total = stats[i].Total.Add(o.Total)
	}
	distinct := len(stats)
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Total.GreaterThan(stats[j].Total) })
	if len(stats) > reportCustomersLimit {
		stats = stats[:reportCustomersLimit]
	}
	for i := range stats {
		stats[i].Total = stats[i].Total.Round(2)
	}
	return &dto.CustomersReportDTO{Customers: stats, DistinctCustomers: distinct}
}
