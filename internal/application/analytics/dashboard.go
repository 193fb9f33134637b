// Package analytics contiene las proyecciones de negocio: resumen del dashboard, reportes por
// período y exportaciones. Las funciones puras reciben el estado y la hora; los casos de uso
// agregan la verificación de sesión.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/application/view"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

const (
	dashboardTopProducts = 4 // tarjetas de productos destacados
	salesSeriesDays      = 7 // barras del gráfico de ventas
	descriptionExcerpt   = 80
)

// DashboardUseCase genera el resumen del día para el dashboard.
type DashboardUseCase struct {
	store *state.Store
	loc   *time.Location
	now   ports.Clock
}

// NewDashboardUseCase construye el caso de uso. loc define el día calendario (nil = UTC).
func NewDashboardUseCase(store *state.Store, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{store: store, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj.
func (uc *DashboardUseCase) WithClock(now ports.Clock) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO con el estado actual.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var out dto.DashboardSummaryDTO
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		out = Dashboard(st, uc.now().In(uc.loc))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard calcula el resumen. "Hoy" es el día calendario de now en su zona horaria.
//
//   - Ventas, cantidad y pedidos activos: solo pedidos de hoy.
//   - AvgPrepTime: round(prepTime*n/n), es decir prepTime si hay pedidos hoy, 0 si no.
//   - Top productos: ingreso qty*precio actual sobre todos los pedidos (cualquier estado).
func Dashboard(st *state.State, now time.Time) dto.DashboardSummaryDTO {
	loc := now.Location()
	total := decimal.Zero
	count, active := 0, 0
	for _, o := range st.Orders {
		if !sameDay(o.Date, now, loc) {
			continue
		}
		count++
		total = total.Add(o.Total)
		if o.Status == entity.OrderStatusPreparando {
			active++
		}
	}
	avg := 0
	if count > 0 {
		avg = int(decimal.NewFromInt(int64(st.Settings.PrepTime * count)).
			Div(decimal.NewFromInt(int64(count))).Round(0).IntPart())
	}
	return dto.DashboardSummaryDTO{
		TotalSales:         total.Round(2),
		TotalOrders:        count,
		ActiveOrders:       active,
		AvgPrepTime:        avg,
		TopProducts:        TopProducts(st.Products, st.Orders, dashboardTopProducts),
		SalesByDay:         SalesByDay(st.Orders, now, salesSeriesDays),
		StatusDistribution: StatusCounts(st.Orders),
		DateLabel:          monthLabel(now),
	}
}

// TopProducts ordena el catálogo por ingreso descendente (orden de catálogo ante empate) y
// devuelve los primeros n. Productos sin ventas también participan.
func TopProducts(catalog []entity.Product, orders []entity.Order, n int) []dto.TopProductDTO {
	revenue := productRevenue(catalog, orders)
	out := make([]dto.TopProductDTO, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, dto.TopProductDTO{
			ProductID:   p.ID.String(),
			Glyph:       entity.CategoryGlyph(p.Category),
			Name:        p.Name,
			Price:       p.Price.Round(2),
			Description: view.Excerpt(p.Description, descriptionExcerpt),
			Sales:       p.Sales,
			Revenue:     revenue[p.ID].Round(2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// SalesByDay serie de los últimos days días (más antiguo primero, hoy al final).
func SalesByDay(orders []entity.Order, now time.Time, days int) []dto.DailySalesDTO {
	loc := now.Location()
	today := startOfDay(now)
	out := make([]dto.DailySalesDTO, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		total := decimal.Zero
		for _, o := range orders {
			if sameDay(o.Date, day, loc) {
				total = total.Add(o.Total)
			}
		}
		out = append(out, dto.DailySalesDTO{Date: day, Label: weekdayLabel(day), Total: total.Round(2)})
	}
	return out
}

// StatusCounts cantidad y valor por estado, en el orden en que aparece cada estado.
func StatusCounts(orders []entity.Order) []dto.StatusCountDTO {
	idx := map[string]int{}
	out := []dto.StatusCountDTO{}
	for _, o := range orders {
		i, ok := idx[o.Status]
		if !ok {
			i = len(out)
			idx[o.Status] = i
			out = append(out, dto.StatusCountDTO{Status: o.Status, Label: view.StatusLabel(o.Status), Total: decimal.Zero})
		}
		out[i].Count++
		out[i].Total = out[i].Total.Add(o.Total)
	}
	for i := range out {
		out[i].Total = out[i].Total.Round(2)
	}
	return out
}

// productRevenue ingreso por producto con el precio actual. Referencias colgantes aportan cero.
func productRevenue(catalog []entity.Product, orders []entity.Order) map[entity.ID]decimal.Decimal {
	out := make(map[entity.ID]decimal.Decimal, len(catalog))
	for id, units := range unitsSold(catalog, orders) {
		if p := entity.FindProduct(catalog, id); p != nil {
			out[id] = p.Price.Mul(decimal.NewFromInt(int64(units)))
		}
	}
	return out
}

// unitsSold unidades pedidas por producto existente.
func unitsSold(catalog []entity.Product, orders []entity.Order) map[entity.ID]int {
	out := make(map[entity.ID]int, len(catalog))
	for _, o := range orders {
		for _, it := range o.Items {
			if it.Resolve(catalog) != nil {
				out[it.ProductID] += it.Quantity
			}
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// weekdayLabel día de la semana abreviado en pt-BR, ej: "seg.".
func weekdayLabel(t time.Time) string {
	days := [...]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."}
	return days[t.Weekday()]
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Março 2024".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
