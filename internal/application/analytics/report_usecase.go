package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
)

// ReportUseCase reportes por período y exportaciones en los formatos registrados.
type ReportUseCase struct {
	store     *state.Store
	loc       *time.Location
	now       ports.Clock
	notifier  ports.Notifier
	renderers map[string]ports.TableRenderer
}

// NewReportUseCase construye el caso de uso con CSV registrado. loc nil = UTC.
func NewReportUseCase(store *state.Store, loc *time.Location, n ports.Notifier) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if n == nil {
		n = ports.NopNotifier{}
	}
	uc := &ReportUseCase{store: store, loc: loc, now: time.Now, notifier: n, renderers: map[string]ports.TableRenderer{}}
	uc.Register(CSVRenderer{})
	return uc
}

// Register agrega (o reemplaza) un formato de exportación por su extensión.
func (uc *ReportUseCase) Register(r ports.TableRenderer) *ReportUseCase {
	uc.renderers[r.Extension()] = r
	return uc
}

// WithClock reemplaza el reloj.
func (uc *ReportUseCase) WithClock(now ports.Clock) *ReportUseCase {
	uc.now = now
	return uc
}

// Report arma el reporte del tipo y período indicados.
func (uc *ReportUseCase) Report(ctx context.Context, typ, period string) (*dto.ReportDTO, error) {
	var out *dto.ReportDTO
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		r, err := BuildReport(st, typ, period, uc.now().In(uc.loc))
		out = r
		return err
	})
	return out, err
}

// Export serializa el reporte en el formato pedido (csv, pdf, xml...).
func (uc *ReportUseCase) Export(ctx context.Context, typ, period, format string) (*ExportFile, error) {
	r, ok := uc.renderers[strings.ToLower(format)]
	if !ok {
		return nil, domain.NewValidationError("format", "Formato de exportação inválido!")
	}
	var out *ExportFile
	err := uc.store.View(func(st *state.State) error {
		if _, err := st.RequireSession(); err != nil {
			return err
		}
		f, err := Export(st, typ, period, uc.now().In(uc.loc), r)
		out = f
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, ports.Notification{
		Level:   ports.LevelSuccess,
		Message: "Relatório exportado como " + strings.ToUpper(r.Extension()) + "!",
		At:      uc.now(),
	})
	return out, nil
}
