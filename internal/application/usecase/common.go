package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
)

// notifier envía avisos con la hora del reloj del caso de uso.
type notifier struct {
	out ports.Notifier
	now ports.Clock
}

func newNotifier(out ports.Notifier) notifier {
	if out == nil {
		out = ports.NopNotifier{}
	}
	return notifier{out: out, now: time.Now}
}

func (n notifier) success(ctx context.Context, msg string) {
	n.out.Notify(ctx, ports.Notification{Level: ports.LevelSuccess, Message: msg, At: n.now()})
}

// fail publica el aviso visible de un error de negocio y lo devuelve sin cambios.
func (n notifier) fail(ctx context.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		n.out.Notify(ctx, ports.Notification{Level: ports.LevelWarning, Message: ve.Message, At: n.now()})
	case errors.Is(err, domain.ErrInsufficientStock):
		n.out.Notify(ctx, ports.Notification{Level: ports.LevelError, Message: "Estoque insuficiente para entregar o pedido!", At: n.now()})
	}
	return err
}

// parseMoney interpreta un valor monetario no negativo. Acepta coma como separador decimal.
func parseMoney(field, msg string, v dto.FormValue) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(string(v)), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, domain.NewValidationError(field, msg)
	}
	return d, nil
}

// parseCount interpreta un entero no negativo.
func parseCount(field, msg string, v dto.FormValue) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(string(v)))
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(field, msg)
	}
	return n, nil
}

func required(field, msg, v string) error {
	if strings.TrimSpace(v) == "" {
		return domain.NewValidationError(field, msg)
	}
	return nil
}
