package entity

import "github.com/shopspring/decimal"

// Modos de cambio de estado.
const (
	AutoStatusManual = "manual"
	AutoStatusAuto   = "auto"
)

// Settings configuración operativa (singleton por sesión).
type Settings struct {
	PrepTime    int             `json:"prepTime"` // minutos
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	AutoStatus  string          `json:"autoStatus"`
}

// DefaultSettings valores iniciales.
func DefaultSettings() Settings {
	return Settings{
		PrepTime:    15,
		DeliveryFee: decimal.NewFromInt(5),
		AutoStatus:  AutoStatusManual,
	}
}
