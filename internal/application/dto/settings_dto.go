package dto

import "github.com/shopspring/decimal"

// SaveSettingsRequest formulario de configuración del sistema.
type SaveSettingsRequest struct {
	PrepTime    FormValue `json:"prep_time"`
	DeliveryFee FormValue `json:"delivery_fee"`
	AutoStatus  string    `json:"auto_status"`
}

// SettingsResponse configuración vigente.
type SettingsResponse struct {
	PrepTime    int             `json:"prep_time"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	AutoStatus  string          `json:"auto_status"`
}

// ThemeRequest cambio de tema.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse tema vigente.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// NotificationResponse aviso transitorio para el usuario.
type NotificationResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Sound   bool   `json:"sound"`
	At      string `json:"at"`
}

// NotificationListResponse avisos recientes, más reciente primero.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
}
