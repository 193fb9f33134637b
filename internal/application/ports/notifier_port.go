package ports

import (
	"context"
	"time"
)

// Niveles de notificación visibles para el usuario.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
)

// Notification aviso transitorio (toast). Sound pide la señal audible.
type Notification struct {
	Level   string
	Message string
	Sound   bool
	At      time.Time
}

// Notifier define el puerto de salida para avisos al usuario.
// Los casos de uso publican aquí el resultado visible de cada operación; el adaptador decide
// cómo mostrarlo (feed en memoria, log, etc.).
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Recorder puerto de métricas de negocio.
type Recorder interface {
	OrderCreated()
	OrderTransitioned(from, to string)
	LoginAttempt(success bool)
}

// NopNotifier descarta los avisos.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Notification) {}

// NopRecorder descarta las métricas.
type NopRecorder struct{}

func (NopRecorder) OrderCreated()                    {}
func (NopRecorder) OrderTransitioned(string, string) {}
func (NopRecorder) LoginAttempt(bool)                {}

// Clock fuente de la hora actual (inyectable en tests).
type Clock func() time.Time
