// Package notify implementa el puerto Notifier: guarda los últimos avisos en memoria para
// que el cliente los consulte y deja cada uno en el log.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/pkg/logger"
)

// DefaultCapacity avisos retenidos por defecto.
const DefaultCapacity = 50

var _ ports.Notifier = (*Feed)(nil)

// Feed buffer circular de notificaciones, seguro para uso concurrente.
type Feed struct {
	mu    sync.Mutex
	items []ports.Notification
	next  int
	full  bool
	log   *logger.Logger
}

// NewFeed crea el feed con la capacidad indicada (<= 0 usa DefaultCapacity). log puede ser nil.
func NewFeed(capacity int, log *logger.Logger) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Feed{items: make([]ports.Notification, capacity), log: log}
}

// Notify agrega el aviso (pisa el más viejo si está lleno) y lo registra en el log.
func (f *Feed) Notify(_ context.Context, n ports.Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}

	f.mu.Lock()
	f.items[f.next] = n
	f.next = (f.next + 1) % len(f.items)
	if f.next == 0 {
		f.full = true
	}
	f.mu.Unlock()

	ev := f.log.Info()
	switch n.Level {
	case ports.LevelError:
		ev = f.log.Error()
	case ports.LevelWarning:
		ev = f.log.Warn()
	}
	ev.Str("level_ui", n.Level).Bool("sound", n.Sound).Msg(n.Message)
}

// Recent devuelve hasta limit avisos, el más reciente primero. limit <= 0 devuelve todos.
func (f *Feed) Recent(limit int) []ports.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	size := f.next
	if f.full {
		size = len(f.items)
	}
	if limit <= 0 || limit > size {
		limit = size
	}
	out := make([]ports.Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + len(f.items)) % len(f.items)
		out = append(out, f.items[idx])
	}
	return out
}
