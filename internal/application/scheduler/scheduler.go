// Package scheduler ejecuta las tareas periódicas del servicio: autoguardado del estado y el
// aviso simulado de pedido entrante. Ambas se detienen al cancelar el contexto.
package scheduler

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/pkg/logger"
)

// IncomingOrderMessage aviso del pedido simulado.
const IncomingOrderMessage = "Novo pedido recebido! #127"

// Config intervalos de las tareas. Un intervalo <= 0 desactiva la tarea.
type Config struct {
	AutosaveInterval    time.Duration
	OrderSimEnabled     bool
	OrderSimInterval    time.Duration
	OrderSimProbability float64
}

// DefaultConfig 30s de autoguardado; simulación 10% por minuto.
func DefaultConfig() Config {
	return Config{
		AutosaveInterval:    30 * time.Second,
		OrderSimEnabled:     true,
		OrderSimInterval:    time.Minute,
		OrderSimProbability: 0.1,
	}
}

// Scheduler dueño de las goroutines periódicas.
type Scheduler struct {
	store    *state.Store
	notifier ports.Notifier
	log      *logger.Logger
	cfg      Config
	random   func() float64
	now      ports.Clock
}

// New construye el scheduler. notifier y log pueden ser nil.
func New(store *state.Store, notifier ports.Notifier, log *logger.Logger, cfg Config) *Scheduler {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{store: store, notifier: notifier, log: log, cfg: cfg, random: rand.Float64, now: time.Now}
}

// WithRand reemplaza la fuente de aleatoriedad (valores en [0,1)).
func (s *Scheduler) WithRand(f func() float64) *Scheduler {
	s.random = f
	return s
}

// Run arranca las tareas y bloquea hasta que ctx se cancela y todas terminaron.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	if s.cfg.AutosaveInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.every(ctx, "autosave", s.cfg.AutosaveInterval, func() {
				if _, err := s.Autosave(ctx); err != nil {
					s.log.Error().Err(err).Str("task", "autosave").Msg("autoguardado fallido")
				}
			})
		}()
	}
	if s.cfg.OrderSimEnabled && s.cfg.OrderSimInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.every(ctx, "order-sim", s.cfg.OrderSimInterval, func() { s.SimulateIncomingOrder(ctx) })
		}()
	}
	s.log.Info().Dur("autosave", s.cfg.AutosaveInterval).Bool("order_sim", s.cfg.OrderSimEnabled).Msg("scheduler iniciado")
	wg.Wait()
	s.log.Info().Msg("scheduler detenido")
}

// Autosave persiste el estado si hay sesión activa. Devuelve si persistió.
func (s *Scheduler) Autosave(ctx context.Context) (bool, error) {
	if !s.sessionActive() {
		return false, nil
	}
	if err := s.store.Persist(ctx); err != nil {
		return false, err
	}
	s.log.Debug().Str("task", "autosave").Msg("estado persistido")
	return true, nil
}

// SimulateIncomingOrder con la probabilidad configurada publica el aviso de pedido entrante
// (con señal audible). Solo con sesión activa. Devuelve si avisó.
func (s *Scheduler) SimulateIncomingOrder(ctx context.Context) bool {
	if !s.sessionActive() || s.random() >= s.cfg.OrderSimProbability {
		return false
	}
	s.notifier.Notify(ctx, ports.Notification{Level: ports.LevelWarning, Message: IncomingOrderMessage, Sound: true, At: s.now()})
	return true
}

func (s *Scheduler) sessionActive() bool {
	active := false
	_ = s.store.View(func(st *state.State) error {
		active = st.Session.Active()
		return nil
	})
	return active
}

func (s *Scheduler) every(ctx context.Context, name string, interval time.Duration, task func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dispatch(name, task)
		}
	}
}

func (s *Scheduler) dispatch(name string, task func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("task", name).Interface("panic", r).Msg("tarea con panic")
		}
	}()
	task()
}
