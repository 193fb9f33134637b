package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/lunchcontrol-api/internal/domain/repository"
)

// Observer recibe la duración y el resultado de cada persistencia (métricas).
type Observer interface {
	ObservePersist(d time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObservePersist(time.Duration, error) {}

// Store dueño único del State. Serializa todas las operaciones (un solo escritor).
type Store struct {
	mu       sync.RWMutex
	kv       repository.KeyValueStore
	st       *State
	observer Observer
}

// NewStore construye el Store con estado vacío. Llamar Load para leer lo persistido.
func NewStore(kv repository.KeyValueStore) *Store {
	return &Store{kv: kv, st: New(), observer: nopObserver{}}
}

// SetObserver registra el observador de persistencia.
func (s *Store) SetObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o == nil {
		o = nopObserver{}
	}
	s.observer = o
}

// KV expone el almacén subyacente (preferencias que viven fuera del snapshot).
func (s *Store) KV() repository.KeyValueStore { return s.kv }

// Load lee "lunchcontrol-data" y "lunchcontrol-user" y reemplaza el estado en memoria.
func (s *Store) Load(ctx context.Context) error {
	data, okData, err := s.kv.Get(ctx, repository.KeyData)
	if err != nil {
		return fmt.Errorf("load %s: %w", repository.KeyData, err)
	}
	user, okUser, err := s.kv.Get(ctx, repository.KeyUser)
	if err != nil {
		return fmt.Errorf("load %s: %w", repository.KeyUser, err)
	}
	var dataBytes, userBytes []byte
	if okData {
		dataBytes = []byte(data)
	}
	if okUser {
		userBytes = []byte(user)
	}
	st, err := Decode(dataBytes, userBytes)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.st = st
	s.mu.Unlock()
	return nil
}

// Run ejecuta fn sobre una copia del estado. Si fn devuelve error, o la persistencia falla,
// el estado publicado no cambia. Si todo sale bien persiste y publica la copia.
func (s *Store) Run(ctx context.Context, fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.st.Clone()
	if err := fn(work); err != nil {
		return err
	}
	if err := s.persist(ctx, work); err != nil {
		return err
	}
	s.st = work
	return nil
}

// View ejecuta fn con el estado actual en modo lectura. fn no debe modificarlo.
func (s *Store) View(fn func(st *State) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// RequireSession falla con domain.ErrForbidden si no hay sesión activa.
func (s *Store) RequireSession() error {
	return s.View(func(st *State) error {
		_, err := st.RequireSession()
		return err
	})
}

// Persist guarda el estado actual (autoguardado).
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, s.st)
}

// Logout limpia la sesión, persiste el snapshot y elimina la clave de usuario.
func (s *Store) Logout(ctx context.Context) error {
	return s.Run(ctx, func(st *State) error {
		st.Session.CurrentUser = nil
		return nil
	})
}

func (s *Store) persist(ctx context.Context, st *State) (err error) {
	start := time.Now()
	defer func() { s.observer.ObservePersist(time.Since(start), err) }()

	data, user, err := Encode(st)
	if err != nil {
		return err
	}
	set := map[string]string{repository.KeyData: string(data)}
	var remove []string
	if st.Session.CurrentUser == nil {
		remove = []string{repository.KeyUser}
	} else {
		set[repository.KeyUser] = string(user)
	}
	if b, ok := s.kv.(repository.KeyValueBatcher); ok {
		if err = b.WriteBatch(ctx, set, remove); err != nil {
			return fmt.Errorf("persist snapshot: %w", err)
		}
		return nil
	}
	for _, key := range []string{repository.KeyData, repository.KeyUser} {
		v, ok := set[key]
		if !ok {
			continue
		}
		if err = s.kv.Set(ctx, key, v); err != nil {
			return fmt.Errorf("persist %s: %w", key, err)
		}
	}
	for _, key := range remove {
		if err = s.kv.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
