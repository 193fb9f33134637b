// Package state contiene el estado de dominio en memoria (empresas, catálogo, pedidos, usuarios,
// configuración y sesión) y el Store que lo muta de forma transaccional y lo persiste.
package state

import (
	"github.com/jhoicas/lunchcontrol-api/internal/domain"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// State representación en memoria de todo el dominio. Se inyecta en los casos de uso vía Store.
type State struct {
	Session   entity.Session
	Companies map[string]entity.Company
	Products  []entity.Product
	Orders    []entity.Order // más reciente primero
	Users     []entity.User
	Settings  entity.Settings
}

// New estado vacío con empresas y configuración por defecto.
func New() *State {
	return &State{
		Session:   entity.Session{CurrentCompany: entity.DefaultCompanyKey},
		Companies: entity.DefaultCompanies(),
		Products:  []entity.Product{},
		Orders:    []entity.Order{},
		Users:     []entity.User{},
		Settings:  entity.DefaultSettings(),
	}
}

// RequireSession devuelve el usuario de la sesión o domain.ErrForbidden si no hay sesión.
func (s *State) RequireSession() (*entity.SessionUser, error) {
	if s.Session.CurrentUser == nil {
		return nil, domain.ErrForbidden
	}
	return s.Session.CurrentUser, nil
}

// CurrentCompany empresa activa; si la clave no existe devuelve una empresa con solo la clave.
func (s *State) CurrentCompany() entity.Company {
	if c, ok := s.Companies[s.Session.CurrentCompany]; ok {
		return c
	}
	return entity.Company{Key: s.Session.CurrentCompany, Name: s.Session.CurrentCompany}
}

// Clone copia profunda; el Store muta siempre una copia y la publica solo si todo salió bien.
func (s *State) Clone() *State {
	out := &State{
		Session:   entity.Session{CurrentCompany: s.Session.CurrentCompany},
		Companies: make(map[string]entity.Company, len(s.Companies)),
		Products:  append([]entity.Product{}, s.Products...),
		Orders:    make([]entity.Order, len(s.Orders)),
		Users:     make([]entity.User, len(s.Users)),
		Settings:  s.Settings,
	}
	if s.Session.CurrentUser != nil {
		u := *s.Session.CurrentUser
		out.Session.CurrentUser = &u
	}
	for k, v := range s.Companies {
		out.Companies[k] = v
	}
	for i, o := range s.Orders {
		o.Items = append([]entity.OrderItem{}, o.Items...)
		if o.UpdatedAt != nil {
			t := *o.UpdatedAt
			o.UpdatedAt = &t
		}
		out.Orders[i] = o
	}
	for i, u := range s.Users {
		u.Permissions = append([]string{}, u.Permissions...)
		out.Users[i] = u
	}
	return out
}
