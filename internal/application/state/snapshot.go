package state

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// snapshot formato persistido bajo la clave "lunchcontrol-data".
type snapshot struct {
	CurrentUser    *entity.SessionUser       `json:"currentUser"`
	CurrentCompany string                    `json:"currentCompany"`
	Products       []entity.Product          `json:"products"`
	Orders         []entity.Order            `json:"orders"`
	Users          []entity.User             `json:"users"`
	Settings       *entity.Settings          `json:"settings"`
	Companies      map[string]entity.Company `json:"companies,omitempty"`
}

// orderMarkers distingue un inventoryApplied ausente de uno en false.
type orderMarkers struct {
	Orders []struct {
		InventoryApplied *bool `json:"inventoryApplied"`
	} `json:"orders"`
}

// Encode serializa el estado completo y, por separado, la identidad de sesión.
func Encode(s *State) (data, user []byte, err error) {
	settings := s.Settings
	data, err = json.Marshal(snapshot{
		CurrentUser:    s.Session.CurrentUser,
		CurrentCompany: s.Session.CurrentCompany,
		Products:       s.Products,
		Orders:         s.Orders,
		Users:          s.Users,
		Settings:       &settings,
		Companies:      s.Companies,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encode snapshot: %w", err)
	}
	user, err = json.Marshal(s.Session.CurrentUser)
	if err != nil {
		return nil, nil, fmt.Errorf("encode session user: %w", err)
	}
	return data, user, nil
}

// Decode reconstruye el estado. data y user son opcionales (nil = clave ausente).
// Si user está presente reemplaza al usuario embebido en data, incluso si es "null".
// Los permisos se recalculan desde el rol; la configuración parcial se mezcla con los valores por defecto.
// Un pedido entregue sin marca de inventario se considera ya contado.
func Decode(data, user []byte) (*State, error) {
	st := New()
	if data != nil {
		settings := entity.DefaultSettings()
		snap := snapshot{Settings: &settings}
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		st.Session.CurrentUser = snap.CurrentUser
		if snap.CurrentCompany != "" {
			st.Session.CurrentCompany = snap.CurrentCompany
		}
		if snap.Products != nil {
			st.Products = snap.Products
		}
		if snap.Orders != nil {
			st.Orders = snap.Orders
			if err := markDelivered(data, st.Orders); err != nil {
				return nil, err
			}
		}
		if snap.Users != nil {
			st.Users = snap.Users
		}
		if snap.Settings != nil {
			st.Settings = *snap.Settings
		}
		if len(snap.Companies) > 0 {
			st.Companies = snap.Companies
		}
	}
	if user != nil {
		var u *entity.SessionUser
		if err := json.Unmarshal(user, &u); err != nil {
			return nil, fmt.Errorf("decode session user: %w", err)
		}
		st.Session.CurrentUser = u
	}
	for i := range st.Users {
		st.Users[i].Permissions = entity.PermissionsFor(st.Users[i].Role)
		hash, err := ensureHashed(st.Users[i].PasswordHash)
		if err != nil {
			return nil, err
		}
		st.Users[i].PasswordHash = hash
	}
	for i := range st.Orders {
		if st.Orders[i].Items == nil {
			st.Orders[i].Items = []entity.OrderItem{}
		}
	}
	return st, nil
}

// markDelivered completa InventoryApplied en pedidos que no traen la marca:
// un pedido ya entregado cuenta como aplicado.
func markDelivered(data []byte, orders []entity.Order) error {
	var m orderMarkers
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode order markers: %w", err)
	}
	for i := range orders {
		if i < len(m.Orders) && m.Orders[i].InventoryApplied != nil {
			continue
		}
		orders[i].InventoryApplied = orders[i].Status == entity.OrderStatusEntregue
	}
	return nil
}

// ensureHashed re-hashea passwords guardados en claro por versiones anteriores.
func ensureHashed(password string) (string, error) {
	if password == "" || strings.HasPrefix(password, "$2") {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash legacy password: %w", err)
	}
	return string(hash), nil
}
