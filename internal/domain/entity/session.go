package entity

import "strings"

// SessionUser identidad autenticada de la sesión activa.
type SessionUser struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// Session usuario actual (nil = sin sesión) y empresa activa.
type Session struct {
	CurrentUser    *SessionUser
	CurrentCompany string
}

// Active indica si hay un usuario autenticado.
func (s Session) Active() bool { return s.CurrentUser != nil }

// Initials arma el avatar con las iniciales del primer y último nombre.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	first := []rune(parts[0])
	out := string(first[0])
	if len(parts) > 1 {
		last := []rune(parts[len(parts)-1])
		out += string(last[0])
	}
	return strings.ToUpper(out)
}

// Temas de la interfaz.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
