package entity

import "sort"

// Roles válidos para User.
const (
	RoleAtendente     = "atendente"
	RoleGerente       = "gerente"
	RoleAdministrador = "administrador"
)

// Estados de un usuario.
const (
	UserStatusAtivo   = "ativo"
	UserStatusInativo = "inativo"
)

// Permisos derivados del rol.
const (
	PermissionOrders   = "orders"
	PermissionProducts = "products"
	PermissionReports  = "reports"
	PermissionAll      = "all"
)

var rolePermissions = map[string][]string{
	RoleAtendente:     {PermissionOrders},
	RoleGerente:       {PermissionProducts, PermissionOrders, PermissionReports},
	RoleAdministrador: {PermissionAll},
}

// PermissionsFor devuelve una copia nueva de los permisos del rol. Rol desconocido => vacío.
func PermissionsFor(role string) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission indica si el rol concede el permiso. "all" concede cualquiera.
func HasPermission(role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == PermissionAll || p == permission {
			return true
		}
	}
	return false
}

// Roles lista los roles conocidos en orden estable.
func Roles() []string {
	out := make([]string, 0, len(rolePermissions))
	for r := range rolePermissions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// User usuario gestionado. Permissions siempre es PermissionsFor(Role).
type User struct {
	ID           ID       `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password,omitempty"` // bcrypt, nunca se muestra
	Role         string   `json:"role"`
	Status       string   `json:"status"`
	Permissions  []string `json:"permissions"`
}

// FindUser devuelve el índice del usuario o -1.
func FindUser(users []User, id ID) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
