package dto

// SaveUserRequest entrada para crear o editar un usuario (password en texto, se hashea en el caso de uso).
type SaveUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Role            string `json:"role"`
	Status          string `json:"status"`
}

// UserRow fila del listado de usuarios (sin password).
type UserRow struct {
	ID              string   `json:"id"`
	Glyph           string   `json:"glyph"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	RoleLabel       string   `json:"role_label"`
	Permissions     []string `json:"permissions"`
	PermissionsText string   `json:"permissions_text"`
	Status          string   `json:"status"`
	StatusLabel     string   `json:"status_label"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserRow `json:"items"`
	Total int       `json:"total"`
}

// LoginRequest credenciales más la empresa elegida en el selector.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

// SessionUserResponse identidad de la sesión.
type SessionUserResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Avatar      string   `json:"avatar"`
	Permissions []string `json:"permissions"`
}

// SessionResponse sesión activa: usuario y empresa.
type SessionResponse struct {
	User    SessionUserResponse `json:"user"`
	Company CompanyResponse     `json:"company"`
}

// LoginResponse token JWT más la sesión.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}
