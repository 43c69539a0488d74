package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser usuario autenticado tal como se expone en /api/auth/me.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"` // admin, empleado, cliente
}

// LoginResponse token emitido + usuario. El token también viaja en la cookie
// HTTP-only; se devuelve en el cuerpo para clientes API sin cookies.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
