package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse usuario de la consola en respuestas (nunca incluye el hash).
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token de sesión firmado + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
