package entity

// Roles de usuario de la consola.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User usuario de la consola. No proviene del API externo: la tabla de usuarios
// se define por configuración y el password se guarda solo como hash bcrypt.
type User struct {
	Username     string
	PasswordHash string
	Role         string
}
