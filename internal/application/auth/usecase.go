package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
	"github.com/kishanbeldas/pahana-edu/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de la consola contra la tabla de usuarios configurada.
// El password se verifica con bcrypt en el servidor; el token emitido va
// firmado (HS256) y se valida en cada petición.
type AuthUseCase struct {
	users  map[string]entity.User
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso a partir de las entradas
// "usuario:password:rol" de configuración. Un password en texto plano (solo
// desarrollo) se hashea con bcrypt al cargar; en memoria solo viven hashes.
func NewAuthUseCase(userEntries string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	users := make(map[string]entity.User)
	for _, raw := range strings.Split(userEntries, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("auth: entrada de usuario inválida %q (formato usuario:password:rol)", raw)
		}
		role := entity.RoleUser
		if len(parts) == 3 && parts[2] != "" {
			role = strings.ToUpper(parts[2])
		}
		if role != entity.RoleAdmin && role != entity.RoleUser {
			return nil, fmt.Errorf("auth: rol desconocido %q para el usuario %q", role, parts[0])
		}
		hash := parts[1]
		if !strings.HasPrefix(hash, "$2") {
			h, err := bcrypt.GenerateFromPassword([]byte(hash), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("auth: hashear password de %q: %w", parts[0], err)
			}
			hash = string(h)
		}
		users[parts[0]] = entity.User{
			Username:     parts[0],
			PasswordHash: hash,
			Role:         role,
		}
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("auth: no hay usuarios configurados")
	}
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}, nil
}

// Login verifica usuario/password y emite un token firmado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, ok := uc.users[in.Username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{Username: user.Username, Role: user.Role},
	}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(username string) (*dto.UserResponse, error) {
	user, ok := uc.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserResponse{Username: user.Username, Role: user.Role}, nil
}
