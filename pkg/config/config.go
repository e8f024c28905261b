package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Backend BackendConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// BackendConfig configuración del API externo de facturación (clientes, artículos, facturas).
// La consola no persiste nada: todo CRUD se delega a este servicio.
type BackendConfig struct {
	BaseURL string // ej. http://localhost:8080/api
	Timeout int    // segundos por petición saliente
}

// TimeoutDuration devuelve el timeout de red como time.Duration.
func (c BackendConfig) TimeoutDuration() time.Duration {
	if c.Timeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// AuthConfig usuarios de la consola.
// Users es una lista separada por comas de entradas "usuario:password:rol".
// El password puede ser un hash bcrypt ($2a$...) o texto plano (solo desarrollo;
// se hashea al cargar). Roles: ADMIN | USER.
type AuthConfig struct {
	Users string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET,
// BACKEND_BASE_URL, AUTH_USERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pahana-edu-console"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 24*60),
			Issuer:     getString(v, "JWT_ISSUER", "pahana-edu-console"),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_BASE_URL", "http://localhost:8080/api"),
			Timeout: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Auth: AuthConfig{
			// Credenciales demo; reemplazar por hashes bcrypt en producción.
			Users: getString(v, "AUTH_USERS", "admin:admin123:ADMIN,user:user123:USER,demo:demo123:USER"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
