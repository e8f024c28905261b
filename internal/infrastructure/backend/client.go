// Package backend implementa los puertos hacia el API externo de facturación
// sobre net/http. El API es una caja negra: la consola solo conoce su contrato
// JSON y nunca asume nada sobre su almacenamiento.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kishanbeldas/pahana-edu/internal/domain"
	"github.com/kishanbeldas/pahana-edu/pkg/config"
)

// maxErrorBody límite de lectura del cuerpo de error (evita respuestas
// gigantes en los mensajes).
const maxErrorBody = 8 * 1024

// Client cliente base del API externo. Comparte un http.Client con timeout de
// red; cada llamada recibe además el context del handler, de modo que la
// petición saliente se aborta cuando el llamador desaparece (sin "fire and
// forget").
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente base.
func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.TimeoutDuration(),
		},
	}
}

// doJSON ejecuta una petición JSON. body nil omite el cuerpo; out nil descarta
// la respuesta. Un 404 se traduce a domain.ErrNotFound; cualquier otro 4xx/5xx
// se envuelve con un fragmento del cuerpo. No hay reintentos automáticos.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: petición cancelada: %w", ctx.Err())
		}
		return fmt.Errorf("backend: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// doRaw ejecuta un GET binario (PDF) y devuelve los bytes completos.
func (c *Client) doRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("backend: crear HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend: petición cancelada: %w", ctx.Err())
		}
		return nil, fmt.Errorf("backend: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: leer respuesta: %w", err)
	}
	return data, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%w: HTTP %d: %s", domain.ErrBackend, resp.StatusCode, strings.TrimSpace(string(snippet)))
}

// IsNotFound informa si el error corresponde a un recurso ausente en el API.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
