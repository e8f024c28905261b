package dto

// CustomerRequest body para crear/actualizar clientes en el API externo.
type CustomerRequest struct {
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Telephone     string `json:"telephone"`
	Email         string `json:"email,omitempty"`
}
