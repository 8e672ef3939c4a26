package dto

// ErrorResponse cuerpo de error HTTP. Error es el mensaje legible; Code es opcional y estable para clientes.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
