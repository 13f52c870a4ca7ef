// Package apierror define o envelope padrão de erro das respostas HTTP.
// Todos os erros devolvidos a clientes passam por aqui, garantindo
// consistência e evitando vazar detalhes internos (stack traces, caminhos
// de arquivo do gateway, etc.).
package apierror

// APIError é o envelope canônico de toda resposta 4xx/5xx.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError agrega erros por campo da validação de payload.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
