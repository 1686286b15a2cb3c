package metadomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsRateLimited verifica se o erro é de limite de requisições da API.
// Códigos 4, 17, 32 e 613 cobrem os limites de aplicação, usuário e conta.
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613:
		return true
	}
	return false
}

// APIError carrega o status HTTP e o corpo bruto de uma rejeição da API para
// que o chamador consiga distinguir throttling de rejeição permanente.
type APIError struct {
	StatusCode int
	Body       string
	Details    *ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("meta api error (status %d, code %d): %s", e.StatusCode, e.Details.Code, e.Details.Message)
	}
	return fmt.Sprintf("meta api error (status %d): %s", e.StatusCode, e.Body)
}

// Retryable indica se vale a pena repetir a requisição: throttling e erros de
// servidor sim; rejeições 4xx (período inválido, permissão negada) não.
func (e *APIError) Retryable() bool {
	if e.Details != nil && (&ErrorResponse{Error: *e.Details}).IsRateLimited() {
		return true
	}
	return e.StatusCode >= http.StatusInternalServerError
}

// FetchError encapsula falhas de transporte (rede, timeout); sempre retryable
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("meta api fetch error: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ErrPaginationExceeded sinaliza que o limite de páginas por chamada foi atingido
type ErrPaginationExceeded struct {
	MaxPages int
}

func (e *ErrPaginationExceeded) Error() string {
	return fmt.Sprintf("meta api pagination exceeded the limit of %d pages", e.MaxPages)
}
