package metadomain

import (
	"fmt"
	"net/http"
)

// ErrorDetails contém os detalhes de erro da API do Meta.
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é o erro tipado propagado pelo cliente quando uma página falha.
// Status já está normalizado para a faixa 400–599.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api: %s (status %d)", e.Message, e.Status)
}

func NewAPIError(message string, status int) *APIError {
	return &APIError{
		Message: message,
		Status:  NormalizeStatus(status),
	}
}

// NormalizeStatus normaliza o status reportado junto a um erro. A API às
// vezes devolve um corpo de erro com status 200 — esse caso vira 403.
// Qualquer código fora de 400–599 vira 500.
func NormalizeStatus(status int) int {
	if status == http.StatusOK {
		return http.StatusForbidden
	}

	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}

	return status
}
