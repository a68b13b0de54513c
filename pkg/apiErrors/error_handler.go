package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de autenticação e autorização
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas (usuário ou senha)
	ErrInvalidToken          = "AUTH_002" // Token ausente, malformado ou com assinatura inválida
	ErrExpiredToken          = "AUTH_003" // Token expirado
	ErrScopeMismatch         = "AUTH_004" // Token de cliente apresentado contra outro dashboard
	ErrInsufficientPrivilege = "AUTH_005" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Corpo da requisição malformado
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recursos
	ErrResourceNotFound = "RES_001" // Dashboard ou recurso não encontrado

	// Erros de importação
	ErrInvalidSourceReference = "IMP_001" // URL de planilha inválida ou ausente
	ErrSourceUnavailable      = "IMP_002" // Planilha inacessível (rede ou resposta não-2xx)

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrExpiredToken:           http.StatusUnauthorized,
	ErrScopeMismatch:          http.StatusForbidden,
	ErrInsufficientPrivilege:  http.StatusForbidden,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrResourceNotFound:       http.StatusNotFound,
	ErrInvalidSourceReference: http.StatusBadRequest,
	ErrSourceUnavailable:      http.StatusBadGateway,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado na resposta HTTP. Mensagens devem ser
// curtas e genéricas: detalhes internos nunca chegam ao chamador público.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
