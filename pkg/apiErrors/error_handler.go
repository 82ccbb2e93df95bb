package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro devolvidos pela API
const (
	// Erros de validação
	ErrInvalidRequest   = domain.CodeInvalidArgument // Requisição inválida
	ErrInvalidFormat    = "VAL_002"                  // Formato de dados inválido
	ErrNotFound         = "VAL_003"                  // Rota inexistente
	ErrMethodNotAllowed = "VAL_004"                  // Método HTTP não aceito pela rota

	// Erros de dados de vendas
	ErrDataSource   = domain.CodeDataSource   // Fonte ausente ou ilegível
	ErrDataParse    = domain.CodeParse        // Linha com data ou preço inválido
	ErrEmptyDataset = domain.CodeEmptyDataset // Histórico sem vendas

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrJobUnavailable = "SRV_002" // Tarefa agendada não configurada
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrDataSource:       http.StatusInternalServerError,
	ErrDataParse:        http.StatusUnprocessableEntity,
	ErrEmptyDataset:     http.StatusUnprocessableEntity,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrJobUnavailable:   http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// RowDetails identifica a linha da fonte que causou o erro
type RowDetails struct {
	Row    int    `json:"row,omitempty"`
	Column string `json:"column,omitempty"`
	Value  string `json:"value,omitempty"`
}

// StatusFor devolve o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro da aplicação,
// preservando linha e valor ofensor quando existirem
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	code := domain.ErrorCode(err)
	if code == "" {
		code = ErrInternalServer
	}

	apiErr := APIError{
		Code:    code,
		Message: err.Error(),
	}

	var dataErr *domain.SalesDataError
	if errors.As(err, &dataErr) && dataErr.Row > 0 {
		apiErr.Details = RowDetails{
			Row:    dataErr.Row,
			Column: dataErr.Column,
			Value:  dataErr.Value,
		}
	}

	return apiErr
}

// WriteFromError converte err e escreve a resposta de erro
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
