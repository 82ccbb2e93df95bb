package domain

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de dados de vendas
var (
	// Fonte ausente, ilegível ou sem as colunas obrigatórias
	ErrDataSource = errors.New("data source error")
	// Linha com data ou preço que não pode ser normalizado
	ErrParse = errors.New("parse error")
	// Agregação que exige ao menos uma linha
	ErrEmptyDataset = errors.New("empty dataset")
	// Parâmetro de operação fora do domínio aceito
	ErrInvalidArgument = errors.New("invalid argument")
)

// Códigos dos erros de dados, usados pela camada HTTP
const (
	CodeDataSource      = "DATA_001"
	CodeParse           = "DATA_002"
	CodeEmptyDataset    = "DATA_003"
	CodeInvalidArgument = "VAL_001"
)

// SalesDataError é um erro com contexto adicional sobre a linha ofensora
type SalesDataError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Row     int    // Linha da fonte (1 = primeira linha de dados), 0 quando não se aplica
	Column  string // Coluna envolvida (quando aplicável)
	Value   string // Valor que não pôde ser normalizado
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SalesDataError) Error() string {
	msg := e.Err.Error()
	if e.Row > 0 {
		msg = fmt.Sprintf("%s: row %d", msg, e.Row)
	}
	if e.Column != "" {
		msg = fmt.Sprintf("%s: column %q", msg, e.Column)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s: value %q", msg, e.Value)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *SalesDataError) Unwrap() error {
	return e.Err
}

// NewDataSourceError cria um erro de fonte de dados
func NewDataSourceError(details string) *SalesDataError {
	return &SalesDataError{
		Err:     ErrDataSource,
		Code:    CodeDataSource,
		Details: details,
	}
}

// NewParseError cria um erro de normalização com a linha e o valor ofensor
func NewParseError(row int, column string, value string, details string) *SalesDataError {
	return &SalesDataError{
		Err:     ErrParse,
		Code:    CodeParse,
		Row:     row,
		Column:  column,
		Value:   value,
		Details: details,
	}
}

// NewEmptyDatasetError cria um erro de agregação sobre tabela vazia
func NewEmptyDatasetError(details string) *SalesDataError {
	return &SalesDataError{
		Err:     ErrEmptyDataset,
		Code:    CodeEmptyDataset,
		Details: details,
	}
}

// NewInvalidArgumentError cria um erro de parâmetro inválido
func NewInvalidArgumentError(details string) *SalesDataError {
	return &SalesDataError{
		Err:     ErrInvalidArgument,
		Code:    CodeInvalidArgument,
		Details: details,
	}
}

// ErrorCode extrai o código de API de qualquer erro da cadeia
func ErrorCode(err error) string {
	var dataErr *SalesDataError
	if errors.As(err, &dataErr) {
		return dataErr.Code
	}

	switch {
	case errors.Is(err, ErrDataSource):
		return CodeDataSource
	case errors.Is(err, ErrParse):
		return CodeParse
	case errors.Is(err, ErrEmptyDataset):
		return CodeEmptyDataset
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	}

	return ""
}
