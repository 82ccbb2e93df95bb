package utils

import (
	"fmt"
	"strings"
	"time"
)

// BrazilianDateLayout é o formato dd/mm/aaaa usado nas respostas
const BrazilianDateLayout = "02/01/2006"

// DateLayouts são os formatos aceitos para datas vindas das fontes de dados.
// Formatos com barra são sempre interpretados como dia/mês/ano.
var DateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	BrazilianDateLayout,
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
}

// ParseDate interpreta uma data em qualquer um dos DateLayouts,
// descartando o horário
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range DateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("data em formato não reconhecido: %q", dateStr)
}

// FormatBrazilianDate formata a data como dd/mm/aaaa
func FormatBrazilianDate(t time.Time) string {
	return t.Format(BrazilianDateLayout)
}
