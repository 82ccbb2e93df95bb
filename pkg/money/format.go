// Package money formata valores monetários em reais para as respostas da API.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol é o prefixo usado em todos os valores formatados
const CurrencySymbol = "R$"

// Formatter formata valores com agrupamento de milhar e duas casas decimais
// segundo a localidade configurada. O valor nunca passa por float64.
type Formatter struct {
	locale     language.Tag
	groupSep   string
	decimalSep string
}

// NewFormatter cria um Formatter para a localidade (ex.: "pt-BR", "en-US")
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("localidade inválida %q: %w", locale, err)
	}

	groupSep, decimalSep := separators(message.NewPrinter(tag))

	return &Formatter{
		locale:     tag,
		groupSep:   groupSep,
		decimalSep: decimalSep,
	}, nil
}

// separators extrai os separadores de milhar e decimal da localidade a
// partir de um valor de amostra (1234,50 -> "1.234,50" em pt-BR)
func separators(printer *message.Printer) (group string, dec string) {
	sample := []rune(printer.Sprintf("%.2f", 1234.5))

	// sempre termina em <decimal>50
	if len(sample) < 4 {
		return "", "."
	}
	dec = string(sample[len(sample)-3])

	// "1" + grupo + "234" + decimal + "50"
	if len(sample) == 8 {
		group = string(sample[1])
	}

	return group, dec
}

// Format devolve o valor como texto, ex.: "R$ 1.234,56" em pt-BR
func (f *Formatter) Format(value decimal.Decimal) string {
	fixed := value.StringFixedBank(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	integer, fraction, _ := strings.Cut(fixed, ".")

	return CurrencySymbol + " " + sign + groupDigits(integer, f.groupSep) + f.decimalSep + fraction
}

// groupDigits insere sep a cada três dígitos, da direita para a esquerda
func groupDigits(digits string, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// Locale retorna a localidade em uso
func (f *Formatter) Locale() string {
	return f.locale.String()
}
