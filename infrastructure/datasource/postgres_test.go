package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSource_Query(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		expected string
	}{
		{
			name:  "plain table",
			table: "vendas_farmacia",
			expected: `SELECT COALESCE("data_venda"::text, ''), COALESCE("preco"::text, ''), ` +
				`COALESCE("nome_produto"::text, ''), COALESCE("nome_vendedor"::text, ''), ` +
				`COALESCE("unidade"::text, '') FROM "vendas_farmacia"`,
		},
		{
			name:  "schema qualified table",
			table: "relatorios.vendas",
			expected: `SELECT COALESCE("data_venda"::text, ''), COALESCE("preco"::text, ''), ` +
				`COALESCE("nome_produto"::text, ''), COALESCE("nome_vendedor"::text, ''), ` +
				`COALESCE("unidade"::text, '') FROM "relatorios"."vendas"`,
		},
		{
			name:  "injection attempt stays inside the identifier",
			table: `vendas"; DROP TABLE vendas; --`,
			expected: `SELECT COALESCE("data_venda"::text, ''), COALESCE("preco"::text, ''), ` +
				`COALESCE("nome_produto"::text, ''), COALESCE("nome_vendedor"::text, ''), ` +
				`COALESCE("unidade"::text, '') FROM "vendas""; DROP TABLE vendas; --"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := NewPostgresSource(nil, tt.table).query()
			require.NoError(t, err)

			assert.Equal(t, tt.expected, query)
			assert.Empty(t, args)
		})
	}
}
