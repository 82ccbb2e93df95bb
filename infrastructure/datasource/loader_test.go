package datasource

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sales-api/internal/config"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.csv")

	tests := []struct {
		name      string
		dataset   config.Dataset
		expected  any
		expectErr error
	}{
		{
			name:     "csv with comma",
			dataset:  config.Dataset{Source: config.SourceCSV, Path: path, Delimiter: ","},
			expected: &CSVSource{},
		},
		{
			name:     "csv with multi-byte delimiter",
			dataset:  config.Dataset{Source: config.SourceCSV, Path: path, Delimiter: "¦"},
			expected: &CSVSource{},
		},
		{
			name:     "xlsx",
			dataset:  config.Dataset{Source: config.SourceXLSX, Path: path},
			expected: &XLSXSource{},
		},
		{
			name:      "csv with empty delimiter",
			dataset:   config.Dataset{Source: config.SourceCSV, Path: path, Delimiter: ""},
			expectErr: domain.ErrDataSource,
		},
		{
			name:      "csv with two-character delimiter",
			dataset:   config.Dataset{Source: config.SourceCSV, Path: path, Delimiter: ";;"},
			expectErr: domain.ErrDataSource,
		},
		{
			name:      "csv with invalid utf-8 delimiter",
			dataset:   config.Dataset{Source: config.SourceCSV, Path: path, Delimiter: "\xff"},
			expectErr: domain.ErrDataSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var source Source
			var err error

			require.NotPanics(t, func() {
				source, err = New(context.Background(), &config.Config{Dataset: tt.dataset})
			})

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, source)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.expected, source)
		})
	}

	t.Run("unknown source", func(t *testing.T) {
		_, err := New(context.Background(), &config.Config{Dataset: config.Dataset{Source: "mongo"}})
		assert.Error(t, err)
	})
}
