package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectedRow  int
	}{
		{
			name:         "wrapped parse error keeps row details",
			err:          errors.Wrap(domain.NewParseError(7, domain.ColumnPrice, "abc", ""), "csv data/vendas.csv"),
			expectedCode: ErrDataParse,
			expectedRow:  7,
		},
		{
			name:         "data source error",
			err:          errors.Wrap(domain.NewDataSourceError("no such file"), "csv data/vendas.csv"),
			expectedCode: ErrDataSource,
		},
		{
			name:         "empty dataset",
			err:          domain.NewEmptyDatasetError(""),
			expectedCode: ErrEmptyDataset,
		},
		{
			name:         "unknown error",
			err:          errors.New("boom"),
			expectedCode: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Equal(t, tt.err.Error(), apiErr.Message)

			if tt.expectedRow > 0 {
				details, ok := apiErr.Details.(RowDetails)
				require.True(t, ok)
				assert.Equal(t, tt.expectedRow, details.Row)
				assert.Equal(t, domain.ColumnPrice, details.Column)
			} else {
				assert.Nil(t, apiErr.Details)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidRequest, "dias inválido", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"VAL_001","message":"dias inválido"}`, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(ErrEmptyDataset))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("UNKNOWN"))
}
