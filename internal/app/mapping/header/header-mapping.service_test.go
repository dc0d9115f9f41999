package header_mapping_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/init-pkg/vapt-ingest/domain/errs"
	"github.com/init-pkg/vapt-ingest/internal/testutil"
)

func TestMapRequiredColumns(t *testing.T) {
	s := New(testutil.Logger())

	tests := []struct {
		name   string
		header []string
		want   ColumnIndex
	}{
		{
			name:   "canonical order",
			header: []string{"Vulnerability Name", "Risk Description", "Severity", "Affected URLs"},
			want:   ColumnIndex{FieldName: 0, FieldRiskDescription: 1, FieldSeverity: 2, FieldAffectedURLs: 3},
		},
		{
			name:   "shuffled, mixed case, extra columns",
			header: []string{"ID", "SEVERITY", "affected urls", "CVSS", "vulnerability  name", " Risk Description "},
			want:   ColumnIndex{FieldName: 4, FieldRiskDescription: 5, FieldSeverity: 1, FieldAffectedURLs: 2},
		},
		{
			name:   "first duplicate wins",
			header: []string{"Severity", "Vulnerability Name", "Risk Description", "Severity", "Affected URLs"},
			want:   ColumnIndex{FieldName: 1, FieldRiskDescription: 2, FieldSeverity: 0, FieldAffectedURLs: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.MapRequiredColumns(tt.header)
			require.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapRequiredColumnsMissing(t *testing.T) {
	s := New(testutil.Logger())

	for _, drop := range RequiredColumns {
		t.Run(drop.Header, func(t *testing.T) {
			var header []string
			for _, c := range RequiredColumns {
				if c.Field != drop.Field {
					header = append(header, c.Header)
				}
			}

			_, err := s.MapRequiredColumns(header)
			require.NotNil(t, err)
			assert.Equal(t, errs.KindSchemaMismatch, err.Kind())
			assert.Equal(t, "Missing required columns", err.Error())
			assert.Equal(t, []string{drop.Header}, err.Details()["missing_columns"])
		})
	}

	t.Run("empty header", func(t *testing.T) {
		_, err := s.MapRequiredColumns(nil)
		require.NotNil(t, err)
		assert.Len(t, err.Details()["missing_columns"], 4)
	})
}

func TestColumnIndexCell(t *testing.T) {
	idx := ColumnIndex{FieldName: 0, FieldSeverity: 5}
	row := []string{"XSS", "desc"}

	assert.Equal(t, "XSS", idx.Cell(row, FieldName))
	assert.Equal(t, "", idx.Cell(row, FieldSeverity))
	assert.Equal(t, "", idx.Cell(row, FieldAffectedURLs))
	assert.Equal(t, "Affected URLs", idx.Header(FieldAffectedURLs))
}
