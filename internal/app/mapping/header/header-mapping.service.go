package header_mapping_service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/init-pkg/vapt-ingest/domain/errs"
)

type Field string

const (
	FieldName            Field = "name"
	FieldRiskDescription Field = "risk_description"
	FieldSeverity        Field = "severity"
	FieldAffectedURLs    Field = "affected_urls"
)

type RequiredColumn struct {
	Field  Field
	Header string
}

// RequiredColumns in the order they are reported when missing.
var RequiredColumns = []RequiredColumn{
	{FieldName, "Vulnerability Name"},
	{FieldRiskDescription, "Risk Description"},
	{FieldSeverity, "Severity"},
	{FieldAffectedURLs, "Affected URLs"},
}

const MissingColumnsMessage = "Missing required columns"

// ColumnIndex is the zero-based position of every required column in a header row.
type ColumnIndex map[Field]int

func (this ColumnIndex) Cell(row []string, field Field) string {
	idx, ok := this[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (this ColumnIndex) Header(field Field) string {
	for _, c := range RequiredColumns {
		if c.Field == field {
			return c.Header
		}
	}
	return string(field)
}

type HeaderMappingService struct {
	log *slog.Logger
}

func New(log *slog.Logger) *HeaderMappingService {
	return &HeaderMappingService{log}
}

func normalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// MapRequiredColumns finds every required column in header. Matching ignores
// case, surrounding and repeated whitespace and column order; the first
// matching column wins and extra columns are ignored.
func (this *HeaderMappingService) MapRequiredColumns(header []string) (ColumnIndex, errs.Error) {
	positions := make(map[string]int, len(header))
	for idx, h := range header {
		key := normalizeHeader(h)
		if key == "" {
			continue
		}
		if _, ok := positions[key]; ok {
			continue
		}
		positions[key] = idx
	}

	var (
		index   = make(ColumnIndex, len(RequiredColumns))
		missing []string
	)
	for _, c := range RequiredColumns {
		idx, ok := positions[normalizeHeader(c.Header)]
		if !ok {
			missing = append(missing, c.Header)
			continue
		}
		index[c.Field] = idx
	}

	if len(missing) > 0 {
		this.log.Info("required columns missing", "missing", missing, "header", header)
		return nil, errs.WrapAppError(
			fmt.Errorf("missing columns: %s", strings.Join(missing, ", ")),
			&errs.ErrorOpts{
				Kind:    errs.KindSchemaMismatch,
				Message: MissingColumnsMessage,
				Details: map[string]any{"missing_columns": missing},
			},
		)
	}

	return index, nil
}
