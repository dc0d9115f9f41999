package report_ingestion_service

import (
	"fmt"
	"unicode/utf8"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/entities"
	header_mapping_service "github.com/init-pkg/vapt-ingest/internal/app/mapping/header"
)

var lengthLimits = []struct {
	field header_mapping_service.Field
	max   int
}{
	{header_mapping_service.FieldName, entities.MaxNameLength},
	{header_mapping_service.FieldSeverity, entities.MaxSeverityLength},
}

type RowError struct {
	Row    int
	Column string
	Reason string
}

func (this *RowError) Error() string {
	return fmt.Sprintf("row %d: column %q %s", this.Row, this.Column, this.Reason)
}

// buildFindings turns every parsed row into a Finding, keeping row order.
// The first row that cannot become a Finding aborts the whole batch.
func buildFindings(parsed *app.ParseExcelResult, columns header_mapping_service.ColumnIndex) ([]*entities.Finding, error) {
	findings := make([]*entities.Finding, 0, len(parsed.Rows))

	for i, row := range parsed.Rows {
		rowNumber := i + 2
		if i < len(parsed.RowNumbers) {
			rowNumber = parsed.RowNumbers[i]
		}

		finding, err := buildFinding(row, rowNumber, columns)
		if err != nil {
			return nil, err
		}
		findings = append(findings, finding)
	}

	return findings, nil
}

func buildFinding(row []string, rowNumber int, columns header_mapping_service.ColumnIndex) (*entities.Finding, error) {
	values := make(map[header_mapping_service.Field]string, len(header_mapping_service.RequiredColumns))
	for _, c := range header_mapping_service.RequiredColumns {
		v := columns.Cell(row, c.Field)
		if v == "" {
			return nil, &RowError{Row: rowNumber, Column: c.Header, Reason: "is empty"}
		}
		values[c.Field] = v
	}

	for _, l := range lengthLimits {
		if utf8.RuneCountInString(values[l.field]) > l.max {
			return nil, &RowError{
				Row:    rowNumber,
				Column: columns.Header(l.field),
				Reason: fmt.Sprintf("exceeds %d characters", l.max),
			}
		}
	}

	return &entities.Finding{
		Name:            values[header_mapping_service.FieldName],
		RiskDescription: values[header_mapping_service.FieldRiskDescription],
		Severity:        values[header_mapping_service.FieldSeverity],
		AffectedURLs:    values[header_mapping_service.FieldAffectedURLs],
	}, nil
}
