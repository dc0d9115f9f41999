package app

import (
	"context"

	"github.com/init-pkg/vapt-ingest/domain/errs"
)

type ParseExcelResult struct {
	SheetName string     `json:"sheet_name"`
	Header    []string   `json:"header"`
	Rows      [][]string `json:"rows"`
	// RowNumbers[i] is the 1-based worksheet row Rows[i] was read from.
	RowNumbers []int `json:"row_numbers"`
}

type ExcelParserService interface {
	Parse(ctx context.Context, file []byte) (*ParseExcelResult, errs.Error)
}
