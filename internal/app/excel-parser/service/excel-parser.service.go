package excel_parser_service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"github.com/init-pkg/vapt-ingest/domain/app"
	"github.com/init-pkg/vapt-ingest/domain/errs"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook has no worksheets")

type ExcelParserService struct {
	log *slog.Logger
}

var _ app.ExcelParserService = &ExcelParserService{}

func New(log *slog.Logger) *ExcelParserService {
	return &ExcelParserService{log}
}

// Parse reads the first worksheet. Row 1 is the header, every following
// non-blank row is data.
func (this *ExcelParserService) Parse(ctx context.Context, file []byte) (*app.ParseExcelResult, errs.Error) {
	res, err := this.parse(file)
	if err != nil {
		if errors.Is(err, ErrNoSheets) {
			return nil, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindSchemaMismatch, Message: "Missing required columns"})
		}
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindPersistenceFailure})
	}

	return res, nil
}

func (this *ExcelParserService) parse(file []byte) (*app.ParseExcelResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	sheet := sheets[0]

	grid, err := readSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	result := buildResult(sheet, grid)

	this.log.Debug("worksheet parsed",
		"sheet", sheet,
		"header", result.Header,
		"rowCount", len(result.Rows))

	return result, nil
}

func buildResult(sheet string, grid sheetGrid) *app.ParseExcelResult {
	result := &app.ParseExcelResult{
		SheetName: sheet,
		Header:    []string{},
	}
	if len(grid) == 0 {
		return result
	}

	result.Header = grid[0]

	for i := 1; i < len(grid); i++ {
		if grid.blank(i) {
			continue
		}
		result.Rows = append(result.Rows, grid[i])
		result.RowNumbers = append(result.RowNumbers, i+1)
	}

	return result
}
