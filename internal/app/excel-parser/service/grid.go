package excel_parser_service

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetGrid is a worksheet as equal-width rows of trimmed cell text.
type sheetGrid [][]string

func readSheet(f *excelize.File, sheet string) (sheetGrid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	grid := make(sheetGrid, len(rows))
	for r, row := range rows {
		grid[r] = make([]string, width)
		for c, cell := range row {
			grid[r][c] = strings.TrimSpace(cell)
		}
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		grid.spread(merge)
	}

	return grid, nil
}

// spread writes the value of a merged range into every cell it covers, so a
// header or value merged across cells reads the same from any of them.
func (this sheetGrid) spread(merge excelize.MergeCell) {
	fromCol, fromRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
	if err != nil {
		return
	}
	toCol, toRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
	if err != nil {
		return
	}

	value := strings.TrimSpace(merge.GetCellValue())
	for r := fromRow - 1; r < toRow && r < len(this); r++ {
		for c := fromCol - 1; c < toCol && c < len(this[r]); c++ {
			this[r][c] = value
		}
	}
}

func (this sheetGrid) blank(r int) bool {
	for _, cell := range this[r] {
		if cell != "" {
			return false
		}
	}
	return true
}
