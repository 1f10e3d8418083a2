package manifest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseReferenceXLSX reads the first sheet of an uploaded spreadsheet with
// the same column heuristics as the CSV loader.
func ParseReferenceXLSX(r io.Reader) ([]ReferenceRecord, ParseMode, int, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ColumnsPositional, 0, fmt.Errorf("open reference spreadsheet: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, ColumnsPositional, 0, nil
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, ColumnsPositional, 0, fmt.Errorf("read reference sheet: %w", err)
	}
	records, mode, skipped := parseReferenceRows(rows)
	return records, mode, skipped, nil
}
