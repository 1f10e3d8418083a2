package manifest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const ExportFileName = "manifest_tracking_numbers.csv"

// ParseReferenceCSV reads an uploaded reference file. Header columns are
// located by substring heuristics; without a recognizable header every row
// is data and columns 0, 1, 2 are used. Rows with fewer than three values
// are skipped and counted. The result replaces any previous reference set.
func ParseReferenceCSV(r io.Reader) ([]ReferenceRecord, ParseMode, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, ColumnsPositional, 0, fmt.Errorf("parse reference csv: %w", err)
	}
	records, mode, skipped := parseReferenceRows(rows)
	return records, mode, skipped, nil
}

// parseReferenceRows applies the column heuristics shared by the CSV and
// spreadsheet loaders. skipped counts data rows dropped for having fewer
// than three values or a blank tracking number.
func parseReferenceRows(rows [][]string) ([]ReferenceRecord, ParseMode, int) {
	if len(rows) == 0 {
		return nil, ColumnsPositional, 0
	}

	trackIdx, orderIdx, nameIdx := sniffHeader(rows[0])
	mode := ColumnsPositional
	dataRows := rows
	if trackIdx >= 0 && orderIdx >= 0 {
		mode = ColumnsRecognized
		dataRows = rows[1:]
	} else {
		trackIdx, orderIdx, nameIdx = 0, 1, 2
	}

	var records []ReferenceRecord
	skipped := 0
	for _, row := range dataRows {
		if len(row) < 3 {
			skipped++
			continue
		}
		record := ReferenceRecord{
			TrackingNumber: strings.TrimSpace(cell(row, trackIdx)),
			OrderID:        strings.TrimSpace(cell(row, orderIdx)),
			CustomerName:   strings.TrimSpace(cell(row, nameIdx)),
		}
		if record.TrackingNumber == "" {
			skipped++
			continue
		}
		records = append(records, record)
	}
	return records, mode, skipped
}

// sniffHeader looks for tracking, order and customer-name columns by name.
// Unfound columns come back as -1.
func sniffHeader(header []string) (trackIdx, orderIdx, nameIdx int) {
	trackIdx, orderIdx, nameIdx = -1, -1, -1
	for i, raw := range header {
		token := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case trackIdx < 0 && (strings.Contains(token, "track") || strings.Contains(token, "number")):
			trackIdx = i
		case orderIdx < 0 && (strings.Contains(token, "order") || strings.Contains(token, "id")):
			orderIdx = i
		case nameIdx < 0 && (strings.Contains(token, "name") || strings.Contains(token, "customer")):
			nameIdx = i
		}
	}
	return trackIdx, orderIdx, nameIdx
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ExportManifestCSV writes the single-column export in current display
// order under the literal "Tracking Number" header.
func ExportManifestCSV(entries []Entry) ([]byte, error) {
	var out bytes.Buffer
	writer := csv.NewWriter(&out)
	if err := writer.Write([]string{"Tracking Number"}); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if err := writer.Write([]string{entry.TrackingNumber}); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
