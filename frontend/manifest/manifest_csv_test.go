package manifest

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestParseReferenceCSV_HeaderRecognized(t *testing.T) {
	csvText := "Tracking Number,Order ID,Customer Name\n" +
		"TRK1,ORD-1,Asha\n" +
		"TRK2,ORD-2,Bala\n"

	records, mode, _, err := ParseReferenceCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if mode != ColumnsRecognized {
		t.Fatalf("mode = %s, want recognized", mode)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TrackingNumber != "TRK1" || records[0].OrderID != "ORD-1" || records[0].CustomerName != "Asha" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestParseReferenceCSV_ShuffledHeaderColumns(t *testing.T) {
	csvText := "customer,order id,awb number\n" +
		"Asha,ORD-1,TRK1\n"

	records, mode, _, err := ParseReferenceCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if mode != ColumnsRecognized {
		t.Fatalf("mode = %s, want recognized", mode)
	}
	if records[0].TrackingNumber != "TRK1" || records[0].OrderID != "ORD-1" || records[0].CustomerName != "Asha" {
		t.Fatalf("columns not located by header: %+v", records[0])
	}
}

func TestParseReferenceCSV_PositionalFallback(t *testing.T) {
	// No header: the first row is data too.
	csvText := "TRK1,ORD-1,Asha\nTRK2,ORD-2,Bala\n"

	records, mode, _, err := ParseReferenceCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if mode != ColumnsPositional {
		t.Fatalf("mode = %s, want positional", mode)
	}
	if len(records) != 2 {
		t.Fatalf("expected first row kept as data, got %d records", len(records))
	}
}

func TestParseReferenceCSV_ShortRowsSkipped(t *testing.T) {
	csvText := "TRK1,ORD-1,Asha\nTRK2,ORD-2\nTRK3,ORD-3,Bala\n"

	records, _, skipped, err := ParseReferenceCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("short row should be skipped, got %d records", len(records))
	}
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
	if records[1].TrackingNumber != "TRK3" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestParseReferenceCSV_Malformed(t *testing.T) {
	// Unterminated quote makes the reader fail.
	csvText := "TRK1,\"ORD-1,Asha\nTRK2,ORD-2,Bala\n"

	if _, _, _, err := ParseReferenceCSV(strings.NewReader(csvText)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseReferenceCSV_Empty(t *testing.T) {
	records, mode, _, err := ParseReferenceCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 0 || mode != ColumnsPositional {
		t.Fatalf("expected empty positional result")
	}
}

func TestExportManifestCSV(t *testing.T) {
	out, err := ExportManifestCSV([]Entry{
		{TrackingNumber: "TRK2"},
		{TrackingNumber: "TRK1"},
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "Tracking Number\nTRK2\nTRK1\n"
	if string(out) != want {
		t.Fatalf("export = %q, want %q", out, want)
	}
}

func TestExportManifestCSV_ReadsBackInDisplayOrder(t *testing.T) {
	engine := NewEngine()
	engine.RecordScan("TRK1")
	engine.RecordScan("TRK2")
	engine.RecordScan("TRK3")

	entries := engine.Entries()
	out, err := ExportManifestCSV(entries)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("re-read export: %v", err)
	}
	if len(rows) != len(entries)+1 || rows[0][0] != "Tracking Number" {
		t.Fatalf("unexpected export shape: %v", rows)
	}
	for i, entry := range entries {
		if got := rows[i+1][0]; got != entry.TrackingNumber {
			t.Fatalf("row %d = %q, want %q", i+1, got, entry.TrackingNumber)
		}
	}
}
