package manifest

import (
	"bytes"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestShipmentRecordsFromEntries(t *testing.T) {
	scannedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	records := shipmentRecordsFromEntries([]Entry{
		{TrackingNumber: "TRK2", ScannedAt: scannedAt, OrderID: "ORD-2", CustomerName: "Bala"},
		{TrackingNumber: "TRK1", ScannedAt: scannedAt},
	})

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0]
	if first.TrackingNumber != "TRK2" || first.OrderID != "ORD-2" || first.CustomerName != "Bala" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.ShipDate != "30-08-2026" {
		t.Fatalf("ship date = %q, want scan date", first.ShipDate)
	}
	if first.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", first.Quantity)
	}
}

func TestPrintManifestHandler_RendersOneSlipPerEntry(t *testing.T) {
	db := openManifestTestDB(t)
	engine := NewEngine()
	engine.RecordScan("TRK1")
	engine.RecordScan("TRK2")

	form := url.Values{"items_per_page": {"1"}}
	req := httptest.NewRequest("POST", "/desk/manifest/print", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	PrintManifestHandler(db, engine)(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type = %q", got)
	}
	pdfBytes := rec.Body.Bytes()
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if pages := bytes.Count(pdfBytes, []byte("/Type /Page\n")); pages != 2 {
		t.Fatalf("expected 2 pages, got %d", pages)
	}
}

func TestPrintManifestHandler_EmptyManifestRedirects(t *testing.T) {
	db := openManifestTestDB(t)
	engine := NewEngine()

	req := httptest.NewRequest("POST", "/desk/manifest/print", strings.NewReader("items_per_page=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	PrintManifestHandler(db, engine)(rec, req)

	if rec.Code != 303 {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "no+entries+to+print") {
		t.Fatalf("unexpected redirect: %q", loc)
	}
}
