package slips

import (
	"bytes"
	"testing"
)

func TestRenderSlipsPDF_Empty(t *testing.T) {
	pdfBytes, err := RenderSlipsPDF(nil, 4, SlipOptions{})
	if err != nil {
		t.Fatalf("empty input should not error: %v", err)
	}
	if len(pdfBytes) != 0 {
		t.Fatalf("expected empty output for zero records")
	}
}

func TestRenderSlipsPDF_SingleSheets(t *testing.T) {
	records := []ShipmentRecord{
		{OrderID: "ORD-1", Quantity: 1, TrackingNumber: "TRK001", CustomerName: "Asha", RecipientAddress: "12 Gandhi Street, Coimbatore", RecipientPhone: "9876543210"},
		{OrderID: "ORD-2", Quantity: 2, RecipientAddress: "5 Beach Road, Chennai"},
	}

	pdfBytes, err := RenderSlipsPDF(records, 1, SlipOptions{SenderBlock: "Acme Dispatch\nCoimbatore"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	// One sheet per record.
	if pages := bytes.Count(pdfBytes, []byte("/Type /Page\n")); pages != 2 {
		t.Fatalf("expected 2 pages, got %d", pages)
	}
}

func TestRenderSlipsPDF_GridLayouts(t *testing.T) {
	cases := []struct {
		name         string
		records      int
		itemsPerPage int
		wantPages    int
	}{
		{name: "four up", records: 7, itemsPerPage: 4, wantPages: 2},
		{name: "six up", records: 6, itemsPerPage: 6, wantPages: 1},
		{name: "two up", records: 5, itemsPerPage: 2, wantPages: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := make([]ShipmentRecord, tc.records)
			for i := range records {
				records[i] = ShipmentRecord{OrderID: "ORD", Quantity: 1, RecipientAddress: "addr"}
			}
			pdfBytes, err := RenderSlipsPDF(records, tc.itemsPerPage, SlipOptions{})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if pages := bytes.Count(pdfBytes, []byte("/Type /Page\n")); pages != tc.wantPages {
				t.Fatalf("expected %d pages, got %d", tc.wantPages, pages)
			}
		})
	}
}

func TestRenderSlipsPDF_NoTrackingPlaceholder(t *testing.T) {
	records := []ShipmentRecord{{OrderID: "ORD-9", Quantity: 1, RecipientAddress: "addr"}}
	pdfBytes, err := RenderSlipsPDF(records, 1, SlipOptions{})
	if err != nil {
		t.Fatalf("render without tracking number should not error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatalf("expected rendered output")
	}
}
