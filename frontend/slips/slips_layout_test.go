package slips

import (
	"testing"

	"github.com/shopspring/decimal"
)

func makeRecords(n int) []ShipmentRecord {
	records := make([]ShipmentRecord, n)
	for i := range records {
		records[i] = ShipmentRecord{OrderID: string(rune('A' + i)), Quantity: 1}
	}
	return records
}

func TestGroupIntoPages_SinglePerPage(t *testing.T) {
	pages := GroupIntoPages(makeRecords(5), 1)
	if len(pages) != 1 {
		t.Fatalf("expected one grouping page, got %d", len(pages))
	}
	if len(pages[0]) != 5 {
		t.Fatalf("expected all 5 records on the page, got %d", len(pages[0]))
	}
}

func TestGroupIntoPages_Chunks(t *testing.T) {
	cases := []struct {
		name         string
		total        int
		itemsPerPage int
		wantPages    []int
	}{
		{name: "even split", total: 8, itemsPerPage: 4, wantPages: []int{4, 4}},
		{name: "short tail", total: 7, itemsPerPage: 4, wantPages: []int{4, 3}},
		{name: "six up", total: 13, itemsPerPage: 6, wantPages: []int{6, 6, 1}},
		{name: "two up", total: 3, itemsPerPage: 2, wantPages: []int{2, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pages := GroupIntoPages(makeRecords(tc.total), tc.itemsPerPage)
			if len(pages) != len(tc.wantPages) {
				t.Fatalf("page count = %d, want %d", len(pages), len(tc.wantPages))
			}
			seen := 0
			for i, page := range pages {
				if len(page) != tc.wantPages[i] {
					t.Fatalf("page %d size = %d, want %d", i, len(page), tc.wantPages[i])
				}
				for _, record := range page {
					if record.OrderID != string(rune('A'+seen)) {
						t.Fatalf("input order not preserved at record %d", seen)
					}
					seen++
				}
			}
		})
	}
}

func TestGroupIntoPages_Empty(t *testing.T) {
	if pages := GroupIntoPages(nil, 4); pages != nil {
		t.Fatalf("expected no pages for empty input")
	}
}

func TestLayoutFor_FallsBackToSingle(t *testing.T) {
	if l := LayoutFor(3); l.ItemsPerPage != 1 {
		t.Fatalf("unsupported layout should fall back to 1, got %d", l.ItemsPerPage)
	}
	if l := LayoutFor(6); l.Columns != 2 || l.Rows != 3 {
		t.Fatalf("six-up grid = %dx%d", l.Columns, l.Rows)
	}
}

func TestWeightKilograms(t *testing.T) {
	if got := WeightKilograms(3, 450); got != "1.35" {
		t.Fatalf("weight = %q, want 1.35", got)
	}
	if got := WeightKilograms(1, 450); got != "0.45" {
		t.Fatalf("weight = %q, want 0.45", got)
	}
	if got := WeightKilograms(0, 450); got != "0.45" {
		t.Fatalf("zero quantity should weigh as one unit, got %q", got)
	}
}

func TestLineTotal(t *testing.T) {
	record := ShipmentRecord{Quantity: 3, UnitPrice: decimal.RequireFromString("199.50")}
	if got := LineTotal(record); !got.Equal(decimal.RequireFromString("598.50")) {
		t.Fatalf("line total = %s", got)
	}

	missingPrice := ShipmentRecord{Quantity: 2}
	if got := LineTotal(missingPrice); !got.Equal(decimal.Zero) {
		t.Fatalf("missing price should total zero, got %s", got)
	}
}
