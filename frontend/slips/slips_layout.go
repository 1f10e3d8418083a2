package slips

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Layout describes how many slips share one printed page and the grid used
// to arrange them.
type Layout struct {
	ItemsPerPage int
	Columns      int
	Rows         int
}

var layouts = map[int]Layout{
	1: {ItemsPerPage: 1, Columns: 1, Rows: 1},
	2: {ItemsPerPage: 2, Columns: 1, Rows: 2},
	4: {ItemsPerPage: 4, Columns: 2, Rows: 2},
	6: {ItemsPerPage: 6, Columns: 2, Rows: 3},
}

// LayoutFor resolves an items-per-page selection; unsupported values fall
// back to one slip per page.
func LayoutFor(itemsPerPage int) Layout {
	if l, ok := layouts[itemsPerPage]; ok {
		return l
	}
	return layouts[1]
}

// GroupIntoPages partitions records into page-sized chunks in input order.
// With one item per page the grouping stays a single page holding every
// record; the renderer emits one physical sheet per record in that mode.
func GroupIntoPages(records []ShipmentRecord, itemsPerPage int) [][]ShipmentRecord {
	if len(records) == 0 {
		return nil
	}
	if itemsPerPage <= 1 {
		return [][]ShipmentRecord{records}
	}
	var pages [][]ShipmentRecord
	for i := 0; i < len(records); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(records) {
			end = len(records)
		}
		pages = append(pages, records[i:end])
	}
	return pages
}

// WeightKilograms renders the derived package weight as kilograms with two
// decimals, from quantity times the per-unit weight.
func WeightKilograms(quantity, unitWeightGrams int64) string {
	if quantity < 1 {
		quantity = 1
	}
	grams := quantity * unitWeightGrams
	return fmt.Sprintf("%.2f", float64(grams)/1000)
}

// LineTotal is quantity times unit price. A missing or invalid price is
// treated as zero, never surfaced as an error.
func LineTotal(record ShipmentRecord) decimal.Decimal {
	qty := record.Quantity
	if qty < 1 {
		qty = 1
	}
	return record.UnitPrice.Mul(decimal.NewFromInt(qty))
}
