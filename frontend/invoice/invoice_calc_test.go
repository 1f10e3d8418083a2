package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExclusiveUnitPrice(t *testing.T) {
	line := InvoiceLine{InclusiveUnitPrice: decimal.NewFromInt(118)}
	if got := line.ExclusiveUnitPrice().StringFixed(2); got != "100.00" {
		t.Fatalf("exclusive price = %s, want 100.00", got)
	}
}

func TestComputeTotals_IntraState(t *testing.T) {
	lines := []InvoiceLine{
		{Description: "Herbal Soap", Quantity: 2, InclusiveUnitPrice: decimal.NewFromInt(118)},
	}

	totals := ComputeTotals(lines, TaxTypeCGSTSGST)
	if totals.Taxable.StringFixed(2) != "200.00" {
		t.Fatalf("taxable = %s", totals.Taxable)
	}
	if totals.CGST.StringFixed(2) != "18.00" || totals.SGST.StringFixed(2) != "18.00" {
		t.Fatalf("cgst/sgst = %s/%s, want 9%% each", totals.CGST, totals.SGST)
	}
	if !totals.IGST.IsZero() {
		t.Fatalf("igst must be zero for intra-state")
	}
	if totals.GrandTotal.StringFixed(2) != "236.00" {
		t.Fatalf("grand total = %s", totals.GrandTotal)
	}
}

func TestComputeTotals_InterState(t *testing.T) {
	lines := []InvoiceLine{
		{Description: "Hair Oil", Quantity: 1, InclusiveUnitPrice: decimal.NewFromInt(236)},
	}

	totals := ComputeTotals(lines, TaxTypeIGST)
	if totals.Taxable.StringFixed(2) != "200.00" {
		t.Fatalf("taxable = %s", totals.Taxable)
	}
	if totals.IGST.StringFixed(2) != "36.00" {
		t.Fatalf("igst = %s, want 18%%", totals.IGST)
	}
	if !totals.CGST.IsZero() || !totals.SGST.IsZero() {
		t.Fatalf("cgst/sgst must be zero for inter-state")
	}
	if totals.GrandTotal.StringFixed(2) != "236.00" {
		t.Fatalf("grand total should return to the inclusive price, got %s", totals.GrandTotal)
	}
}

func TestComputeTotals_DiscountReducesTaxable(t *testing.T) {
	lines := []InvoiceLine{
		{Description: "Soap", Quantity: 1, InclusiveUnitPrice: decimal.NewFromInt(118), Discount: decimal.NewFromInt(50)},
	}

	totals := ComputeTotals(lines, TaxTypeCGSTSGST)
	if totals.Taxable.StringFixed(2) != "50.00" {
		t.Fatalf("taxable after discount = %s", totals.Taxable)
	}
	if totals.Tax.StringFixed(2) != "9.00" {
		t.Fatalf("tax on discounted amount = %s", totals.Tax)
	}
}

func TestRenderInvoicePDF(t *testing.T) {
	data := InvoiceData{
		InvoiceNumber:   "INV-1",
		CustomerName:    "Asha",
		BillingAddress:  "12 Gandhi Street\nCoimbatore",
		ShippingAddress: "12 Gandhi Street\nCoimbatore",
		TaxType:         TaxTypeCGSTSGST,
		Lines: []InvoiceLine{
			{Description: "Herbal Soap", Quantity: 2, InclusiveUnitPrice: decimal.NewFromInt(118)},
		},
		SenderBlock: "Acme Dispatch\nCoimbatore",
	}
	pdfBytes, err := RenderInvoicePDF(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatalf("expected pdf output")
	}
}
