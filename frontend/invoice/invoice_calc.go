package invoice

import "github.com/shopspring/decimal"

// Tax types on a GST invoice. Intra-state sales split the 18% rate into
// equal CGST and SGST halves; inter-state sales charge IGST in one piece.
const (
	TaxTypeCGSTSGST = "CGST/SGST"
	TaxTypeIGST     = "IGST"
)

var (
	gstFactor = decimal.RequireFromString("1.18")
	halfRate  = decimal.RequireFromString("0.09")
	fullRate  = decimal.RequireFromString("0.18")
)

// InvoiceLine is one product row. Unit prices are entered GST-inclusive and
// converted to the exclusive base before tax is applied.
type InvoiceLine struct {
	Description        string
	Quantity           int64
	InclusiveUnitPrice decimal.Decimal
	Discount           decimal.Decimal
}

// ExclusiveUnitPrice strips the 18% GST component out of the entered price.
func (l InvoiceLine) ExclusiveUnitPrice() decimal.Decimal {
	return l.InclusiveUnitPrice.Div(gstFactor)
}

func (l InvoiceLine) LineAmount() decimal.Decimal {
	qty := l.Quantity
	if qty < 1 {
		qty = 1
	}
	return l.ExclusiveUnitPrice().Mul(decimal.NewFromInt(qty))
}

// InvoiceTotals carries the derived money amounts for the document footer.
type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Taxable    decimal.Decimal
	CGST       decimal.Decimal
	SGST       decimal.Decimal
	IGST       decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals sums the lines and applies the selected tax split to the
// discounted taxable amount.
func ComputeTotals(lines []InvoiceLine, taxType string) InvoiceTotals {
	totals := InvoiceTotals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
	}
	for _, line := range lines {
		totals.Subtotal = totals.Subtotal.Add(line.LineAmount())
		totals.Discount = totals.Discount.Add(line.Discount)
	}
	totals.Taxable = totals.Subtotal.Sub(totals.Discount)

	if taxType == TaxTypeIGST {
		totals.IGST = totals.Taxable.Mul(fullRate)
		totals.Tax = totals.IGST
	} else {
		totals.CGST = totals.Taxable.Mul(halfRate)
		totals.SGST = totals.Taxable.Mul(halfRate)
		totals.Tax = totals.CGST.Add(totals.SGST)
	}
	totals.GrandTotal = totals.Taxable.Add(totals.Tax)
	return totals
}
