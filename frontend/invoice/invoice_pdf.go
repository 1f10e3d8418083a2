package invoice

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const sellerGSTIN = "33AAJCT3867G1Z4"

// InvoiceData is everything the PDF needs besides the computed totals.
type InvoiceData struct {
	InvoiceNumber   string
	InvoiceDate     time.Time
	CustomerName    string
	BillingAddress  string
	BillingGSTIN    string
	ShippingAddress string
	ShippingGSTIN   string
	TaxType         string
	Lines           []InvoiceLine
	SenderBlock     string
}

// RenderInvoicePDF builds the tax invoice document.
func RenderInvoicePDF(data InvoiceData) ([]byte, error) {
	totals := ComputeTotals(data.Lines, data.TaxType)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tax Invoice", false)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	margin := 12.0
	innerW := pageW - 2*margin

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "TAX INVOICE", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range strings.Split(strings.TrimSpace(data.SenderBlock), "\n") {
		pdf.CellFormat(0, 4.5, strings.TrimSpace(line), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 4.5, "GSTIN: "+sellerGSTIN, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(innerW/2, 5.5, "Invoice No: "+data.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(innerW/2, 5.5, "Date: "+data.InvoiceDate.Format("02-01-2006"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	colW := innerW / 2
	startY := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colW, 5.5, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(colW-4, 4.5, data.CustomerName+"\n"+data.BillingAddress, "", "L", false)
	if data.BillingGSTIN != "" {
		pdf.CellFormat(colW, 4.5, "GSTIN: "+data.BillingGSTIN, "", 1, "L", false, 0, "")
	}
	leftEndY := pdf.GetY()

	pdf.SetXY(margin+colW, startY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colW, 5.5, "Ship To", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(margin + colW)
	pdf.MultiCell(colW-4, 4.5, data.ShippingAddress, "", "L", false)
	if data.ShippingGSTIN != "" {
		pdf.SetX(margin + colW)
		pdf.CellFormat(colW, 4.5, "GSTIN: "+data.ShippingGSTIN, "", 1, "L", false, 0, "")
	}
	if pdf.GetY() < leftEndY {
		pdf.SetY(leftEndY)
	}
	pdf.Ln(4)

	// Line table.
	descW := innerW * 0.40
	qtyW := innerW * 0.10
	priceW := innerW * 0.16
	discW := innerW * 0.14
	amtW := innerW - descW - qtyW - priceW - discW

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(descW, 6, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(qtyW, 6, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(priceW, 6, "Rate (excl.)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(discW, 6, "Discount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, 6, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range data.Lines {
		pdf.CellFormat(descW, 6, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, 6, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(priceW, 6, line.ExclusiveUnitPrice().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(discW, 6, line.Discount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amtW, 6, line.LineAmount().StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	labelW := innerW - 40
	writeTotal := func(label, amount string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9.5)
		pdf.CellFormat(labelW, 5.5, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 5.5, amount, "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", totals.Subtotal.StringFixed(2), false)
	if !totals.Discount.IsZero() {
		writeTotal("Discount", "-"+totals.Discount.StringFixed(2), false)
	}
	writeTotal("Taxable Amount", totals.Taxable.StringFixed(2), false)
	if data.TaxType == TaxTypeIGST {
		writeTotal("IGST @ 18%", totals.IGST.StringFixed(2), false)
	} else {
		writeTotal("CGST @ 9%", totals.CGST.StringFixed(2), false)
		writeTotal("SGST @ 9%", totals.SGST.StringFixed(2), false)
	}
	writeTotal("Grand Total", totals.GrandTotal.StringFixed(2), true)

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
