package slips

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
)

const defaultUnitWeightGrams = 450

// Single-slip sheets print on 4x6 inch thermal stock.
const (
	sheetWidthMM  = 101.6
	sheetHeightMM = 152.4
)

// RenderSlipsPDF renders the records into a print-ready PDF. With one item
// per page each record gets its own 4x6in sheet; the multi-up layouts share
// an A4 page on a fixed grid. Zero records produce empty output.
func RenderSlipsPDF(records []ShipmentRecord, itemsPerPage int, opts SlipOptions) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}
	if opts.UnitWeightGrams <= 0 {
		opts.UnitWeightGrams = defaultUnitWeightGrams
	}

	layout := LayoutFor(itemsPerPage)
	if layout.ItemsPerPage == 1 {
		return renderSingleSlipSheets(records, opts)
	}
	return renderGridSlips(records, layout, opts)
}

func renderSingleSlipSheets(records []ShipmentRecord, opts SlipOptions) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: sheetWidthMM, Ht: sheetHeightMM},
	})
	pdf.SetTitle("Shipping Slips", false)
	pdf.SetAutoPageBreak(false, 0)

	for i, record := range records {
		pdf.AddPage()
		if err := drawSlipBlock(pdf, record, 3, 3, sheetWidthMM-6, sheetHeightMM-6, opts, i); err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderGridSlips(records []ShipmentRecord, layout Layout, opts SlipOptions) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Shipping Slips", false)
	pdf.SetAutoPageBreak(false, 0)

	pageW, pageH := pdf.GetPageSize()
	margin := 8.0
	cellW := (pageW - 2*margin) / float64(layout.Columns)
	cellH := (pageH - 2*margin) / float64(layout.Rows)

	slipIndex := 0
	for _, page := range GroupIntoPages(records, layout.ItemsPerPage) {
		pdf.AddPage()
		for i, record := range page {
			col := i % layout.Columns
			row := i / layout.Columns
			x := margin + float64(col)*cellW
			y := margin + float64(row)*cellH
			if err := drawSlipBlock(pdf, record, x+1.5, y+1.5, cellW-3, cellH-3, opts, slipIndex); err != nil {
				return nil, err
			}
			slipIndex++
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func drawSlipBlock(pdf *gofpdf.Fpdf, record ShipmentRecord, x, y, w, h float64, opts SlipOptions, slipIndex int) error {
	pdf.SetLineWidth(0.3)
	pdf.Rect(x, y, w, h, "")

	pad := 2.5
	innerW := w - 2*pad

	headerH := h * 0.24
	toH := h * 0.30
	tableH := h * 0.13
	orderH := h * 0.19
	fromH := h - headerH - toH - tableH - orderH

	yHeader := y
	yTo := yHeader + headerH
	yTable := yTo + toH
	yOrder := yTable + tableH
	yFrom := yOrder + orderH

	pdf.Line(x, yTo, x+w, yTo)
	pdf.Line(x, yTable, x+w, yTable)
	pdf.Line(x, yOrder, x+w, yOrder)
	pdf.Line(x, yFrom, x+w, yFrom)

	// Tracking header: barcode when a tracking number exists, otherwise a
	// dashed placeholder so the slip still prints.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x+pad, yHeader+1.5)
	pdf.CellFormat(innerW, 4, "TRACKING #", "", 0, "L", false, 0, "")
	tracking := strings.TrimSpace(record.TrackingNumber)
	if tracking != "" {
		if err := placeBarcode(pdf, tracking, fmt.Sprintf("slip-track-%d", slipIndex),
			x+pad, yHeader+6.5, innerW, headerH-13); err != nil {
			return err
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(x+pad, yHeader+headerH-5.5)
		pdf.CellFormat(innerW, 4, tracking, "", 0, "C", false, 0, "")
	} else {
		pdf.SetDashPattern([]float64{1.2, 1.2}, 0)
		pdf.Rect(x+pad, yHeader+6.5, innerW, headerH-9.5, "")
		pdf.SetDashPattern([]float64{}, 0)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetXY(x+pad, yHeader+6.5)
		pdf.CellFormat(innerW, headerH-9.5, "No Tracking", "", 0, "C", false, 0, "")
	}

	// Recipient block.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x+pad, yTo+1.5)
	pdf.CellFormat(innerW, 4, "TO:", "", 0, "L", false, 0, "")
	nameY := yTo + 6
	if name := strings.TrimSpace(record.CustomerName); name != "" {
		nameFont := fitFontSizeForWidth(pdf, "Helvetica", "B", 11, 8, name, innerW)
		pdf.SetFont("Helvetica", "B", nameFont)
		pdf.SetXY(x+pad, nameY)
		pdf.CellFormat(innerW, 5, name, "", 0, "L", false, 0, "")
		nameY += 5.5
	}
	pdf.SetFont("Helvetica", "", 8)
	addressLines := pdf.SplitText(record.RecipientAddress, innerW)
	maxLines := int((yTable - nameY - 5) / 3.6)
	if maxLines < 1 {
		maxLines = 1
	}
	if len(addressLines) > maxLines {
		addressLines = addressLines[:maxLines]
	}
	lineY := nameY
	for _, line := range addressLines {
		pdf.SetXY(x+pad, lineY)
		pdf.CellFormat(innerW, 3.6, line, "", 0, "L", false, 0, "")
		lineY += 3.6
	}
	if record.RecipientPhone != "" {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetXY(x+pad, yTable-5)
		pdf.CellFormat(innerW, 4, "Phone: "+record.RecipientPhone, "", 0, "L", false, 0, "")
	}

	// Product, quantity, weight and total.
	colW := innerW / 4
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetXY(x+pad, yTable+1.5)
	pdf.CellFormat(colW, 3.5, "Product", "", 0, "L", false, 0, "")
	pdf.CellFormat(colW, 3.5, "Qty", "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 3.5, "Weight (kg)", "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 3.5, "Total", "", 0, "R", false, 0, "")
	product := strings.TrimSpace(record.ProductName)
	if product == "" {
		product = "-"
	}
	productFont := fitFontSizeForWidth(pdf, "Helvetica", "", 8, 6, product, colW)
	pdf.SetFont("Helvetica", "", productFont)
	pdf.SetXY(x+pad, yTable+6)
	pdf.CellFormat(colW, 4, product, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(colW, 4, fmt.Sprintf("%d", record.Quantity), "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 4, WeightKilograms(record.Quantity, opts.UnitWeightGrams), "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 4, LineTotal(record).StringFixed(2), "", 0, "R", false, 0, "")

	// Order barcode.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x+pad, yOrder+1.5)
	pdf.CellFormat(innerW, 4, "ORDER #", "", 0, "L", false, 0, "")
	if orderID := strings.TrimSpace(record.OrderID); orderID != "" {
		if err := placeBarcode(pdf, orderID, fmt.Sprintf("slip-order-%d", slipIndex),
			x+pad, yOrder+6, innerW, orderH-12.5); err != nil {
			return err
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(x+pad, yOrder+orderH-5)
		pdf.CellFormat(innerW, 4, orderID, "", 0, "C", false, 0, "")
	}

	// Fixed sender block.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x+pad, yFrom+1.5)
	pdf.CellFormat(innerW, 4, "FROM:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	senderY := yFrom + 6
	for _, line := range strings.Split(strings.TrimSpace(opts.SenderBlock), "\n") {
		if senderY > yFrom+fromH-3.5 {
			break
		}
		pdf.SetXY(x+pad, senderY)
		pdf.CellFormat(innerW, 3.2, strings.TrimSpace(line), "", 0, "L", false, 0, "")
		senderY += 3.2
	}
	return nil
}

func placeBarcode(pdf *gofpdf.Fpdf, value, imageName string, x, y, w, h float64) error {
	if h < 6 {
		h = 6
	}
	barcodePNG, err := renderCode128PNG(value, 1200, 220)
	if err != nil {
		return err
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	pdf.ImageOptions(imageName, x, y, w, h, false, opt, 0, "")
	return nil
}

func fitFontSizeForWidth(pdf *gofpdf.Fpdf, family, style string, base, min float64, text string, maxWidth float64) float64 {
	if maxWidth <= 0 {
		return min
	}
	size := base
	pdf.SetFont(family, style, size)
	for size > min && pdf.GetStringWidth(text) > maxWidth {
		size -= 0.5
		pdf.SetFont(family, style, size)
	}
	return size
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var barcodePNG bytes.Buffer
	if err := png.Encode(&barcodePNG, normalized); err != nil {
		return nil, err
	}
	return barcodePNG.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
