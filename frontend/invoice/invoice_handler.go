package invoice

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"slipdesk/frontend/settings"
	"slipdesk/infrastructure/sqlite"
)

// GetInvoiceScreenHandler renders the invoice form.
func GetInvoiceScreenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := InvoiceScreen(r.URL.Query().Get("status")).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render invoice screen", http.StatusInternalServerError)
		return
	}
}

// BuildInvoicePDFHandler builds the tax invoice from the submitted form and
// streams it inline.
func BuildInvoicePDFHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/invoice?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}

		lines, err := linesFromForm(r)
		if err != nil {
			http.Redirect(w, r, "/desk/invoice?status="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		taxType := r.FormValue("tax_type")
		if taxType != TaxTypeIGST {
			taxType = TaxTypeCGSTSGST
		}

		appSettings, err := settings.LoadAppSettings(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}

		data := InvoiceData{
			InvoiceNumber:   strings.TrimSpace(r.FormValue("invoice_number")),
			InvoiceDate:     time.Now(),
			CustomerName:    strings.TrimSpace(r.FormValue("customer_name")),
			BillingAddress:  strings.TrimSpace(r.FormValue("billing_address")),
			BillingGSTIN:    strings.TrimSpace(r.FormValue("billing_gstin")),
			ShippingAddress: strings.TrimSpace(r.FormValue("shipping_address")),
			ShippingGSTIN:   strings.TrimSpace(r.FormValue("shipping_gstin")),
			TaxType:         taxType,
			Lines:           lines,
			SenderBlock:     appSettings.SenderBlock,
		}
		pdfBytes, err := RenderInvoicePDF(data)
		if err != nil {
			http.Error(w, "failed to build invoice pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=tax-invoice.pdf")
		_, _ = w.Write(pdfBytes)
	}
}

func linesFromForm(r *http.Request) ([]InvoiceLine, error) {
	descriptions := r.Form["description"]
	quantities := r.Form["quantity"]
	prices := r.Form["unit_price"]
	discounts := r.Form["discount"]

	var lines []InvoiceLine
	for i, description := range descriptions {
		description = strings.TrimSpace(description)
		if description == "" {
			continue
		}
		line := InvoiceLine{Description: description, Quantity: 1, Discount: decimal.Zero}
		if i < len(quantities) {
			if qty, err := strconv.ParseInt(strings.TrimSpace(quantities[i]), 10, 64); err == nil && qty > 0 {
				line.Quantity = qty
			}
		}
		if i < len(prices) && strings.TrimSpace(prices[i]) != "" {
			price, err := decimal.NewFromString(strings.TrimSpace(prices[i]))
			if err != nil {
				return nil, newLineError("invalid unit price on line", i)
			}
			line.InclusiveUnitPrice = price
		}
		if i < len(discounts) && strings.TrimSpace(discounts[i]) != "" {
			discount, err := decimal.NewFromString(strings.TrimSpace(discounts[i]))
			if err != nil {
				return nil, newLineError("invalid discount on line", i)
			}
			line.Discount = discount
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, newLineError("at least one invoice line is required", -1)
	}
	return lines, nil
}

type lineError struct {
	message string
	line    int
}

func (e lineError) Error() string {
	if e.line < 0 {
		return e.message
	}
	return e.message + " " + strconv.Itoa(e.line+1)
}

func newLineError(message string, line int) error {
	return lineError{message: message, line: line}
}
