package slips

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"slipdesk/frontend/settings"
	"slipdesk/infrastructure/sqlite"
)

// GetSlipsScreenHandler renders the paste-and-print screen.
func GetSlipsScreenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := GetSlipsScreen(r.URL.Query().Get("status")).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render slips screen", http.StatusInternalServerError)
		return
	}
}

// BuildSlipsPDFHandler parses the pasted shipment lines and streams the
// rendered slip PDF back inline.
func BuildSlipsPDFHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/slips?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}

		itemsPerPage, err := strconv.Atoi(strings.TrimSpace(r.FormValue("items_per_page")))
		if err != nil {
			itemsPerPage = 1
		}

		records := ParseShipmentText(r.FormValue("shipment_lines"))
		if len(records) == 0 {
			http.Redirect(w, r, "/desk/slips?status="+url.QueryEscape("no parseable shipment lines"), http.StatusSeeOther)
			return
		}

		appSettings, err := settings.LoadAppSettings(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := RenderSlipsPDF(records, itemsPerPage, SlipOptions{
			SenderBlock:     appSettings.SenderBlock,
			UnitWeightGrams: appSettings.UnitWeightGrams,
		})
		if err != nil {
			http.Error(w, "failed to build slips pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=shipping-slips.pdf")
		_, _ = w.Write(pdfBytes)
	}
}
