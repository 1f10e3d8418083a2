package manifest

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"slipdesk/frontend/settings"
	"slipdesk/frontend/slips"
	"slipdesk/infrastructure/sqlite"
)

// PrintManifestHandler renders the current manifest as courier slips, one
// slip per scanned entry in display order.
func PrintManifestHandler(db *sqlite.DB, engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		itemsPerPage, err := strconv.Atoi(strings.TrimSpace(r.FormValue("items_per_page")))
		if err != nil {
			itemsPerPage = 1
		}

		entries := engine.Entries()
		if len(entries) == 0 {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("no entries to print"), http.StatusSeeOther)
			return
		}
		appSettings, err := settings.LoadAppSettings(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := slips.RenderSlipsPDF(shipmentRecordsFromEntries(entries), itemsPerPage, slips.SlipOptions{
			SenderBlock:     appSettings.SenderBlock,
			UnitWeightGrams: appSettings.UnitWeightGrams,
		})
		if err != nil {
			http.Error(w, "failed to build slips pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=manifest-slips.pdf")
		_, _ = w.Write(pdfBytes)
	}
}

func shipmentRecordsFromEntries(entries []Entry) []slips.ShipmentRecord {
	records := make([]slips.ShipmentRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, slips.ShipmentRecord{
			ShipDate:       entry.ScannedAt.Format("02-01-2006"),
			OrderID:        entry.OrderID,
			Quantity:       1,
			CustomerName:   entry.CustomerName,
			TrackingNumber: entry.TrackingNumber,
		})
	}
	return records
}
