package manifest

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"slipdesk/infrastructure/sqlite"
)

// GetManifestScreenHandler renders the scan screen with current entries and
// summary counters.
func GetManifestScreenHandler(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := ManifestScreen(engine.Entries(), engine.Summarize(), r.URL.Query().Get("status"))
		if err := page.Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render manifest screen", http.StatusInternalServerError)
			return
		}
	}
}

// ScanHandler records one scanned tracking number.
func ScanHandler(db *sqlite.DB, engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		trackingNumber := strings.TrimSpace(r.FormValue("tracking_number"))

		outcome, ok := engine.RecordScan(trackingNumber)
		if !ok {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("tracking number is required"), http.StatusSeeOther)
			return
		}

		if entry, found := engine.Entry(trackingNumber); found {
			if err := saveScannedEntry(r.Context(), db, entry); err != nil {
				http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("scan recorded but not saved"), http.StatusSeeOther)
				return
			}
		}

		var status string
		switch {
		case outcome.Added && outcome.Matched:
			status = "added, matched reference"
		case outcome.Added:
			status = "added, no reference match"
		default:
			status = fmt.Sprintf("duplicate scan (count %d)", outcome.Count)
		}
		http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape(status), http.StatusSeeOther)
	}
}

// ResolveDuplicateHandler resets one tracking number's scan count to one.
func ResolveDuplicateHandler(db *sqlite.DB, engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		trackingNumber := strings.TrimSpace(r.FormValue("tracking_number"))
		if !engine.ResolveDuplicate(trackingNumber) {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("unknown tracking number"), http.StatusSeeOther)
			return
		}
		if err := resetScanCountRow(r.Context(), db, trackingNumber); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("resolved but not saved"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("duplicate resolved"), http.StatusSeeOther)
	}
}

// RemoveEntryHandler deletes an entry and its scan counter.
func RemoveEntryHandler(db *sqlite.DB, engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		trackingNumber := strings.TrimSpace(r.FormValue("tracking_number"))
		if !engine.RemoveEntry(trackingNumber) {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("unknown tracking number"), http.StatusSeeOther)
			return
		}
		if err := deleteEntryRow(r.Context(), db, trackingNumber); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("removed but not saved"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("entry removed"), http.StatusSeeOther)
	}
}

// UploadReferenceHandler replaces the reference set from an uploaded CSV or
// spreadsheet. A parse failure leaves the previous set untouched.
func UploadReferenceHandler(db *sqlite.DB, engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("invalid upload"), http.StatusSeeOther)
			return
		}
		file, header, err := r.FormFile("reference_file")
		if err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("reference file is required"), http.StatusSeeOther)
			return
		}
		defer file.Close()

		var (
			records []ReferenceRecord
			mode    ParseMode
			skipped int
		)
		if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
			records, mode, skipped, err = ParseReferenceXLSX(file)
		} else {
			records, mode, skipped, err = ParseReferenceCSV(file)
		}
		if err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("reference file could not be parsed"), http.StatusSeeOther)
			return
		}

		if err := replaceReferenceRows(r.Context(), db, records); err != nil {
			http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape("failed to save reference data"), http.StatusSeeOther)
			return
		}
		engine.LoadReference(records)

		status := fmt.Sprintf("loaded %d reference records (%s columns, %d rows skipped)", len(records), mode, skipped)
		http.Redirect(w, r, "/desk/manifest?status="+url.QueryEscape(status), http.StatusSeeOther)
	}
}

// ExportManifestHandler streams the single-column tracking number export.
func ExportManifestHandler(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := ExportManifestCSV(engine.Entries())
		if err != nil {
			http.Error(w, "failed to build export", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+ExportFileName)
		_, _ = w.Write(out)
	}
}
