package tracking

import (
	"net/http"
	"net/url"

	"slipdesk/frontend/orders"
	"slipdesk/infrastructure/sqlite"
	"slipdesk/infrastructure/webhook"
)

// GetTrackingScreenHandler renders the update form with recent history.
func GetTrackingScreenHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updates, err := ListTrackingUpdates(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load tracking history", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := TrackingScreen(updates, r.URL.Query().Get("status")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render tracking screen", http.StatusInternalServerError)
			return
		}
	}
}

// UpdateTrackingHandler saves the tracking number locally first, then pushes
// it upstream. A failed push keeps the local rows and reports the failure;
// the operator resubmits manually.
func UpdateTrackingHandler(db *sqlite.DB, client *webhook.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		orderNumber := r.FormValue("order_number")
		trackingNumber := r.FormValue("tracking_number")

		update, err := SaveTrackingUpdate(r.Context(), db, orderNumber, trackingNumber)
		if err != nil {
			http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		if err := orders.SetOrderTracking(r.Context(), db, update.OrderNumber, update.TrackingNumber); err != nil {
			http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape("saved but local order not updated"), http.StatusSeeOther)
			return
		}

		if err := client.UpdateTracking(r.Context(), update.OrderNumber, update.TrackingNumber); err != nil {
			http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape("saved locally, upstream push failed"), http.StatusSeeOther)
			return
		}
		if err := MarkTrackingSynced(r.Context(), db, update.ID); err != nil {
			http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape("pushed but sync flag not saved"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape("tracking updated"), http.StatusSeeOther)
	}
}

// ClearTrackingHistoryHandler wipes the local history list.
func ClearTrackingHistoryHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ClearTrackingHistory(r.Context(), db); err != nil {
			http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape("failed to clear history"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/tracking?status="+url.QueryEscape("history cleared"), http.StatusSeeOther)
	}
}
