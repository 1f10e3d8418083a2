package settings

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"slipdesk/infrastructure/sqlite"
)

func SettingsPageHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := LoadAppSettings(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := SettingsPage(settings, r.URL.Query().Get("status")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render settings page", http.StatusInternalServerError)
			return
		}
	}
}

func SettingsUpdateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/settings?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}

		unitWeight, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("unit_weight_grams")), 10, 64)
		if err != nil || unitWeight <= 0 {
			http.Redirect(w, r, "/desk/settings?status="+url.QueryEscape("unit weight must be a positive number"), http.StatusSeeOther)
			return
		}
		homeCost, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("home_shipping_cost")))
		if err != nil {
			http.Redirect(w, r, "/desk/settings?status="+url.QueryEscape("invalid home shipping cost"), http.StatusSeeOther)
			return
		}
		otherCost, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("other_shipping_cost")))
		if err != nil {
			http.Redirect(w, r, "/desk/settings?status="+url.QueryEscape("invalid shipping cost"), http.StatusSeeOther)
			return
		}

		settings := AppSettings{
			SenderBlock:       strings.TrimSpace(r.FormValue("sender_block")),
			UnitWeightGrams:   unitWeight,
			HomeState:         strings.TrimSpace(r.FormValue("home_state")),
			HomeShippingCost:  homeCost,
			OtherShippingCost: otherCost,
		}
		if err := SaveAppSettings(r.Context(), db, settings); err != nil {
			http.Redirect(w, r, "/desk/settings?status="+url.QueryEscape("save failed"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/settings?status=saved", http.StatusSeeOther)
	}
}
