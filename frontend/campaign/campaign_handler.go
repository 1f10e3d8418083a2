package campaign

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"slipdesk/infrastructure/webhook"
)

var phoneDigits = regexp.MustCompile(`^\d{7,12}$`)

// GetCampaignScreenHandler renders the empty lookup form.
func GetCampaignScreenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := CampaignScreen(nil, CampaignStats{}, r.URL.Query().Get("status"))
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render campaign screen", http.StatusInternalServerError)
		return
	}
}

// LookupCustomerHandler fetches order history for a phone number and shows
// the repeat-purchase summary.
func LookupCustomerHandler(client *webhook.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/campaign?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		phone := strings.TrimSpace(r.FormValue("phone"))
		if !phoneDigits.MatchString(phone) {
			http.Redirect(w, r, "/desk/campaign?status="+url.QueryEscape("phone must be 7 to 12 digits"), http.StatusSeeOther)
			return
		}

		history, err := client.CustomerHistory(r.Context(), phone)
		if err != nil {
			http.Redirect(w, r, "/desk/campaign?status="+url.QueryEscape("customer lookup failed"), http.StatusSeeOther)
			return
		}

		stats := SummarizeHistory(history)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := CampaignScreen(&history, stats, "").Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render campaign screen", http.StatusInternalServerError)
			return
		}
	}
}
