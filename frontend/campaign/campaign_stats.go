package campaign

import (
	"strings"

	"github.com/shopspring/decimal"

	"slipdesk/infrastructure/webhook"
)

// CampaignStats is the repeat-purchase summary for one customer.
type CampaignStats struct {
	OrderCount    int
	TotalQuantity int64
	TotalSpent    decimal.Decimal
	LastOrderDate string
	IsRepeat      bool
}

// SummarizeHistory derives the campaign counters from upstream history.
// Unparseable totals count as zero; the order list is upstream-ordered, so
// the first row is treated as the most recent.
func SummarizeHistory(history webhook.CustomerHistory) CampaignStats {
	stats := CampaignStats{
		OrderCount: len(history.Orders),
		TotalSpent: decimal.Zero,
	}
	for i, order := range history.Orders {
		stats.TotalQuantity += order.Quantity
		if total, err := decimal.NewFromString(strings.TrimSpace(order.Total)); err == nil {
			stats.TotalSpent = stats.TotalSpent.Add(total)
		}
		if i == 0 {
			stats.LastOrderDate = order.OrderDate
		}
	}
	stats.IsRepeat = stats.OrderCount > 1
	return stats
}
