package campaign

import (
	"testing"

	"slipdesk/infrastructure/webhook"
)

func TestSummarizeHistory(t *testing.T) {
	history := webhook.CustomerHistory{
		CustomerName: "Asha",
		Phone:        "9876543210",
		Orders: []webhook.HistoryOrder{
			{OrderNumber: "ORD-3", OrderDate: "10-03-2026", Quantity: 2, Total: "450.00"},
			{OrderNumber: "ORD-2", OrderDate: "05-01-2026", Quantity: 1, Total: "199.50"},
			{OrderNumber: "ORD-1", OrderDate: "20-11-2025", Quantity: 3, Total: "not-a-number"},
		},
	}

	stats := SummarizeHistory(history)
	if stats.OrderCount != 3 {
		t.Fatalf("order count = %d", stats.OrderCount)
	}
	if stats.TotalQuantity != 6 {
		t.Fatalf("total quantity = %d", stats.TotalQuantity)
	}
	if stats.TotalSpent.StringFixed(2) != "649.50" {
		t.Fatalf("total spent = %s, bad totals must count as zero", stats.TotalSpent)
	}
	if stats.LastOrderDate != "10-03-2026" {
		t.Fatalf("last order date = %q", stats.LastOrderDate)
	}
	if !stats.IsRepeat {
		t.Fatalf("three orders should flag a repeat customer")
	}
}

func TestSummarizeHistory_SingleOrder(t *testing.T) {
	stats := SummarizeHistory(webhook.CustomerHistory{
		Orders: []webhook.HistoryOrder{{OrderNumber: "ORD-1", Quantity: 1, Total: "100"}},
	})
	if stats.IsRepeat {
		t.Fatalf("one order is not a repeat customer")
	}
}

func TestSummarizeHistory_Empty(t *testing.T) {
	stats := SummarizeHistory(webhook.CustomerHistory{})
	if stats.OrderCount != 0 || stats.IsRepeat || !stats.TotalSpent.IsZero() {
		t.Fatalf("empty history should produce zero stats: %+v", stats)
	}
}
