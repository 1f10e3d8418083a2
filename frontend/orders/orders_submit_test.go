package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"slipdesk/frontend/settings"
	"slipdesk/infrastructure/webhook"
	"slipdesk/models"
)

func testAppSettings() settings.AppSettings {
	return settings.AppSettings{
		HomeState:         "Tamil Nadu",
		HomeShippingCost:  decimal.NewFromInt(50),
		OtherShippingCost: decimal.NewFromInt(60),
	}
}

func TestBuildOrderPayloads(t *testing.T) {
	orderDate := time.Date(2026, 3, 12, 14, 30, 0, 0, time.UTC)
	orderList := []models.Order{
		{
			OrderNumber:  "ORD-1",
			CustomerName: "Asha",
			Address:      "12 Gandhi Street, Coimbatore, Tamil Nadu",
			Quantity:     2,
			UnitPrice:    decimal.RequireFromString("199.50"),
			ProductName:  "Herbal Soap",
			OrderDate:    orderDate,
		},
		{
			OrderNumber: "ORD-2",
			Address:     "5 MG Road, Bengaluru, Karnataka",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(100),
			OrderDate:   orderDate,
		},
	}

	payloads := BuildOrderPayloads(orderList, testAppSettings())
	if len(payloads) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(payloads))
	}

	home := payloads[0]
	if home.State != "Tamil Nadu" || home.ShippingCost != "50.00" {
		t.Fatalf("home-state shipping not applied: %+v", home)
	}
	if home.Subtotal != "399.00" || home.Total != "449.00" {
		t.Fatalf("totals wrong: subtotal %s total %s", home.Subtotal, home.Total)
	}
	if home.OrderDate != "12-03-2026" {
		t.Fatalf("order date format: %s", home.OrderDate)
	}
	if len(home.Products) != 1 || home.Products[0].Quantity != 2 || home.Products[0].Price != "199.50" {
		t.Fatalf("product line wrong: %+v", home.Products)
	}

	other := payloads[1]
	if other.State != "" || other.ShippingCost != "60.00" {
		t.Fatalf("other-state shipping not applied: %+v", other)
	}
	if other.Total != "160.00" {
		t.Fatalf("other total = %s", other.Total)
	}
}

func TestSubmitOrders_RecordsRunAndContinuesPastFailures(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	var mu sync.Mutex
	var received []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload webhook.OrderPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		received = append(received, payload.OrderNumber)
		mu.Unlock()
		if strings.HasSuffix(payload.OrderNumber, "FAIL") {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := webhook.NewClient(server.URL, 0)
	orderList := []models.Order{
		{OrderNumber: "ORD-1", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		{OrderNumber: "ORD-FAIL", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		{OrderNumber: "ORD-3", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
	}

	run, err := SubmitOrders(ctx, db, client, 1, orderList, testAppSettings())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if run.Total != 3 || run.Succeeded != 2 || run.Failed != 1 {
		t.Fatalf("run counts wrong: %+v", run)
	}

	mu.Lock()
	got := append([]string(nil), received...)
	mu.Unlock()
	if len(got) != 3 || got[0] != "ORD-1" || got[1] != "ORD-FAIL" || got[2] != "ORD-3" {
		t.Fatalf("failure must not stop the batch, got %v", got)
	}

	var results []webhook.BatchResult
	if err := json.Unmarshal([]byte(run.DetailsJSON), &results); err != nil {
		t.Fatalf("details json: %v", err)
	}
	if !results[0].OK || results[1].OK || !results[2].OK {
		t.Fatalf("per-item outcomes wrong: %+v", results)
	}

	runs, err := ListSubmissionRuns(ctx, db)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Succeeded != 2 {
		t.Fatalf("run not persisted: %+v", runs)
	}
}
