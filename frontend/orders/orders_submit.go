package orders

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"slipdesk/frontend/settings"
	"slipdesk/infrastructure/sqlite"
	"slipdesk/infrastructure/webhook"
	"slipdesk/models"
)

// BuildOrderPayloads converts stored orders into webhook bodies. Shipping
// cost depends on whether the address mentions the home state.
func BuildOrderPayloads(orders []models.Order, appSettings settings.AppSettings) []webhook.OrderPayload {
	payloads := make([]webhook.OrderPayload, 0, len(orders))
	for _, order := range orders {
		state := ""
		if strings.Contains(strings.ToLower(order.Address), strings.ToLower(appSettings.HomeState)) {
			state = appSettings.HomeState
		}
		shipping := appSettings.ShippingCostFor(state)
		subtotal := order.UnitPrice.Mul(decimal.NewFromInt(order.Quantity))
		total := subtotal.Add(shipping)

		payloads = append(payloads, webhook.OrderPayload{
			OrderNumber:  order.OrderNumber,
			CustomerName: order.CustomerName,
			Phone:        order.Phone,
			Address:      order.Address,
			State:        state,
			Products: []webhook.ProductLine{{
				ProductName: order.ProductName,
				Quantity:    order.Quantity,
				Price:       order.UnitPrice.StringFixed(2),
			}},
			ShippingCost: shipping.StringFixed(2),
			Subtotal:     subtotal.StringFixed(2),
			Total:        total.StringFixed(2),
			OrderDate:    order.OrderDate.Format("02-01-2006"),
			OrderTime:    order.OrderDate.Format("15:04"),
		})
	}
	return payloads
}

// SubmitOrders pushes the orders upstream one at a time and records the run
// in the capped submission history. Failed items are recorded, never
// retried, and do not stop the run.
func SubmitOrders(ctx context.Context, db *sqlite.DB, client *webhook.Client, userID int64, orders []models.Order, appSettings settings.AppSettings) (models.SubmissionRun, error) {
	payloads := BuildOrderPayloads(orders, appSettings)
	results := client.SubmitBatch(ctx, payloads, nil)

	run := models.SubmissionRun{
		UserID: userID,
		Total:  int64(len(results)),
	}
	for _, result := range results {
		if result.OK {
			run.Succeeded++
		} else {
			run.Failed++
		}
	}
	if details, err := json.Marshal(results); err == nil {
		run.DetailsJSON = string(details)
	}

	if err := SaveSubmissionRun(ctx, db, run); err != nil {
		return run, err
	}
	return run, nil
}
