package orders

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"slipdesk/frontend/settings"
	sessioncontext "slipdesk/frontend/shared/context"
	"slipdesk/frontend/slips"
	"slipdesk/infrastructure/audit"
	"slipdesk/infrastructure/sqlite"
	"slipdesk/infrastructure/webhook"
	"slipdesk/models"
)

// GetOrdersScreenHandler renders the order list with the capped submission
// history underneath.
func GetOrdersScreenHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderList, err := ListOrders(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load orders", http.StatusInternalServerError)
			return
		}
		runs, err := ListSubmissionRuns(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load submission history", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := OrdersScreen(orderList, runs, ExtractedOrder{}, r.URL.Query().Get("status"))
		if err := page.Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render orders screen", http.StatusInternalServerError)
			return
		}
	}
}

// GetEditOrderScreenHandler renders the per-order edit form.
func GetEditOrderScreenHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := LoadOrderByID(r.Context(), db, chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := EditOrderScreen(order, r.URL.Query().Get("status")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render order screen", http.StatusInternalServerError)
			return
		}
	}
}

// ExtractOrderHandler runs the paste-text heuristics against the upstream
// product catalog and re-renders the screen with the form prefilled. A
// catalog fetch failure still extracts name, phone and address.
func ExtractOrderHandler(db *sqlite.DB, client *webhook.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}

		catalog, err := client.FetchProducts(r.Context())
		if err != nil {
			catalog = nil
		}
		prefill := ExtractOrderDetails(r.FormValue("bulk_text"), catalog)

		orderList, err := ListOrders(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load orders", http.StatusInternalServerError)
			return
		}
		runs, err := ListSubmissionRuns(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load submission history", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := OrdersScreen(orderList, runs, prefill, "details extracted").Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render orders screen", http.StatusInternalServerError)
			return
		}
	}
}

// CreateOrderHandler stores a manually captured order.
func CreateOrderHandler(db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}

		order, err := orderFromForm(r)
		if err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		if _, err := CreateOrder(r.Context(), db, auditSvc, session.UserID, order); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("failed to create order"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("order created"), http.StatusSeeOther)
	}
}

// UpdateOrderHandler rewrites the editable fields of one order.
func UpdateOrderHandler(db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		id := chi.URLParam(r, "id")
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}

		order, err := orderFromForm(r)
		if err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		order.ID = id
		order.TrackingNumber = strings.TrimSpace(r.FormValue("tracking_number"))
		order.UpdatedAt = time.Now()
		if err := UpdateOrder(r.Context(), db, auditSvc, session.UserID, order); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("failed to update order"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("order updated"), http.StatusSeeOther)
	}
}

// AddOrderNoteHandler appends a timestamped note to one order.
func AddOrderNoteHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		if err := AppendOrderNote(r.Context(), db, id, r.FormValue("note")); err != nil {
			http.Redirect(w, r, "/desk/orders/"+id+"?status="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/orders/"+id+"?status="+url.QueryEscape("note added"), http.StatusSeeOther)
	}
}

// DeleteOrderHandler removes one order.
func DeleteOrderHandler(db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		id := chi.URLParam(r, "id")
		if err := DeleteOrder(r.Context(), db, auditSvc, session.UserID, id); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("failed to delete order"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("order deleted"), http.StatusSeeOther)
	}
}

// PrintOrderSlipsHandler renders the selected orders as courier slips.
func PrintOrderSlipsHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		ids := r.Form["order_id"]
		if len(ids) == 0 {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("select at least one order"), http.StatusSeeOther)
			return
		}
		itemsPerPage, err := strconv.Atoi(strings.TrimSpace(r.FormValue("items_per_page")))
		if err != nil {
			itemsPerPage = 1
		}

		orderList, err := LoadOrdersByIDs(r.Context(), db, ids)
		if err != nil || len(orderList) == 0 {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("orders not found"), http.StatusSeeOther)
			return
		}
		appSettings, err := settings.LoadAppSettings(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := slips.RenderSlipsPDF(shipmentRecordsFromOrders(orderList), itemsPerPage, slips.SlipOptions{
			SenderBlock:     appSettings.SenderBlock,
			UnitWeightGrams: appSettings.UnitWeightGrams,
		})
		if err != nil {
			http.Error(w, "failed to build slips pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=order-slips.pdf")
		_, _ = w.Write(pdfBytes)
	}
}

// SubmitOrdersHandler pushes the selected orders upstream one at a time.
func SubmitOrdersHandler(db *sqlite.DB, client *webhook.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}
		ids := r.Form["order_id"]
		if len(ids) == 0 {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("select at least one order"), http.StatusSeeOther)
			return
		}

		orderList, err := LoadOrdersByIDs(r.Context(), db, ids)
		if err != nil || len(orderList) == 0 {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("orders not found"), http.StatusSeeOther)
			return
		}
		appSettings, err := settings.LoadAppSettings(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}

		run, err := SubmitOrders(r.Context(), db, client, session.UserID, orderList, appSettings)
		if err != nil {
			http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape("submitted but history not saved"), http.StatusSeeOther)
			return
		}
		status := fmt.Sprintf("submitted %d of %d orders", run.Succeeded, run.Total)
		http.Redirect(w, r, "/desk/orders?status="+url.QueryEscape(status), http.StatusSeeOther)
	}
}

func orderFromForm(r *http.Request) (models.Order, error) {
	orderNumber := strings.TrimSpace(r.FormValue("order_number"))
	if orderNumber == "" {
		return models.Order{}, fmt.Errorf("order number is required")
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("quantity")), 10, 64)
	if err != nil || quantity < 1 {
		quantity = 1
	}

	unitPrice := decimal.Zero
	if raw := strings.TrimSpace(r.FormValue("unit_price")); raw != "" {
		unitPrice, err = decimal.NewFromString(raw)
		if err != nil {
			return models.Order{}, fmt.Errorf("invalid unit price")
		}
	}

	orderDate := time.Now()
	if raw := strings.TrimSpace(r.FormValue("order_date")); raw != "" {
		parsed, err := time.Parse("02-01-2006", raw)
		if err != nil {
			return models.Order{}, fmt.Errorf("order date must be DD-MM-YYYY")
		}
		orderDate = parsed
	}

	status := strings.TrimSpace(r.FormValue("status"))
	switch status {
	case "":
		status = models.OrderStatusProcessing
	case models.OrderStatusProcessing, models.OrderStatusInTransit,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		return models.Order{}, fmt.Errorf("unknown order status")
	}

	return models.Order{
		OrderNumber:  orderNumber,
		Status:       status,
		OrderDate:    orderDate,
		Quantity:     quantity,
		ShippingMode: strings.TrimSpace(r.FormValue("shipping_mode")),
		Address:      strings.TrimSpace(r.FormValue("address")),
		Phone:        strings.TrimSpace(r.FormValue("phone")),
		CustomerName: strings.TrimSpace(r.FormValue("customer_name")),
		ProductName:  strings.TrimSpace(r.FormValue("product_name")),
		UnitPrice:    unitPrice,
	}, nil
}

func shipmentRecordsFromOrders(orderList []models.Order) []slips.ShipmentRecord {
	records := make([]slips.ShipmentRecord, 0, len(orderList))
	for _, order := range orderList {
		records = append(records, slips.ShipmentRecord{
			Status:           order.Status,
			ShipDate:         order.OrderDate.Format("02-01-2006"),
			OrderID:          order.OrderNumber,
			Quantity:         order.Quantity,
			Mode:             order.ShippingMode,
			RecipientAddress: order.Address,
			RecipientPhone:   order.Phone,
			CustomerName:     order.CustomerName,
			ProductName:      order.ProductName,
			UnitPrice:        order.UnitPrice,
			TrackingNumber:   order.TrackingNumber,
		})
	}
	return records
}
