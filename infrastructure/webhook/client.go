package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the upstream order/product/customer webhook endpoints.
// Schemas are owned by the upstream service; this client only moves JSON.
type Client struct {
	baseURL string
	httpc   *http.Client
	pacing  time.Duration
}

// NewClient builds a client. pacing is the fixed delay inserted between batch
// items so the downstream endpoint is never hit in parallel bursts.
func NewClient(baseURL string, pacing time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		pacing:  pacing,
	}
}

// OrderPayload is the order-creation webhook body.
type OrderPayload struct {
	OrderNumber  string        `json:"orderNumber"`
	CustomerName string        `json:"customerName"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	State        string        `json:"state"`
	Products     []ProductLine `json:"products"`
	ShippingCost string        `json:"shippingCost"`
	Subtotal     string        `json:"subtotal"`
	Total        string        `json:"total"`
	OrderDate    string        `json:"orderDate"`
	OrderTime    string        `json:"orderTime"`
}

// ProductLine is one product row inside an order payload.
type ProductLine struct {
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
}

// Product is one catalog entry from the product feed.
type Product struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// HistoryOrder is one past order in a customer history response.
type HistoryOrder struct {
	OrderNumber string `json:"order_number"`
	OrderDate   string `json:"order_date"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Total       string `json:"total"`
}

// CustomerHistory is the customer-order-history lookup response.
type CustomerHistory struct {
	CustomerName string         `json:"customer_name"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Orders       []HistoryOrder `json:"orders"`
}

// CreateOrder posts one order to the order-creation endpoint.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) error {
	return c.postJSON(ctx, "/webhook/order-creation", payload, nil)
}

// UpdateTracking pushes a tracking number for an order.
func (c *Client) UpdateTracking(ctx context.Context, orderNumber, trackingNumber string) error {
	body := map[string]string{
		"orderNumber":    orderNumber,
		"trackingNumber": trackingNumber,
	}
	return c.postJSON(ctx, "/webhook/update-tracking", body, nil)
}

// FetchProducts loads the product catalog feed.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, "/webhook/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CustomerHistory looks up order history for a phone number.
func (c *Client) CustomerHistory(ctx context.Context, phone string) (CustomerHistory, error) {
	var history CustomerHistory
	err := c.postJSON(ctx, "/webhook/customer-history", map[string]string{"phone": phone}, &history)
	return history, err
}

// BatchResult records the outcome of one item in a batch run.
type BatchResult struct {
	Index       int    `json:"index"`
	OrderNumber string `json:"orderNumber"`
	OK          bool   `json:"ok"`
	Error       string `json:"error,omitempty"`
}

// SubmitBatch posts payloads strictly one at a time with the configured pacing
// delay between items. A failed item is recorded and the run continues; there
// is no automatic retry. progress may be nil.
func (c *Client) SubmitBatch(ctx context.Context, payloads []OrderPayload, progress func(BatchResult)) []BatchResult {
	results := make([]BatchResult, 0, len(payloads))
	for i, payload := range payloads {
		if ctx.Err() != nil {
			return results
		}
		if i > 0 && c.pacing > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(c.pacing):
			}
		}

		res := BatchResult{Index: i, OrderNumber: payload.OrderNumber, OK: true}
		if err := c.CreateOrder(ctx, payload); err != nil {
			res.OK = false
			res.Error = err.Error()
		}
		results = append(results, res)
		if progress != nil {
			progress(res)
		}
	}
	return results
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook %s failed with status %d", req.URL.Path, resp.StatusCode)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
