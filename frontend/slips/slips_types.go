package slips

import "github.com/shopspring/decimal"

// ShipmentRecord is one courier slip's worth of data, parsed from a single
// pasted line. Never persisted; consumed directly by the layout and renderer.
type ShipmentRecord struct {
	Status           string
	ShipDate         string
	OrderID          string
	Quantity         int64
	Mode             string
	RecipientAddress string
	RecipientPhone   string
	CustomerName     string
	ProductName      string
	UnitPrice        decimal.Decimal
	TrackingNumber   string
}

// SlipOptions carries the fixed presentation inputs for a render run.
type SlipOptions struct {
	SenderBlock     string
	UnitWeightGrams int64
}
