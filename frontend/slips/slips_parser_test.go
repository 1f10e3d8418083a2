package slips

import "testing"

func TestParseShipmentLine(t *testing.T) {
	line := "Shipped\t12-03-2026\tORD-1001\t3\t\tManual\t12 Gandhi Street\tCoimbatore Phone 9876543210"

	record, ok := ParseShipmentLine(line)
	if !ok {
		t.Fatalf("expected line to parse")
	}
	if record.Status != "Shipped" {
		t.Fatalf("status = %q", record.Status)
	}
	if record.ShipDate != "12-03-2026" {
		t.Fatalf("ship date = %q", record.ShipDate)
	}
	if record.OrderID != "ORD-1001" {
		t.Fatalf("order id = %q", record.OrderID)
	}
	if record.Quantity != 3 {
		t.Fatalf("quantity = %d", record.Quantity)
	}
	if record.Mode != "Manual" {
		t.Fatalf("mode = %q", record.Mode)
	}
	if record.RecipientPhone != "9876543210" {
		t.Fatalf("phone = %q", record.RecipientPhone)
	}
	if record.RecipientAddress != "12 Gandhi Street Coimbatore" {
		t.Fatalf("address = %q", record.RecipientAddress)
	}
}

func TestParseShipmentLine_PhoneVariants(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		phone   string
	}{
		{name: "equals form", payload: "Anna Nagar Phone=9123456780", phone: "9123456780"},
		{name: "lowercase", payload: "Anna Nagar phone 9123456780", phone: "9123456780"},
		{name: "no phone", payload: "Anna Nagar Chennai", phone: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, ok := ParseShipmentLine("S\td\to\t1\t\tm\t" + tc.payload)
			if !ok {
				t.Fatalf("expected line to parse")
			}
			if record.RecipientPhone != tc.phone {
				t.Fatalf("phone = %q, want %q", record.RecipientPhone, tc.phone)
			}
			for _, r := range record.RecipientAddress {
				if r >= '0' && r <= '9' && tc.phone != "" {
					t.Fatalf("phone digits leaked into address: %q", record.RecipientAddress)
				}
			}
		})
	}
}

func TestParseShipmentLine_ShortLineDropped(t *testing.T) {
	if _, ok := ParseShipmentLine("Shipped\t12-03-2026\tORD-1\t1\t\tManual"); ok {
		t.Fatalf("expected line with fewer than 7 fields to be dropped")
	}
}

func TestParseShipmentLine_QuantityDefaults(t *testing.T) {
	cases := []struct {
		name string
		qty  string
	}{
		{name: "empty", qty: ""},
		{name: "garbage", qty: "abc"},
		{name: "zero", qty: "0"},
		{name: "negative", qty: "-2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, ok := ParseShipmentLine("S\td\to\t" + tc.qty + "\t\tm\taddr")
			if !ok {
				t.Fatalf("expected line to parse")
			}
			if record.Quantity != 1 {
				t.Fatalf("quantity = %d, want default 1", record.Quantity)
			}
		})
	}
}

func TestParseShipmentText(t *testing.T) {
	text := "Shipped\t01-01-2026\tORD-1\t1\t\tManual\taddr one\r\n" +
		"\n" +
		"too\tshort\n" +
		"Shipped\t02-01-2026\tORD-2\t2\t\tManual\taddr two\n"

	records := ParseShipmentText(text)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].OrderID != "ORD-1" || records[1].OrderID != "ORD-2" {
		t.Fatalf("unexpected order ids: %q, %q", records[0].OrderID, records[1].OrderID)
	}
}
