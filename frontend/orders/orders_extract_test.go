package orders

import (
	"testing"

	"slipdesk/infrastructure/webhook"
)

func TestExtractOrderDetails_LabeledFields(t *testing.T) {
	text := "Name: Asha Kumar\nPhone: 987-654-3210\nAddress: 12 Gandhi Street\nCoimbatore"

	got := ExtractOrderDetails(text, nil)
	if got.CustomerName != "Asha Kumar" {
		t.Fatalf("name = %q", got.CustomerName)
	}
	if got.Phone != "9876543210" {
		t.Fatalf("phone = %q", got.Phone)
	}
	if got.Address != "12 Gandhi Street\nCoimbatore" {
		t.Fatalf("address = %q", got.Address)
	}
}

func TestExtractOrderDetails_UnlabeledFallbacks(t *testing.T) {
	text := "Bala Murugan\n9123456780\n45 Anna Road Chennai"

	got := ExtractOrderDetails(text, nil)
	if got.CustomerName != "Bala Murugan" {
		t.Fatalf("first line should become the name, got %q", got.CustomerName)
	}
	if got.Phone != "9123456780" {
		t.Fatalf("phone = %q", got.Phone)
	}
	if got.Address != "45 Anna Road Chennai" {
		t.Fatalf("street-hint line should become the address, got %q", got.Address)
	}
}

func TestExtractOrderDetails_CatalogProducts(t *testing.T) {
	catalog := []webhook.Product{
		{Name: "Herbal Soap", Price: "₹150.00"},
		{Name: "Hair Oil", Price: "₹240.00"},
	}
	text := "Name: Asha\nI want hair oil\n\nAlso please send me some herbal soap qty: 3"

	got := ExtractOrderDetails(text, catalog)
	if len(got.Products) != 2 {
		t.Fatalf("expected both catalog mentions, got %d", len(got.Products))
	}
	if got.Products[0].ProductName != "Herbal Soap" || got.Products[0].Quantity != 3 {
		t.Fatalf("unexpected first product: %+v", got.Products[0])
	}
	if got.Products[0].Price.StringFixed(2) != "150.00" {
		t.Fatalf("currency symbol not stripped: %s", got.Products[0].Price)
	}
	if got.Products[1].Quantity != 1 {
		t.Fatalf("missing quantity should default to 1, got %d", got.Products[1].Quantity)
	}
}

func TestExtractOrderDetails_QuantityForms(t *testing.T) {
	catalog := []webhook.Product{{Name: "Soap", Price: "100"}}
	cases := []struct {
		name string
		text string
		qty  int64
	}{
		{name: "labeled", text: "soap qty: 4", qty: 4},
		{name: "trailer", text: "soap 2 pcs", qty: 2},
		{name: "times", text: "soap 5 x", qty: 5},
		{name: "none", text: "one soap please", qty: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractOrderDetails(tc.text, catalog)
			if len(got.Products) != 1 {
				t.Fatalf("product not found")
			}
			if got.Products[0].Quantity != tc.qty {
				t.Fatalf("qty = %d, want %d", got.Products[0].Quantity, tc.qty)
			}
		})
	}
}

func TestExtractOrderDetails_Empty(t *testing.T) {
	got := ExtractOrderDetails("   ", []webhook.Product{{Name: "Soap", Price: "100"}})
	if got.CustomerName != "" || got.Phone != "" || len(got.Products) != 0 {
		t.Fatalf("blank input should extract nothing: %+v", got)
	}
}
