package orders

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"slipdesk/infrastructure/webhook"
)

// ExtractedOrder is the best-effort result of parsing a pasted customer
// message. Missing pieces stay empty; the operator fixes them in the form.
type ExtractedOrder struct {
	CustomerName string
	Phone        string
	Address      string
	Products     []ExtractedProduct
}

type ExtractedProduct struct {
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
}

var (
	namePattern    = regexp.MustCompile(`(?i)name\s*:\s*([^\n,]+)`)
	firstLine      = regexp.MustCompile(`^([^\n,]+)`)
	phonePattern   = regexp.MustCompile(`(?:\+?\d{1,3}[- ]?)?\(?\d{3}\)?[- ]?\d{3}[- ]?\d{4}`)
	addressPattern = regexp.MustCompile(`(?i)address\s*:\s*(.+(?:\n.+)*)`)
	nonDigits      = regexp.MustCompile(`[^0-9]`)
	nonNumeric     = regexp.MustCompile(`[^0-9.]`)

	qtyLabeled = regexp.MustCompile(`(?i)(?:qty|quantity|pcs)\s*:?\s*(\d+)`)
	qtyTrailer = regexp.MustCompile(`(?i)\b(\d+)\s+(?:qty|piece|pc|pcs)\b`)
	qtyTimes   = regexp.MustCompile(`(?i)\b(\d+)\s*x\b`)
)

// Street-ish words that mark a line as part of the address when no
// "address:" label is present.
var addressHints = []string{"street", "road", "avenue", "lane", "drive", "floor"}

var addressShape = regexp.MustCompile(`\b\d+[a-z]?\s+[a-z\s]+,\s*[a-z\s]+`)

// ExtractOrderDetails pulls customer identity, address and catalog product
// mentions out of free-form pasted text.
func ExtractOrderDetails(text string, catalog []webhook.Product) ExtractedOrder {
	var out ExtractedOrder
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}
	lower := strings.ToLower(text)

	if m := namePattern.FindStringSubmatch(text); m != nil {
		out.CustomerName = strings.TrimSpace(m[1])
	} else if m := firstLine.FindStringSubmatch(text); m != nil {
		out.CustomerName = strings.TrimSpace(m[1])
	}

	if m := phonePattern.FindString(text); m != "" {
		out.Phone = nonDigits.ReplaceAllString(m, "")
	}

	if m := addressPattern.FindStringSubmatch(text); m != nil {
		out.Address = strings.TrimSpace(m[1])
	} else {
		var addressLines []string
		for _, line := range strings.Split(text, "\n") {
			l := strings.ToLower(line)
			hinted := false
			for _, hint := range addressHints {
				if strings.Contains(l, hint) {
					hinted = true
					break
				}
			}
			if hinted || addressShape.MatchString(l) {
				addressLines = append(addressLines, line)
			}
		}
		out.Address = strings.Join(addressLines, "\n")
	}

	for _, product := range catalog {
		nameLower := strings.ToLower(product.Name)
		idx := strings.Index(lower, nameLower)
		if idx < 0 {
			continue
		}
		start := idx - 20
		if start < 0 {
			start = 0
		}
		end := idx + len(nameLower) + 30
		if end > len(lower) {
			end = len(lower)
		}
		nearby := lower[start:end]

		qty := int64(1)
		for _, pattern := range []*regexp.Regexp{qtyLabeled, qtyTrailer, qtyTimes} {
			if m := pattern.FindStringSubmatch(nearby); m != nil {
				if parsed, err := strconv.ParseInt(m[1], 10, 64); err == nil && parsed > 0 {
					qty = parsed
				}
				break
			}
		}

		out.Products = append(out.Products, ExtractedProduct{
			ProductName: product.Name,
			Quantity:    qty,
			Price:       parsePrice(product.Price),
		})
	}
	return out
}

// parsePrice strips currency symbols and separators; anything unparseable
// becomes zero.
func parsePrice(raw string) decimal.Decimal {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return price
}
