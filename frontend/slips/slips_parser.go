package slips

import (
	"regexp"
	"strconv"
	"strings"
)

// Phone appears inside the free-text address payload as "Phone 9876..." or
// "Phone=9876...", any case.
var phonePattern = regexp.MustCompile(`(?i)phone\s*=?\s*(\d+)`)

const minShipmentFields = 7

// ParseShipmentLine parses one tab-delimited shipment line with positional
// schema status, date, orderId, quantity, reserved, mode, address tokens.
// Lines with fewer than 7 fields are dropped, not reported.
func ParseShipmentLine(line string) (ShipmentRecord, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < minShipmentFields {
		return ShipmentRecord{}, false
	}

	qtyText := strings.TrimSpace(fields[3])
	if qtyText == "" {
		qtyText = "1"
	}
	qty, err := strconv.ParseInt(qtyText, 10, 64)
	if err != nil || qty < 1 {
		qty = 1
	}

	payload := strings.TrimSpace(strings.Join(fields[6:], " "))
	phone := ""
	if m := phonePattern.FindStringSubmatch(payload); m != nil {
		phone = m[1]
		payload = strings.TrimSpace(phonePattern.ReplaceAllString(payload, ""))
	}

	return ShipmentRecord{
		Status:           strings.TrimSpace(fields[0]),
		ShipDate:         strings.TrimSpace(fields[1]),
		OrderID:          strings.TrimSpace(fields[2]),
		Quantity:         qty,
		Mode:             strings.TrimSpace(fields[5]),
		RecipientAddress: payload,
		RecipientPhone:   phone,
	}, true
}

// ParseShipmentText parses a whole paste buffer, one record per line.
// Blank and malformed lines are skipped.
func ParseShipmentText(text string) []ShipmentRecord {
	var records []ShipmentRecord
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, ok := ParseShipmentLine(line)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}
