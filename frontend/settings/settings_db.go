package settings

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"slipdesk/infrastructure/sqlite"
)

// AppSettings is the single shared configuration row edited from the
// settings screen.
type AppSettings struct {
	SenderBlock       string
	UnitWeightGrams   int64
	HomeState         string
	HomeShippingCost  decimal.Decimal
	OtherShippingCost decimal.Decimal
}

// ShippingCostFor picks the per-order shipping cost based on the recipient
// state; the home state ships cheaper than the rest of the country.
func (s AppSettings) ShippingCostFor(state string) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(state), strings.TrimSpace(s.HomeState)) {
		return s.HomeShippingCost
	}
	return s.OtherShippingCost
}

func LoadAppSettings(ctx context.Context, db *sqlite.DB) (AppSettings, error) {
	var (
		settings  AppSettings
		homeCost  string
		otherCost string
	)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT sender_block, unit_weight_grams, home_state, home_shipping_cost, other_shipping_cost
FROM app_settings WHERE id = 1`).
			Scan(ctx, &settings.SenderBlock, &settings.UnitWeightGrams, &settings.HomeState, &homeCost, &otherCost)
	})
	if err != nil {
		return AppSettings{}, err
	}
	settings.HomeShippingCost = parseMoney(homeCost)
	settings.OtherShippingCost = parseMoney(otherCost)
	return settings, nil
}

func SaveAppSettings(ctx context.Context, db *sqlite.DB, settings AppSettings) error {
	if settings.UnitWeightGrams <= 0 {
		settings.UnitWeightGrams = 450
	}
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO app_settings (id, sender_block, unit_weight_grams, home_state, home_shipping_cost, other_shipping_cost, updated_at)
VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  sender_block = excluded.sender_block,
  unit_weight_grams = excluded.unit_weight_grams,
  home_state = excluded.home_state,
  home_shipping_cost = excluded.home_shipping_cost,
  other_shipping_cost = excluded.other_shipping_cost,
  updated_at = CURRENT_TIMESTAMP`,
			settings.SenderBlock, settings.UnitWeightGrams, settings.HomeState,
			settings.HomeShippingCost.String(), settings.OtherShippingCost.String())
		return err
	})
}

// parseMoney treats unparseable amounts as zero rather than failing a page
// load over a bad settings row.
func parseMoney(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return amount
}
