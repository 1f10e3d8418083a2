package tracking

import (
	"context"
	"errors"
	"strings"

	"github.com/uptrace/bun"

	"slipdesk/infrastructure/sqlite"
	"slipdesk/models"
)

const trackingHistoryLimit = 50

// SaveTrackingUpdate records the push locally before any network call and
// trims history to the most recent fifty rows.
func SaveTrackingUpdate(ctx context.Context, db *sqlite.DB, orderNumber, trackingNumber string) (models.TrackingUpdate, error) {
	update := models.TrackingUpdate{
		OrderNumber:    strings.TrimSpace(orderNumber),
		TrackingNumber: strings.TrimSpace(trackingNumber),
	}
	if update.OrderNumber == "" || update.TrackingNumber == "" {
		return models.TrackingUpdate{}, errors.New("order number and tracking number are required")
	}

	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&update).Exec(ctx); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
DELETE FROM tracking_updates WHERE id NOT IN (
  SELECT id FROM tracking_updates ORDER BY id DESC LIMIT ?
)`, trackingHistoryLimit)
		return err
	})
	if err != nil {
		return models.TrackingUpdate{}, err
	}
	return update, nil
}

func MarkTrackingSynced(ctx context.Context, db *sqlite.DB, id int64) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `UPDATE tracking_updates SET synced = 1 WHERE id = ?`, id)
		return err
	})
}

func ListTrackingUpdates(ctx context.Context, db *sqlite.DB) ([]models.TrackingUpdate, error) {
	var updates []models.TrackingUpdate
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&updates).
			Order("id DESC").
			Limit(trackingHistoryLimit).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return updates, nil
}

func ClearTrackingHistory(ctx context.Context, db *sqlite.DB) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM tracking_updates`)
		return err
	})
}
