package manifest

import (
	"context"

	"github.com/uptrace/bun"

	"slipdesk/infrastructure/sqlite"
	"slipdesk/models"
)

// The manifest survives restarts: every engine mutation is written through
// to sqlite and the engine is rebuilt from these rows on startup.

func RebuildEngine(ctx context.Context, db *sqlite.DB) (*Engine, error) {
	entries, reference, err := loadPersistedState(ctx, db)
	if err != nil {
		return nil, err
	}
	engine := NewEngine()
	engine.Restore(entries, reference)
	return engine, nil
}

func loadPersistedState(ctx context.Context, db *sqlite.DB) ([]Entry, []ReferenceRecord, error) {
	var (
		entryRows []models.ManifestEntry
		refRows   []models.ReferenceRecord
	)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&entryRows).Order("id DESC").Scan(ctx); err != nil {
			return err
		}
		return tx.NewSelect().Model(&refRows).Order("id ASC").Scan(ctx)
	})
	if err != nil {
		return nil, nil, err
	}

	entries := make([]Entry, 0, len(entryRows))
	for _, row := range entryRows {
		entries = append(entries, Entry{
			TrackingNumber: row.TrackingNumber,
			ScannedAt:      row.ScannedAt,
			ScanCount:      row.ScanCount,
			OrderID:        row.OrderID,
			CustomerName:   row.CustomerName,
			IsFound:        row.IsFound,
		})
	}
	reference := make([]ReferenceRecord, 0, len(refRows))
	for _, row := range refRows {
		reference = append(reference, ReferenceRecord{
			TrackingNumber: row.TrackingNumber,
			OrderID:        row.OrderID,
			CustomerName:   row.CustomerName,
		})
	}
	return entries, reference, nil
}

// saveScannedEntry upserts the row for one tracking number after a scan.
func saveScannedEntry(ctx context.Context, db *sqlite.DB, entry Entry) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO manifest_entries (tracking_number, scanned_at, scan_count, order_id, customer_name, is_found)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(tracking_number) DO UPDATE SET
  scan_count = excluded.scan_count,
  updated_at = CURRENT_TIMESTAMP`,
			entry.TrackingNumber, entry.ScannedAt, entry.ScanCount,
			entry.OrderID, entry.CustomerName, entry.IsFound)
		return err
	})
}

func resetScanCountRow(ctx context.Context, db *sqlite.DB, trackingNumber string) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `
UPDATE manifest_entries SET scan_count = 1, updated_at = CURRENT_TIMESTAMP
WHERE tracking_number = ?`, trackingNumber)
		return err
	})
}

func deleteEntryRow(ctx context.Context, db *sqlite.DB, trackingNumber string) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.ManifestEntry)(nil)).
			Where("tracking_number = ?", trackingNumber).
			Exec(ctx)
		return err
	})
}

// replaceReferenceRows swaps the reference set wholesale and re-evaluates
// the persisted match fields in the same transaction.
func replaceReferenceRows(ctx context.Context, db *sqlite.DB, records []ReferenceRecord) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reference_records`); err != nil {
			return err
		}
		for _, record := range records {
			if _, err := tx.NewInsert().Model(&models.ReferenceRecord{
				TrackingNumber: record.TrackingNumber,
				OrderID:        record.OrderID,
				CustomerName:   record.CustomerName,
			}).Exec(ctx); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx, `
UPDATE manifest_entries SET
  is_found = EXISTS (SELECT 1 FROM reference_records rr WHERE rr.tracking_number = manifest_entries.tracking_number),
  order_id = COALESCE((SELECT rr.order_id FROM reference_records rr WHERE rr.tracking_number = manifest_entries.tracking_number), ''),
  customer_name = COALESCE((SELECT rr.customer_name FROM reference_records rr WHERE rr.tracking_number = manifest_entries.tracking_number), ''),
  updated_at = CURRENT_TIMESTAMP`)
		return err
	})
}
