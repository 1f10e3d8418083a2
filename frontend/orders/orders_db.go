package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"slipdesk/infrastructure/audit"
	"slipdesk/infrastructure/sqlite"
	"slipdesk/models"
)

const submissionHistoryLimit = 10

func CreateOrder(ctx context.Context, db *sqlite.DB, auditSvc *audit.Service, userID int64, order models.Order) (models.Order, error) {
	order.OrderNumber = strings.TrimSpace(order.OrderNumber)
	if order.OrderNumber == "" {
		return models.Order{}, errors.New("order number is required")
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusProcessing
	}
	if order.Quantity < 1 {
		order.Quantity = 1
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&order).Exec(ctx); err != nil {
			return err
		}
		if auditSvc != nil {
			return auditSvc.Write(ctx, tx, userID, "order.create", "orders", order.ID, nil, order)
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func ListOrders(ctx context.Context, db *sqlite.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&orders).
			Order("order_date DESC").
			Order("created_at DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func LoadOrderByID(ctx context.Context, db *sqlite.DB, id string) (models.Order, error) {
	var order models.Order
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&order).Where("o.id = ?", id).Limit(1).Scan(ctx)
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func LoadOrdersByIDs(ctx context.Context, db *sqlite.DB, ids []string) ([]models.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orders []models.Order
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&orders).
			Where("o.id IN (?)", bun.In(ids)).
			Order("order_date DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder rewrites the editable fields of an existing order.
func UpdateOrder(ctx context.Context, db *sqlite.DB, auditSvc *audit.Service, userID int64, order models.Order) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		var before models.Order
		if err := tx.NewSelect().Model(&before).Where("o.id = ?", order.ID).Limit(1).Scan(ctx); err != nil {
			return errors.New("order not found")
		}
		result, err := tx.NewUpdate().
			Model(&order).
			Column("status", "quantity", "shipping_mode", "address", "phone",
				"customer_name", "tracking_number", "product_name", "unit_price", "updated_at").
			Where("id = ?", order.ID).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.New("order not found")
		}
		if auditSvc != nil {
			return auditSvc.Write(ctx, tx, userID, "order.update", "orders", order.ID, before, order)
		}
		return nil
	})
}

// AppendOrderNote appends a timestamped line to the order's notes.
func AppendOrderNote(ctx context.Context, db *sqlite.DB, id, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return errors.New("note is empty")
	}
	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("02-01-2006 15:04"), note)
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		result, err := tx.ExecContext(ctx, `
UPDATE orders SET
  notes = CASE WHEN notes = '' THEN ? ELSE notes || char(10) || ? END,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?`, stamped, stamped, id)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.New("order not found")
		}
		return nil
	})
}

func SetOrderTracking(ctx context.Context, db *sqlite.DB, orderNumber, trackingNumber string) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `
UPDATE orders SET tracking_number = ?, status = ?, updated_at = CURRENT_TIMESTAMP
WHERE order_number = ?`, trackingNumber, models.OrderStatusInTransit, orderNumber)
		return err
	})
}

func DeleteOrder(ctx context.Context, db *sqlite.DB, auditSvc *audit.Service, userID int64, id string) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		var before models.Order
		if err := tx.NewSelect().Model(&before).Where("o.id = ?", id).Limit(1).Scan(ctx); err != nil {
			return errors.New("order not found")
		}
		if _, err := tx.NewDelete().Model((*models.Order)(nil)).Where("id = ?", id).Exec(ctx); err != nil {
			return err
		}
		if auditSvc != nil {
			return auditSvc.Write(ctx, tx, userID, "order.delete", "orders", id, before, nil)
		}
		return nil
	})
}

// SaveSubmissionRun records a batch run and trims history to the most
// recent ten runs.
func SaveSubmissionRun(ctx context.Context, db *sqlite.DB, run models.SubmissionRun) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&run).Exec(ctx); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
DELETE FROM submission_runs WHERE id NOT IN (
  SELECT id FROM submission_runs ORDER BY id DESC LIMIT ?
)`, submissionHistoryLimit)
		return err
	})
}

func ListSubmissionRuns(ctx context.Context, db *sqlite.DB) ([]models.SubmissionRun, error) {
	var runs []models.SubmissionRun
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&runs).
			Order("id DESC").
			Limit(submissionHistoryLimit).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
