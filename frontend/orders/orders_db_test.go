package orders

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"slipdesk/infrastructure/audit"
	"slipdesk/infrastructure/sqlite"
	"slipdesk/models"
)

func openOrdersTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "orders-test.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	migrationsDir := filepath.Join(filepath.Dir(file), "..", "..", "infrastructure", "sqlite", "migrations")
	if err := sqlite.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestCreateOrder_DefaultsAndAudit(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()
	auditSvc := audit.NewService()

	created, err := CreateOrder(ctx, db, auditSvc, 1, models.Order{
		OrderNumber: "ORD-1001",
		UnitPrice:   decimal.RequireFromString("199.00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Status != models.OrderStatusProcessing {
		t.Fatalf("status = %q, want processing default", created.Status)
	}
	if created.Quantity != 1 {
		t.Fatalf("quantity = %d, want default 1", created.Quantity)
	}

	loaded, err := LoadOrderByID(ctx, db, created.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.UnitPrice.Equal(created.UnitPrice) {
		t.Fatalf("unit price round trip: %s", loaded.UnitPrice)
	}
}

func TestCreateOrder_RequiresOrderNumber(t *testing.T) {
	db := openOrdersTestDB(t)
	if _, err := CreateOrder(context.Background(), db, nil, 1, models.Order{}); err == nil {
		t.Fatalf("expected error for missing order number")
	}
}

func TestListOrders_DateDescending(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	if _, err := CreateOrder(ctx, db, nil, 1, models.Order{OrderNumber: "ORD-OLD", OrderDate: older}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := CreateOrder(ctx, db, nil, 1, models.Order{OrderNumber: "ORD-NEW", OrderDate: newer}); err != nil {
		t.Fatalf("create: %v", err)
	}

	orderList, err := ListOrders(ctx, db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orderList) != 2 || orderList[0].OrderNumber != "ORD-NEW" {
		t.Fatalf("expected newest first, got %v", orderList)
	}
}

func TestUpdateOrder(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	created, err := CreateOrder(ctx, db, nil, 1, models.Order{OrderNumber: "ORD-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Status = models.OrderStatusInTransit
	created.TrackingNumber = "TRK1"
	created.UpdatedAt = time.Now()
	if err := UpdateOrder(ctx, db, nil, 1, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := LoadOrderByID(ctx, db, created.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Status != models.OrderStatusInTransit || loaded.TrackingNumber != "TRK1" {
		t.Fatalf("update not persisted: %+v", loaded)
	}

	missing := created
	missing.ID = "no-such-order"
	if err := UpdateOrder(ctx, db, nil, 1, missing); err == nil {
		t.Fatalf("expected error for unknown order")
	}
}

func TestAppendOrderNote(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	created, err := CreateOrder(ctx, db, nil, 1, models.Order{OrderNumber: "ORD-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := AppendOrderNote(ctx, db, created.ID, "called customer"); err != nil {
		t.Fatalf("first note: %v", err)
	}
	if err := AppendOrderNote(ctx, db, created.ID, "confirmed address"); err != nil {
		t.Fatalf("second note: %v", err)
	}

	loaded, err := LoadOrderByID(ctx, db, created.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	lines := strings.Split(loaded.Notes, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 note lines, got %q", loaded.Notes)
	}
	if !strings.Contains(lines[0], "called customer") || !strings.HasPrefix(lines[0], "[") {
		t.Fatalf("note not timestamped: %q", lines[0])
	}

	if err := AppendOrderNote(ctx, db, created.ID, "   "); err == nil {
		t.Fatalf("expected error for blank note")
	}
}

func TestDeleteOrder(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	created, err := CreateOrder(ctx, db, nil, 1, models.Order{OrderNumber: "ORD-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := DeleteOrder(ctx, db, nil, 1, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := LoadOrderByID(ctx, db, created.ID); err == nil {
		t.Fatalf("expected load failure after delete")
	}
}

func TestSaveSubmissionRun_CapsHistoryAtTen(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		run := models.SubmissionRun{
			UserID:    1,
			Total:     int64(i + 1),
			Succeeded: int64(i + 1),
		}
		if err := SaveSubmissionRun(ctx, db, run); err != nil {
			t.Fatalf("save run %d: %v", i, err)
		}
	}

	runs, err := ListSubmissionRuns(ctx, db)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(runs))
	}
	if runs[0].Total != 13 {
		t.Fatalf("expected most recent run first, got total %d", runs[0].Total)
	}
	if runs[9].Total != 4 {
		t.Fatalf("expected oldest surviving run to be the 4th, got total %d", runs[9].Total)
	}
}

func TestSetOrderTracking(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	created, err := CreateOrder(ctx, db, nil, 1, models.Order{OrderNumber: "ORD-7"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := SetOrderTracking(ctx, db, "ORD-7", "TRK777"); err != nil {
		t.Fatalf("set tracking: %v", err)
	}

	loaded, err := LoadOrderByID(ctx, db, created.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.TrackingNumber != "TRK777" {
		t.Fatalf("tracking not set: %q", loaded.TrackingNumber)
	}
	if loaded.Status != models.OrderStatusInTransit {
		t.Fatalf("status should move to in-transit, got %q", loaded.Status)
	}
}

func TestLoadOrdersByIDs(t *testing.T) {
	db := openOrdersTestDB(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		created, err := CreateOrder(ctx, db, nil, 1, models.Order{OrderNumber: fmt.Sprintf("ORD-%d", i)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if i < 2 {
			ids = append(ids, created.ID)
		}
	}

	orderList, err := LoadOrdersByIDs(ctx, db, ids)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(orderList) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orderList))
	}
}
