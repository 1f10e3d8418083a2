package settings

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shopspring/decimal"

	"slipdesk/infrastructure/sqlite"
)

func openSettingsTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "settings-test.db")
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

func TestAppSettings_SeededDefaults(t *testing.T) {
	db := openSettingsTestDB(t)

	settings, err := LoadAppSettings(context.Background(), db)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.UnitWeightGrams != 450 {
		t.Fatalf("expected seeded unit weight 450, got %d", settings.UnitWeightGrams)
	}
	if settings.HomeState != "Tamil Nadu" {
		t.Fatalf("expected seeded home state, got %q", settings.HomeState)
	}
	if settings.SenderBlock == "" {
		t.Fatalf("expected seeded sender block")
	}
}

func TestSaveAppSettings_Upsert(t *testing.T) {
	db := openSettingsTestDB(t)

	updated := AppSettings{
		SenderBlock:       "Acme Dispatch\nSecond Line",
		UnitWeightGrams:   500,
		HomeState:         "Kerala",
		HomeShippingCost:  decimal.NewFromInt(45),
		OtherShippingCost: decimal.NewFromInt(70),
	}
	if err := SaveAppSettings(context.Background(), db, updated); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	settings, err := LoadAppSettings(context.Background(), db)
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if settings.SenderBlock != updated.SenderBlock {
		t.Fatalf("sender block not updated: %q", settings.SenderBlock)
	}
	if settings.UnitWeightGrams != 500 {
		t.Fatalf("unit weight not updated: %d", settings.UnitWeightGrams)
	}
	if !settings.HomeShippingCost.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("home shipping cost not updated: %s", settings.HomeShippingCost)
	}
}

func TestShippingCostFor(t *testing.T) {
	settings := AppSettings{
		HomeState:         "Tamil Nadu",
		HomeShippingCost:  decimal.NewFromInt(50),
		OtherShippingCost: decimal.NewFromInt(60),
	}
	if got := settings.ShippingCostFor("tamil nadu"); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected home cost for home state, got %s", got)
	}
	if got := settings.ShippingCostFor("Karnataka"); !got.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected other cost for other state, got %s", got)
	}
}
