package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// User represents an authenticated app user.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Username     string    `bun:"username,unique,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Role         string    `bun:"role,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Session is used by middleware and auth handlers.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID                string         `bun:"id,pk"`
	UserID            int64          `bun:"user_id,notnull"`
	User              User           `bun:"rel:belongs-to,join:user_id=id"`
	UserRoles         []string       `bun:"-"`
	ScreenPermissions map[string]int `bun:"-"`
	ExpiresAt         time.Time      `bun:"expires_at,notnull"`
	CreatedAt         time.Time      `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt         time.Time      `bun:"updated_at,notnull,default:current_timestamp"`
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Order is a manually captured order managed from the console.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID             string          `bun:"id,pk"`
	OrderNumber    string          `bun:"order_number,notnull"`
	Status         string          `bun:"status,notnull"`
	OrderDate      time.Time       `bun:"order_date,notnull"`
	Quantity       int64           `bun:"quantity,notnull,default:1"`
	ShippingMode   string          `bun:"shipping_mode"`
	Address        string          `bun:"address"`
	Phone          string          `bun:"phone"`
	CustomerName   string          `bun:"customer_name"`
	Notes          string          `bun:"notes"`
	TrackingNumber string          `bun:"tracking_number"`
	ProductName    string          `bun:"product_name"`
	UnitPrice      decimal.Decimal `bun:"unit_price,notnull"`
	CreatedAt      time.Time       `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt      time.Time       `bun:"updated_at,notnull,default:current_timestamp"`
}

// Order status values accepted by the console.
const (
	OrderStatusProcessing = "processing"
	OrderStatusInTransit  = "in-transit"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ManifestEntry is one distinct scanned tracking number in the manifest.
//
// Exactly one row exists per tracking number; repeat scans bump ScanCount on
// the existing row instead of inserting. Display order is
// most-recent-first-scan (id DESC).
type ManifestEntry struct {
	bun.BaseModel `bun:"table:manifest_entries,alias:me"`

	ID             int64     `bun:"id,pk,autoincrement"`
	TrackingNumber string    `bun:"tracking_number,unique,notnull"`
	ScannedAt      time.Time `bun:"scanned_at,notnull"`
	ScanCount      int64     `bun:"scan_count,notnull,default:1"`
	OrderID        string    `bun:"order_id"`
	CustomerName   string    `bun:"customer_name"`
	IsFound        bool      `bun:"is_found,notnull,default:false"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// ReferenceRecord is one row of the uploaded reference set. The whole set is
// replaced on each load, never merged.
type ReferenceRecord struct {
	bun.BaseModel `bun:"table:reference_records,alias:rr"`

	ID             int64     `bun:"id,pk,autoincrement"`
	TrackingNumber string    `bun:"tracking_number,notnull"`
	OrderID        string    `bun:"order_id"`
	CustomerName   string    `bun:"customer_name"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// TrackingUpdate is one tracking-number push, kept as local history capped at
// the 50 most recent rows.
type TrackingUpdate struct {
	bun.BaseModel `bun:"table:tracking_updates,alias:tu"`

	ID             int64     `bun:"id,pk,autoincrement"`
	OrderNumber    string    `bun:"order_number,notnull"`
	TrackingNumber string    `bun:"tracking_number,notnull"`
	Synced         bool      `bun:"synced,notnull,default:false"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// SubmissionRun summarizes one batch order submission, capped at the 10 most
// recent runs.
type SubmissionRun struct {
	bun.BaseModel `bun:"table:submission_runs,alias:sr"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	Total       int64     `bun:"total,notnull"`
	Succeeded   int64     `bun:"succeeded,notnull"`
	Failed      int64     `bun:"failed,notnull"`
	DetailsJSON string    `bun:"details_json"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// AuditLog captures immutable change history for key operations.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull"`
	Action     string    `bun:"action,notnull"`
	EntityType string    `bun:"entity_type,notnull"`
	EntityID   string    `bun:"entity_id,notnull"`
	BeforeJSON string    `bun:"before_json"`
	AfterJSON  string    `bun:"after_json"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
