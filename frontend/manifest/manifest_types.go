package manifest

import "time"

// Entry is one distinct scanned tracking number in the manifest session.
// IsDuplicate is derived from the scan counter, never set directly.
type Entry struct {
	TrackingNumber string
	ScannedAt      time.Time
	ScanCount      int64
	IsDuplicate    bool
	OrderID        string
	CustomerName   string
	IsFound        bool
}

// ScanOutcome reports what a single scan did.
type ScanOutcome struct {
	Added   bool
	Matched bool
	Count   int64
}

// Summary carries the derived counters shown above the manifest list.
type Summary struct {
	TotalEntries   int
	MatchedCount   int
	UnmatchedCount int
	ReferenceCount int
	Duplicates     []string
}

// ReferenceRecord is one row of uploaded ground truth. The whole set is
// replaced on each upload, never merged.
type ReferenceRecord struct {
	TrackingNumber string
	OrderID        string
	CustomerName   string
}

// ParseMode tags how reference columns were located.
type ParseMode string

const (
	// ColumnsRecognized means a header row was detected and columns were
	// matched by name heuristics.
	ColumnsRecognized ParseMode = "recognized"
	// ColumnsPositional means no usable header was found and columns 0, 1
	// and 2 were used, first row included.
	ColumnsPositional ParseMode = "positional"
)
