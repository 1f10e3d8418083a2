package manifest

import (
	"strings"
	"sync"
	"time"
)

// Engine holds the manifest reconciliation state: scan counters, the entry
// list and the reference index. All mutations go through the mutex; the
// duplicate flags are recomputed from the counters after every mutation so
// they can never drift from the counts.
type Engine struct {
	mu           sync.Mutex
	counters     map[string]int64
	counterOrder []string
	entries      []*Entry
	reference    map[string]ReferenceRecord
	refCount     int
}

func NewEngine() *Engine {
	return &Engine{
		counters:  make(map[string]int64),
		reference: make(map[string]ReferenceRecord),
	}
}

// RecordScan registers one scan of a tracking number. The first scan creates
// an entry at the head of the list; repeat scans only bump the counter.
// Blank input is a no-op.
func (e *Engine) RecordScan(trackingNumber string) (ScanOutcome, bool) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ScanOutcome{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, seen := e.counters[trackingNumber]; !seen {
		e.counterOrder = append(e.counterOrder, trackingNumber)
	}
	e.counters[trackingNumber]++
	count := e.counters[trackingNumber]

	if count == 1 {
		entry := &Entry{
			TrackingNumber: trackingNumber,
			ScannedAt:      time.Now(),
			ScanCount:      1,
		}
		if ref, ok := e.reference[trackingNumber]; ok {
			entry.IsFound = true
			entry.OrderID = ref.OrderID
			entry.CustomerName = ref.CustomerName
		}
		e.entries = append([]*Entry{entry}, e.entries...)
		e.recomputeDuplicates()
		return ScanOutcome{Added: true, Matched: entry.IsFound, Count: 1}, true
	}

	e.recomputeDuplicates()
	return ScanOutcome{Count: count}, true
}

// ResolveDuplicate resets a tracking number's scan count to exactly one.
// Identity fields are untouched; a later scan makes it a duplicate again.
func (e *Engine) ResolveDuplicate(trackingNumber string) bool {
	trackingNumber = strings.TrimSpace(trackingNumber)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.counters[trackingNumber]; !ok {
		return false
	}
	e.counters[trackingNumber] = 1
	e.recomputeDuplicates()
	return true
}

// RemoveEntry deletes the entry and its counter entirely, so a future scan
// of the same number starts fresh.
func (e *Engine) RemoveEntry(trackingNumber string) bool {
	trackingNumber = strings.TrimSpace(trackingNumber)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.counters[trackingNumber]; !ok {
		return false
	}
	delete(e.counters, trackingNumber)
	for i, tn := range e.counterOrder {
		if tn == trackingNumber {
			e.counterOrder = append(e.counterOrder[:i], e.counterOrder[i+1:]...)
			break
		}
	}
	for i, entry := range e.entries {
		if entry.TrackingNumber == trackingNumber {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			break
		}
	}
	e.recomputeDuplicates()
	return true
}

// LoadReference replaces the reference index wholesale and re-evaluates
// every existing entry against it. Entries no longer present lose their
// match and identity fields.
func (e *Engine) LoadReference(records []ReferenceRecord) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reference = make(map[string]ReferenceRecord, len(records))
	for _, record := range records {
		tn := strings.TrimSpace(record.TrackingNumber)
		if tn == "" {
			continue
		}
		e.reference[tn] = record
	}
	e.refCount = len(records)

	for _, entry := range e.entries {
		if ref, ok := e.reference[entry.TrackingNumber]; ok {
			entry.IsFound = true
			entry.OrderID = ref.OrderID
			entry.CustomerName = ref.CustomerName
		} else {
			entry.IsFound = false
			entry.OrderID = ""
			entry.CustomerName = ""
		}
	}
}

// Restore seeds the engine from persisted state on startup. Counter order
// follows the given entry order, oldest first.
func (e *Engine) Restore(entries []Entry, reference []ReferenceRecord) {
	e.mu.Lock()
	e.counters = make(map[string]int64, len(entries))
	e.counterOrder = e.counterOrder[:0]
	e.entries = e.entries[:0]
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		e.counters[entry.TrackingNumber] = entry.ScanCount
		e.counterOrder = append(e.counterOrder, entry.TrackingNumber)
		e.entries = append([]*Entry{&entry}, e.entries...)
	}
	e.recomputeDuplicates()
	e.mu.Unlock()

	e.LoadReference(reference)
}

// Entries returns a snapshot of the list, most recent first scan first.
func (e *Engine) Entries() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Entry, len(e.entries))
	for i, entry := range e.entries {
		out[i] = *entry
	}
	return out
}

// Entry returns the current snapshot for one tracking number.
func (e *Engine) Entry(trackingNumber string) (Entry, bool) {
	trackingNumber = strings.TrimSpace(trackingNumber)

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entry := range e.entries {
		if entry.TrackingNumber == trackingNumber {
			return *entry, true
		}
	}
	return Entry{}, false
}

// Summarize recomputes the derived counters from current state.
func (e *Engine) Summarize() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	summary := Summary{
		TotalEntries:   len(e.entries),
		ReferenceCount: e.refCount,
	}
	for _, entry := range e.entries {
		if entry.IsFound {
			summary.MatchedCount++
		}
	}
	summary.UnmatchedCount = e.refCount - summary.MatchedCount
	if summary.UnmatchedCount < 0 {
		summary.UnmatchedCount = 0
	}
	for _, tn := range e.counterOrder {
		if e.counters[tn] > 1 {
			summary.Duplicates = append(summary.Duplicates, tn)
		}
	}
	return summary
}

// ScanCount exposes the counter for one tracking number, zero if unknown.
func (e *Engine) ScanCount(trackingNumber string) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.counters[strings.TrimSpace(trackingNumber)]
}

// recomputeDuplicates rewrites every entry's duplicate flag from the
// counters. Callers must hold the mutex.
func (e *Engine) recomputeDuplicates() {
	for _, entry := range e.entries {
		count := e.counters[entry.TrackingNumber]
		entry.ScanCount = count
		entry.IsDuplicate = count > 1
	}
}
