package store

import (
	"fmt"
	"sync"

	"github.com/oakbridge/abc-dashboard/internal/models"
)

// IncidentLog is the append-only in-memory incident table. It is rebuilt
// on every process start (seeded with synthetic rows) and lives for the
// lifetime of the process. The submission service is the sole writer; the
// mutex serialises appends so concurrent HTTP requests cannot interleave,
// and keeps id uniqueness checkable under load.
type IncidentLog struct {
	mu      sync.RWMutex
	records []models.IncidentRecord
	ids     map[string]struct{}
}

// NewIncidentLog returns an empty incident table.
func NewIncidentLog() *IncidentLog {
	return &IncidentLog{ids: make(map[string]struct{})}
}

// Append adds exactly one record to the table. It fails only when the
// record's id collides with an existing row, which indicates a caller bug
// rather than a user error.
func (l *IncidentLog) Append(record models.IncidentRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.ids[record.ID]; exists {
		return fmt.Errorf("duplicate incident id %q", record.ID)
	}
	l.ids[record.ID] = struct{}{}
	l.records = append(l.records, record)
	return nil
}

// All returns a copy of every row in insertion order.
func (l *IncidentLog) All() []models.IncidentRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.IncidentRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports the current row count.
func (l *IncidentLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Contains reports whether an id is already present in the table.
func (l *IncidentLog) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.ids[id]
	return ok
}
