package domain

import "time"

const DefaultRecoveryCapacity = 50

type RecoveryEntry struct {
	At   time.Time `json:"at"`
	Load float64   `json:"load"`
}

// RecoveryLog is a bounded, append-only record of load per cycle.
type RecoveryLog struct {
	capacity int
	entries  []RecoveryEntry
}

func NewRecoveryLog(capacity int) *RecoveryLog {
	if capacity < 1 {
		capacity = DefaultRecoveryCapacity
	}

	return &RecoveryLog{
		capacity: capacity,
		entries:  make([]RecoveryEntry, 0, capacity),
	}
}

func (l *RecoveryLog) Append(at time.Time, load float64) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.capacity-1]
	}
	l.entries = append(l.entries, RecoveryEntry{At: at, Load: load})
}

func (l *RecoveryLog) Entries() []RecoveryEntry {
	out := make([]RecoveryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *RecoveryLog) Len() int {
	return len(l.entries)
}
