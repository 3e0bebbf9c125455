package drawing

import (
	"sync"

	"github.com/google/uuid"
)

// ChangeKind says what happened to an entity's tracked attribute.
type ChangeKind uint8

const (
	// ChangeInserted marks the first time the attribute was set.
	ChangeInserted ChangeKind = iota
	// ChangeModified marks an overwrite of an existing attribute.
	ChangeModified
	// ChangeRemoved marks the attribute being dropped.
	ChangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInserted:
		return "inserted"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is one entry in a ChangeLog.
type Change struct {
	Kind   ChangeKind
	Entity EntityID
}

// ChangeLog is an append-only diff log with independent reader cursors. Each
// Reader consumes everything appended since its last read, in append order,
// so a consumer that runs every cycle sees each change exactly once. Entries
// every reader has consumed are compacted away.
//
// A new reader starts at the current end of the log. Catching up on state
// that predates the reader is the consumer's job, by iterating the store
// directly.
type ChangeLog struct {
	mx sync.Mutex

	// base is the absolute position of entries[0].
	base    uint64
	entries []Change

	// positions holds each reader's absolute cursor.
	positions map[uuid.UUID]uint64
}

// NewChangeLog creates an empty log with no readers.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{positions: make(map[uuid.UUID]uint64)}
}

// Append records a change. With no readers attached the entry is dropped
// immediately, nobody will ever read it.
func (l *ChangeLog) Append(c Change) {
	l.mx.Lock()
	defer l.mx.Unlock()

	if len(l.positions) == 0 {
		l.base++
		return
	}
	l.entries = append(l.entries, c)
}

// Len returns the number of entries not yet consumed by every reader.
func (l *ChangeLog) Len() int {
	l.mx.Lock()
	defer l.mx.Unlock()
	return len(l.entries)
}

// NewReader attaches a cursor starting at the current end of the log.
func (l *ChangeLog) NewReader() *Reader {
	l.mx.Lock()
	defer l.mx.Unlock()

	id := uuid.New()
	l.positions[id] = l.base + uint64(len(l.entries))
	return &Reader{id: id, log: l}
}

// Reader is one consumer's cursor into a ChangeLog.
type Reader struct {
	id  uuid.UUID
	log *ChangeLog
}

// Read returns every change appended since the previous Read, oldest first,
// and advances the cursor past them. The returned slice is the reader's to
// keep.
func (r *Reader) Read() []Change {
	l := r.log
	l.mx.Lock()
	defer l.mx.Unlock()

	pos, ok := l.positions[r.id]
	if !ok {
		return nil
	}
	if pos < l.base {
		// can't happen while the reader is attached, compaction never
		// passes the slowest cursor
		pos = l.base
	}

	pending := l.entries[pos-l.base:]
	if len(pending) == 0 {
		return nil
	}

	out := make([]Change, len(pending))
	copy(out, pending)

	l.positions[r.id] = l.base + uint64(len(l.entries))
	l.compactLocked()
	return out
}

// Close detaches the reader. Further Reads return nil.
func (r *Reader) Close() {
	l := r.log
	l.mx.Lock()
	defer l.mx.Unlock()

	delete(l.positions, r.id)
	l.compactLocked()
}

// compactLocked drops the prefix every attached reader has consumed.
func (l *ChangeLog) compactLocked() {
	if len(l.entries) == 0 {
		return
	}

	slowest := l.base + uint64(len(l.entries))
	for _, pos := range l.positions {
		if pos < slowest {
			slowest = pos
		}
	}

	drop := slowest - l.base
	if drop == 0 {
		return
	}
	l.entries = append(l.entries[:0:0], l.entries[drop:]...)
	l.base = slowest
}
