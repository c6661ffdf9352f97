package table

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry is one timestamped transition record.
type Entry struct {
	At      time.Time
	Message string
}

func (e Entry) String() string {
	return e.At.Format("15:04:05") + ": " + e.Message
}

// Journal is the bounded record of recent table transitions. It carries its
// own lock, separate from the monitor's, so the presentation side can read it
// at any time without contending with fork arbitration.
type Journal struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

func newJournal(capacity int) *Journal {
	return &Journal{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

// Recordf appends a formatted entry, evicting the oldest once at capacity.
// Entries are mirrored to logrus at debug level.
func (j *Journal) Recordf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logrus.Debug(msg)

	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.entries) == j.capacity {
		copy(j.entries, j.entries[1:])
		j.entries = j.entries[:len(j.entries)-1]
	}
	j.entries = append(j.entries, Entry{At: time.Now(), Message: msg})
}

// Recent returns the retained entries, oldest first, formatted for display.
func (j *Journal) Recent() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	for i, e := range j.entries {
		out[i] = e.String()
	}
	return out
}

// Len reports how many entries are currently retained.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
