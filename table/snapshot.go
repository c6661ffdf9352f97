package table

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Snapshot is one atomic copy of the table's observable state, taken for
// display. The monitor lock is held only for the copy; the journal tail is
// read afterwards under the journal's own lock.
type Snapshot struct {
	Sitting uuid.UUID
	Running bool
	States  []SeatState
	// ForkOwners maps fork index to the seat holding it, NoOwner if free.
	ForkOwners []int
	// ActiveLoops counts seats that currently have a philosopher loop.
	ActiveLoops int
	Journal     []string
}

// Snapshot copies the current table state.
func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	s := Snapshot{
		Sitting:    t.sitting,
		Running:    t.running,
		States:     append([]SeatState(nil), t.states...),
		ForkOwners: append([]int(nil), t.forks...),
	}
	for _, l := range t.looping {
		if l {
			s.ActiveLoops++
		}
	}
	t.mu.Unlock()

	s.Journal = t.journal.Recent()
	return s
}

// HasDeadlock reports whether any seat is Deadlocked.
func (s Snapshot) HasDeadlock() bool {
	for _, st := range s.States {
		if st == Deadlocked {
			return true
		}
	}
	return false
}

// String renders the snapshot as a single line, e.g.
// "P0=Thinking P1=Eating ... | F0=- F1=P1 ...".
func (s Snapshot) String() string {
	var b strings.Builder
	for i, st := range s.States {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "P%d=%s", i, st)
	}
	b.WriteString(" |")
	for i, owner := range s.ForkOwners {
		if owner == NoOwner {
			fmt.Fprintf(&b, " F%d=-", i)
		} else {
			fmt.Fprintf(&b, " F%d=P%d", i, owner)
		}
	}
	return b.String()
}
