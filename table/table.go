package table

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Table is the arbitration monitor. It owns all seat states, fork ownership,
// and the running flag; philosophers and observers only touch that state
// through its synchronized methods. One Table serves one ring.
type Table struct {
	cfg     Config
	journal *Journal

	mu      sync.Mutex
	cond    *sync.Cond
	running bool
	sitting uuid.UUID
	states  []SeatState
	forks   []int // fork index -> owning seat, or NoOwner
	looping []bool
	wg      sync.WaitGroup
}

// New builds a Table from cfg. The table is running from construction but
// no philosopher loops exist until Start.
func New(cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("table config: %w", err)
	}
	t := &Table{
		cfg:     cfg,
		journal: newJournal(cfg.JournalCapacity),
		running: true,
		states:  make([]SeatState, cfg.Seats),
		forks:   make([]int, cfg.Seats),
		looping: make([]bool, cfg.Seats),
	}
	t.cond = sync.NewCond(&t.mu)
	for i := range t.forks {
		t.forks[i] = NoOwner
	}
	return t, nil
}

// Config returns the constants the table was built with, unmodified.
func (t *Table) Config() Config {
	return t.cfg
}

// Start opens (or reopens) the sitting: sets the running flag, clears any
// Deadlocked seat back to Thinking, and spawns a philosopher loop for every
// seat that does not already have one. Loop bookkeeping lives under the
// monitor lock, so Start never races a concurrent Stop into duplicate loops.
func (t *Table) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	reopened := !t.running
	t.running = true
	for i := range t.states {
		if t.states[i] == Deadlocked {
			t.states[i] = Thinking
		}
	}

	spawned := 0
	for seat := range t.looping {
		if t.looping[seat] {
			continue
		}
		t.looping[seat] = true
		t.wg.Add(1)
		spawned++
		p := &philosopher{
			seat:  seat,
			table: t,
			rng:   seatRNG(t.cfg.Seed, seat),
		}
		go p.run()
	}

	// A Start that changed nothing keeps the current sitting ID, so idle
	// re-issues of the start command do not churn the journal.
	if reopened || spawned > 0 {
		t.sitting = uuid.New()
		t.journal.Recordf("sitting %s open (%d seats filled)", shortID(t.sitting), spawned)
	}
}

// Stop closes the sitting: clears the running flag and wakes every waiter so
// blocked pickups re-check and return false. Idempotent. Loops exit on their
// own at the next checkpoint; Stop does not interrupt an in-flight delay.
func (t *Table) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	t.journal.Recordf("sitting %s closed", shortID(t.sitting))
	t.cond.Broadcast()
}

// Wait blocks until every philosopher loop has exited.
func (t *Table) Wait() {
	t.wg.Wait()
}

// Running reports whether the table is accepting fork pickups.
func (t *Table) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// PickUpForks transitions seat to Hungry and blocks until it is Eating,
// the pickup timeout elapses, or the table stops. It returns true only for
// a grant. On timeout the seat is left Deadlocked; only Start clears that.
// The deadline is fixed at request start, so spurious wakeups never extend
// the wait.
func (t *Table) PickUpForks(seat int) bool {
	t.checkSeat(seat)
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return false
	}
	t.states[seat] = Hungry
	t.journal.Recordf("P%d hungry", seat)
	t.test(seat)

	deadline := time.Now().Add(t.cfg.PickupTimeout)
	for t.states[seat] != Eating && t.running {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			t.states[seat] = Deadlocked
			t.journal.Recordf("P%d timed out!", seat)
			return false
		}
		t.waitAtMost(remaining)
	}
	if !t.running && t.states[seat] == Eating {
		// A neighbor's putdown granted this seat, then Stop took the lock
		// before the woken waiter did. The loop only puts down forks after a
		// true return, so hand them back here or they stay marked held
		// forever.
		t.states[seat] = Thinking
		t.forks[t.leftFork(seat)] = NoOwner
		t.forks[t.rightFork(seat)] = NoOwner
		t.journal.Recordf("P%d stopped eating", seat)
		return false
	}
	return t.running && t.states[seat] == Eating
}

// PutDownForks returns seat to Thinking, frees both its forks, and re-runs
// the grant check for both neighbors, the only seats the freed forks can
// satisfy. Every waiter is then woken so a newly granted neighbor observes
// its own state change and returns.
func (t *Table) PutDownForks(seat int) {
	t.checkSeat(seat)
	t.mu.Lock()
	defer t.mu.Unlock()

	t.states[seat] = Thinking
	t.forks[t.leftFork(seat)] = NoOwner
	t.forks[t.rightFork(seat)] = NoOwner
	t.journal.Recordf("P%d stopped eating", seat)
	t.test(t.leftNeighbor(seat))
	t.test(t.rightNeighbor(seat))
	t.cond.Broadcast()
}

// test is the sole Hungry -> Eating path: if seat is Hungry and both its
// forks are free, grant them atomically and wake all waiters. Called with
// the monitor lock held, from the requester itself in PickUpForks and from
// both neighbors in PutDownForks. Grants stop once the table is stopping, so
// no fork stays marked held by a seat whose loop has already exited.
func (t *Table) test(seat int) {
	left, right := t.leftFork(seat), t.rightFork(seat)
	if t.running && t.states[seat] == Hungry &&
		t.forks[left] == NoOwner && t.forks[right] == NoOwner {
		t.states[seat] = Eating
		t.forks[left] = seat
		t.forks[right] = seat
		t.cond.Broadcast()
		t.journal.Recordf("P%d eating (F%d, F%d)", seat, left, right)
	}
}

// waitAtMost blocks on the condition variable for at most d. A timer
// broadcast stands in for a timed wait: it wakes every waiter and each
// re-checks its own predicate, the same discipline as any other wakeup.
// The callback takes the lock first so the broadcast cannot land in the gap
// between arming the timer and entering Wait.
func (t *Table) waitAtMost(d time.Duration) {
	timer := time.AfterFunc(d, func() {
		t.mu.Lock()
		t.mu.Unlock()
		t.cond.Broadcast()
	})
	defer timer.Stop()
	t.cond.Wait()
}

// leaveSeat is the philosopher loop's exit hook.
func (t *Table) leaveSeat(seat int) {
	t.mu.Lock()
	t.looping[seat] = false
	t.mu.Unlock()
	t.wg.Done()
}

func (t *Table) checkSeat(seat int) {
	if seat < 0 || seat >= t.cfg.Seats {
		panic(fmt.Sprintf("table: seat %d out of range [0,%d)", seat, t.cfg.Seats))
	}
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
