package table

import (
	"math/rand"
	"time"
)

// philosopher is one seat's loop: think, pick up forks, dine, put them down,
// repeat. Both delays run with no lock held. The loop exits when the table
// stops or when a pickup comes back false; timeout and shutdown are not
// distinguished here; either way the seat goes quiet until the next Start.
type philosopher struct {
	seat  int
	table *Table
	rng   *rand.Rand
}

func (p *philosopher) run() {
	defer p.table.leaveSeat(p.seat)

	for p.table.Running() {
		p.table.journal.Recordf("P%d thinking", p.seat)
		time.Sleep(uniformDelay(p.rng, p.table.cfg.ThinkDelay))
		if !p.table.Running() {
			return
		}
		if !p.table.PickUpForks(p.seat) {
			return
		}
		time.Sleep(uniformDelay(p.rng, p.table.cfg.DineDelay))
		p.table.PutDownForks(p.seat)
	}
}
