package table

// SeatState is the lifecycle state of one philosopher seat.
type SeatState int

const (
	Thinking SeatState = iota
	Hungry
	Eating
	Deadlocked
)

var stateNames = map[SeatState]string{
	Thinking:   "Thinking",
	Hungry:     "Hungry",
	Eating:     "Eating",
	Deadlocked: "Deadlock!",
}

func (s SeatState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// NoOwner marks a fork as free.
const NoOwner = -1

// Fork indices follow the ring convention: fork i sits between seat i and
// seat i+1, so seat i's left fork is (i+n-1) mod n and its right fork is i.

func (t *Table) leftFork(seat int) int {
	return (seat + t.cfg.Seats - 1) % t.cfg.Seats
}

func (t *Table) rightFork(seat int) int {
	return seat
}

func (t *Table) leftNeighbor(seat int) int {
	return (seat + t.cfg.Seats - 1) % t.cfg.Seats
}

func (t *Table) rightNeighbor(seat int) int {
	return (seat + 1) % t.cfg.Seats
}
