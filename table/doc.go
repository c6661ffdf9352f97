// Package table implements the arbitration monitor for a ring of dining
// philosophers sharing one fork per adjacent pair.
//
// # Reading Guide
//
// Start with these files to understand the monitor:
//   - state.go: seat states (Thinking, Hungry, Eating, Deadlocked) and fork ownership
//   - table.go: the monitor itself: fork pickup/putdown, the grant check, stop/restart
//   - philosopher.go: the loop each seat's goroutine runs against the monitor
//
// All seat-state and fork-ownership transitions happen under the Table's
// single lock. Waiters block on a condition variable and are woken by
// broadcast on every state change; each re-checks its own predicate. The
// journal (log.go) has its own lock so observers reading it never contend
// with arbitration.
//
// A seat that stays Hungry past the pickup timeout is declared Deadlocked.
// This is a liveness bound, not a cycle detector: the monitor never inspects
// the wait graph, it only converts unbounded starvation into an observable
// terminal state that an explicit restart clears.
package table
