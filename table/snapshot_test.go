package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_String_RendersSeatsAndForks(t *testing.T) {
	snap := Snapshot{
		States:     []SeatState{Thinking, Eating, Hungry},
		ForkOwners: []int{NoOwner, 1, 1},
	}
	want := "P0=Thinking P1=Eating P2=Hungry | F0=- F1=P1 F2=P1"
	assert.Equal(t, want, snap.String())
}

func TestSnapshot_HasDeadlock(t *testing.T) {
	assert.False(t, Snapshot{States: []SeatState{Thinking, Hungry, Eating}}.HasDeadlock())
	assert.True(t, Snapshot{States: []SeatState{Thinking, Deadlocked, Eating}}.HasDeadlock())
}

func TestSeatState_String(t *testing.T) {
	assert.Equal(t, "Thinking", Thinking.String())
	assert.Equal(t, "Hungry", Hungry.String())
	assert.Equal(t, "Eating", Eating.String())
	assert.Equal(t, "Deadlock!", Deadlocked.String())
	assert.Equal(t, "Unknown", SeatState(9).String())
}
