package table

import (
	"testing"
	"time"
)

func TestSeatRNG_SameSeedSameSeat_Reproduces(t *testing.T) {
	a := seatRNG(42, 3)
	b := seatRNG(42, 3)
	for i := 0; i < 10; i++ {
		if got, want := a.Int63(), b.Int63(); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestSeatRNG_SeatsAreIsolated(t *testing.T) {
	a := seatRNG(42, 0)
	b := seatRNG(42, 1)
	same := true
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			same = false
			break
		}
	}
	if same {
		t.Error("seats 0 and 1 produced identical sequences from the same seed")
	}
}

func TestUniformDelay_StaysWithinRange(t *testing.T) {
	rng := seatRNG(7, 0)
	r := DelayRange{Min: 10 * time.Millisecond, Max: 30 * time.Millisecond}
	for i := 0; i < 100; i++ {
		d := uniformDelay(rng, r)
		if d < r.Min || d > r.Max {
			t.Fatalf("draw %d: %v outside [%v, %v]", i, d, r.Min, r.Max)
		}
	}
}

func TestUniformDelay_DegenerateRange(t *testing.T) {
	rng := seatRNG(7, 0)
	r := DelayRange{Min: 5 * time.Millisecond, Max: 5 * time.Millisecond}
	if d := uniformDelay(rng, r); d != r.Min {
		t.Errorf("degenerate range: got %v, want %v", d, r.Min)
	}
}
