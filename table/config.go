package table

import (
	"fmt"
	"time"
)

// DelayRange bounds a uniformly drawn random delay.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

func (r DelayRange) validate(name string) error {
	if r.Min < 0 {
		return fmt.Errorf("%s delay min must be >= 0, got %v", name, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s delay max %v is below min %v", name, r.Max, r.Min)
	}
	return nil
}

// Config groups every tunable constant of a table. The zero value is not
// usable; start from DefaultConfig and override.
type Config struct {
	// Seats is the ring size: one philosopher and one fork per seat.
	Seats int
	// PickupTimeout bounds how long a Hungry seat waits for both forks
	// before being declared Deadlocked.
	PickupTimeout time.Duration
	// ThinkDelay and DineDelay are the uniform ranges for the two
	// no-lock-held pauses in the philosopher loop.
	ThinkDelay DelayRange
	DineDelay  DelayRange
	// JournalCapacity is the number of recent transition records kept.
	JournalCapacity int
	// Seed drives the per-seat delay RNGs. Same seed, same delays.
	Seed int64
}

// DefaultConfig matches the classic demonstration: five seats, five-second
// pickup timeout, one-to-three-second thinking and dining.
func DefaultConfig() Config {
	return Config{
		Seats:           5,
		PickupTimeout:   5 * time.Second,
		ThinkDelay:      DelayRange{Min: 1 * time.Second, Max: 3 * time.Second},
		DineDelay:       DelayRange{Min: 1 * time.Second, Max: 3 * time.Second},
		JournalCapacity: 20,
		Seed:            42,
	}
}

func (c Config) Validate() error {
	if c.Seats < 2 {
		return fmt.Errorf("seats must be >= 2, got %d", c.Seats)
	}
	if c.PickupTimeout <= 0 {
		return fmt.Errorf("pickup timeout must be positive, got %v", c.PickupTimeout)
	}
	if err := c.ThinkDelay.validate("think"); err != nil {
		return err
	}
	if err := c.DineDelay.validate("dine"); err != nil {
		return err
	}
	if c.JournalCapacity <= 0 {
		return fmt.Errorf("journal capacity must be positive, got %d", c.JournalCapacity)
	}
	return nil
}
