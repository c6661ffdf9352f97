package table

import (
	"regexp"
	"strings"
	"sync"
	"testing"
)

func TestJournal_EvictsOldestAtCapacity(t *testing.T) {
	// GIVEN a journal of capacity 3
	j := newJournal(3)

	// WHEN five entries are recorded
	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		j.Recordf("%s", msg)
	}

	// THEN only the newest three remain, oldest first
	recent := j.Recent()
	if len(recent) != 3 {
		t.Fatalf("Recent: got %d entries, want 3", len(recent))
	}
	want := []string{"three", "four", "five"}
	for i, line := range recent {
		if !strings.HasSuffix(line, want[i]) {
			t.Errorf("entry %d: got %q, want suffix %q", i, line, want[i])
		}
	}
}

func TestJournal_EntriesCarryWallClockPrefix(t *testing.T) {
	j := newJournal(5)
	j.Recordf("P%d hungry", 2)

	recent := j.Recent()
	if len(recent) != 1 {
		t.Fatalf("Recent: got %d entries, want 1", len(recent))
	}
	matched, err := regexp.MatchString(`^\d{2}:\d{2}:\d{2}: P2 hungry$`, recent[0])
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("entry %q does not match HH:MM:SS: prefix format", recent[0])
	}
}

func TestJournal_ConcurrentRecordsStayBounded(t *testing.T) {
	j := newJournal(8)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				j.Recordf("writer %d entry %d", g, i)
			}
		}()
	}
	wg.Wait()

	if got := j.Len(); got != 8 {
		t.Errorf("Len after concurrent writes: got %d, want capacity 8", got)
	}
}
