package timeutil_test

import (
	"testing"
	"time"

	"github.com/vortex-fintech/phonebook/timeutil"
)

func TestLocalClock_NowIsLocal(t *testing.T) {
	var c timeutil.LocalClock
	if c.Now().Location() != time.Local {
		t.Fatalf("expected local location, got %v", c.Now().Location())
	}
}

func TestFrozenClock_Set(t *testing.T) {
	start := time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC)
	c := timeutil.NewFrozenClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("unexpected Now(): %v", c.Now())
	}

	next := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	c.Set(next)
	if !c.Now().Equal(next) {
		t.Fatalf("expected %v, got %v", next, c.Now())
	}
}

func TestClockInterfaceCompliance(t *testing.T) {
	var _ timeutil.Clock = timeutil.LocalClock{}
	var _ timeutil.Clock = timeutil.NewFrozenClock(time.Time{})
}
