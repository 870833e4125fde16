package timeutil_test

import (
	"testing"
	"time"

	"github.com/vortex-fintech/phonebook/timeutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{name: "day before birthday", birth: date(2000, time.June, 15), now: date(2024, time.June, 14), want: 23},
		{name: "on birthday", birth: date(2000, time.June, 15), now: date(2024, time.June, 15), want: 24},
		{name: "day after birthday", birth: date(2000, time.June, 15), now: date(2024, time.June, 16), want: 24},
		{name: "earlier month", birth: date(2000, time.June, 15), now: date(2024, time.May, 30), want: 23},
		{name: "later month", birth: date(2000, time.June, 15), now: date(2024, time.July, 1), want: 24},
		{name: "born today", birth: date(2024, time.June, 15), now: date(2024, time.June, 15), want: 0},
		{name: "leap birthday before mar 1 in non leap year", birth: date(2000, time.February, 29), now: date(2023, time.February, 28), want: 22},
		{name: "leap birthday on mar 1 in non leap year", birth: date(2000, time.February, 29), now: date(2023, time.March, 1), want: 23},
		{name: "leap birthday on feb 29 in leap year", birth: date(2000, time.February, 29), now: date(2024, time.February, 29), want: 24},
		{name: "leap birthday on feb 28 in leap year", birth: date(2000, time.February, 29), now: date(2024, time.February, 28), want: 23},
		{name: "future birth", birth: date(2030, time.January, 1), now: date(2024, time.June, 15), want: -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeutil.AgeAt(tt.birth, tt.now); got != tt.want {
				t.Fatalf("AgeAt(%v, %v) = %d, want %d", tt.birth, tt.now, got, tt.want)
			}
		})
	}
}

func TestAgeAt_IgnoresTimeOfDay(t *testing.T) {
	birth := date(2000, time.June, 15)
	now := time.Date(2024, time.June, 14, 23, 59, 59, 0, time.UTC)
	if got := timeutil.AgeAt(birth, now); got != 23 {
		t.Fatalf("expected 23, got %d", got)
	}
}
