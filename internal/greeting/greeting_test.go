package greeting

import (
	"testing"
	"time"
)

func TestGreeting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "World", in: "World", want: "Hello World from Jenkins Pipeline!"},
		{name: "Empty", in: "", want: "Hello  from Jenkins Pipeline!"},
		{name: "Custom", in: "Jenkins", want: "Hello Jenkins from Jenkins Pipeline!"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.in).Greeting(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	t.Parallel()

	svc := NewDefault()
	if got := svc.Name(); got != DefaultName {
		t.Fatalf("expected %s, got %s", DefaultName, got)
	}
	if got, want := svc.Greeting(), "Hello World from Jenkins Pipeline!"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNewKeepsEmptyName(t *testing.T) {
	t.Parallel()

	if got := New("").Name(); got != "" {
		t.Fatalf("expected empty name to be kept, got %q", got)
	}
}

func TestCurrentTimeUsesClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 3, 9, 7, 5, 3, 0, time.UTC)
	svc := New("Test", WithClock(func() time.Time { return fixed }))

	if got, want := svc.CurrentTime(), "2024-03-09 07:05:03"; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestCurrentTimeFormat(t *testing.T) {
	t.Parallel()

	got := NewDefault().CurrentTime()
	if _, err := time.Parse(TimeLayout, got); err != nil {
		t.Fatalf("current time %q does not match layout: %v", got, err)
	}
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	svc := NewDefault()
	tests := []struct {
		date time.Time
		want bool
	}{
		{date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), want: false}, // Monday
		{date: time.Date(2023, 1, 6, 23, 59, 0, 0, time.UTC), want: false},
		{date: time.Date(2023, 1, 7, 0, 0, 0, 0, time.UTC), want: true},
		{date: time.Date(2023, 1, 8, 12, 0, 0, 0, time.UTC), want: true},
	}

	for _, tc := range tests {
		if got := svc.IsWeekend(tc.date); got != tc.want {
			t.Fatalf("IsWeekend(%s): expected %v, got %v", tc.date.Format("2006-01-02 Mon"), tc.want, got)
		}
	}
}

func TestIsWeekendToday(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2023, 1, 7, 10, 0, 0, 0, time.UTC)
	clock := saturday
	svc := NewDefault(WithClock(func() time.Time { return clock }))

	if !svc.IsWeekendToday() {
		t.Fatalf("expected saturday to be a weekend day")
	}
	clock = saturday.AddDate(0, 0, 2)
	if svc.IsWeekendToday() {
		t.Fatalf("expected monday to be a weekday")
	}
}
