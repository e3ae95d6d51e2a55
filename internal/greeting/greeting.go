package greeting

import (
	"fmt"
	"time"
)

// DefaultName is the name NewDefault greets.
const DefaultName = "World"

// TimeLayout renders timestamps as YYYY-MM-DD HH:MM:SS.
const TimeLayout = "2006-01-02 15:04:05"

// Service produces greetings and date information for a fixed name.
type Service struct {
	name  string
	clock func() time.Time
}

// Option configures Service behaviour.
type Option func(*Service)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// New constructs a Service for name. The name is used as given, including
// an empty one.
func New(name string, opts ...Option) *Service {
	s := &Service{
		name:  name,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefault constructs a Service greeting DefaultName.
func NewDefault(opts ...Option) *Service {
	return New(DefaultName, opts...)
}

// Name returns the name the service greets.
func (s *Service) Name() string {
	return s.name
}

// Greeting returns the greeting message.
func (s *Service) Greeting() string {
	return fmt.Sprintf("Hello %s from Jenkins Pipeline!", s.name)
}

// CurrentTime returns the clock's current reading formatted with TimeLayout.
func (s *Service) CurrentTime() string {
	return s.clock().Format(TimeLayout)
}

// IsWeekend reports whether date falls on a Saturday or Sunday.
func (s *Service) IsWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// IsWeekendToday reports whether the clock's current day is a weekend day.
func (s *Service) IsWeekendToday() bool {
	return s.IsWeekend(s.clock())
}
