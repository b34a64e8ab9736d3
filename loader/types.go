package loader

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned by Apply and Capture for a nil graph.
	ErrNilGraph = errors.New("loader: graph is nil")

	// ErrNilNetwork is returned when a nil *Network is passed.
	ErrNilNetwork = errors.New("loader: network is nil")

	// ErrUnknownFormat is returned for a document format other than YAML or TOML.
	ErrUnknownFormat = errors.New("loader: unknown document format")
)

// Station is one station record: id, name, x, y.
type Station struct {
	ID   int     `yaml:"id" toml:"id"`
	Name string  `yaml:"name" toml:"name"`
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
}

// Route is one route record: origin, destination, weight.
type Route struct {
	From   int     `yaml:"from" toml:"from"`
	To     int     `yaml:"to" toml:"to"`
	Weight float64 `yaml:"weight" toml:"weight"`
}

// ClosureKind tells a station closure from a route closure.
type ClosureKind string

const (
	ClosureStation ClosureKind = "station"
	ClosureRoute   ClosureKind = "route"
)

// Closure is one closure record. Station is set for ClosureStation,
// From and To for ClosureRoute.
type Closure struct {
	Kind    ClosureKind `yaml:"kind" toml:"kind"`
	Station int         `yaml:"station,omitempty" toml:"station,omitempty"`
	From    int         `yaml:"from,omitempty" toml:"from,omitempty"`
	To      int         `yaml:"to,omitempty" toml:"to,omitempty"`
}

// Accident is one accident record: origin, destination, increment percent.
type Accident struct {
	From    int     `yaml:"from" toml:"from"`
	To      int     `yaml:"to" toml:"to"`
	Percent float64 `yaml:"percent" toml:"percent"`
}

// Network aggregates every record of a transit network.
type Network struct {
	Directed  bool       `yaml:"directed" toml:"directed"`
	Stations  []Station  `yaml:"stations" toml:"stations"`
	Routes    []Route    `yaml:"routes" toml:"routes"`
	Closures  []Closure  `yaml:"closures,omitempty" toml:"closures,omitempty"`
	Accidents []Accident `yaml:"accidents,omitempty" toml:"accidents,omitempty"`
}

// Stats counts the lines seen by a record reader.
type Stats struct {
	Lines    int // every physical line
	Accepted int // lines that produced a record
	Skipped  int // malformed lines
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Lines += o.Lines
	s.Accepted += o.Accepted
	s.Skipped += o.Skipped
}

// Option configures readers and writers.
type Option func(*options)

type options struct {
	log *slog.Logger
	now func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		log: slog.New(slog.DiscardHandler),
		now: time.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithLogger routes skipped-line warnings to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithClock sets the clock stamped into written file headers.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
