package runner

import (
	"time"

	"github.com/organize-rs/organize-sub000/pkg/filesystem"
	"github.com/organize-rs/organize-sub000/pkg/walker"
	"github.com/spf13/afero"
)

// Clock returns the current time. Rule passes read it once each.
type Clock func() time.Time

// Option configures a run
type Option func(*options)

type options struct {
	fs       afero.Fs
	clock    Clock
	capacity int
}

func defaultOptions() options {
	return options{
		fs:       filesystem.NewOS(),
		clock:    time.Now,
		capacity: walker.DefaultCapacity,
	}
}

// complete fills the fields a zero-value stage leaves unset
func (o options) complete() options {
	d := defaultOptions()
	if o.fs == nil {
		o.fs = d.fs
	}
	if o.clock == nil {
		o.clock = d.clock
	}
	if o.capacity < 1 {
		o.capacity = d.capacity
	}
	return o
}

// WithFS sets the filesystem locations are read from
func WithFS(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithClock sets the clock used for age predicates
func WithClock(clock Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithCapacity sets how many entries are buffered between walk and evaluation
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
