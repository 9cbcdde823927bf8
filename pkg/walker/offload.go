package walker

import (
	"context"
	"errors"
	"iter"

	"github.com/organize-rs/organize-sub000/pkg/types"
	"golang.org/x/sync/errgroup"
)

// DefaultCapacity is the channel size used when none is configured
const DefaultCapacity = 1024

// Stream is a sequence running on its own goroutine. The producer blocks
// while C is full and the consumer blocks while it is empty.
type Stream struct {
	C <-chan types.Entry

	cancel context.CancelFunc
	group  *errgroup.Group
}

// Offload starts draining seq into a channel of the given capacity
func Offload(ctx context.Context, seq iter.Seq[types.Entry], capacity int) *Stream {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	ch := make(chan types.Entry, capacity)

	g.Go(func() error {
		defer close(ch)
		for e := range seq {
			select {
			case ch <- e:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	return &Stream{C: ch, cancel: cancel, group: g}
}

// All ranges over the channel until the producer finishes
func (s *Stream) All() iter.Seq[types.Entry] {
	return func(yield func(types.Entry) bool) {
		for e := range s.C {
			if !yield(e) {
				return
			}
		}
	}
}

// Close stops the producer at its next send and waits for it to exit
func (s *Stream) Close() error {
	s.cancel()
	err := s.group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Collect drains a stream into a slice and closes it
func Collect(s *Stream) ([]types.Entry, error) {
	var out []types.Entry
	for e := range s.All() {
		out = append(out, e)
	}
	return out, s.Close()
}
