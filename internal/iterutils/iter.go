// Package iterutils provides utilities for working with iter package.
package iterutils

import "iter"

// IterFirst returns the first value of the given sequence.
func IterFirst[V any](seq iter.Seq[V]) V {
	var v V
	for v = range seq {
		break
	}
	return v
}

// Puller turns a push sequence into a pull iterator with a Next method.
type Puller[V any] struct {
	next func() (V, bool)
	stop func()
}

// Pull returns a pull iterator over seq.
// Stop must be called if the sequence is not drained.
func Pull[V any](seq iter.Seq[V]) *Puller[V] {
	next, stop := iter.Pull(seq)
	return &Puller[V]{next: next, stop: stop}
}

// Next returns the next value of the sequence, or false when it is exhausted.
func (p *Puller[V]) Next() (V, bool) { return p.next() }

// Stop ends the iteration and releases the sequence.
func (p *Puller[V]) Stop() { p.stop() }
