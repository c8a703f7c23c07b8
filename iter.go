package either

import "iter"

// Unbounded is the upper bound reported by [SizeHinter] when the number of
// remaining elements is unknown.
const Unbounded = -1

// Iterator is a pull iterator.
// Next returns the next element, or false once the sequence is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizeHinter is implemented by iterators that know bounds on their remaining length.
// upper is [Unbounded] when there is no known upper bound.
type SizeHinter interface {
	SizeHint() (lower, upper int)
}

// DoubleEndedIterator is an [Iterator] that can also yield elements from the back.
// Both ends consume the same sequence, they never cross.
type DoubleEndedIterator[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// ExactSizeIterator is an [Iterator] that knows the exact number of remaining elements.
type ExactSizeIterator[T any] interface {
	Iterator[T]
	Len() int
}

// ExactDoubleEndedIterator is both a [DoubleEndedIterator] and an [ExactSizeIterator].
type ExactDoubleEndedIterator[T any] interface {
	DoubleEndedIterator[T]
	Len() int
}

// Iter is a union of two iterators over the same element type.
// It implements [Iterator] and [SizeHinter] by forwarding to the active variant.
//
// SizeHint checks the variant for [SizeHinter] through an interface
// conversion, which allocates once per call for non-pointer variants.
type Iter[T any, A, B Iterator[T]] struct {
	Either[A, B]
}

// NewIter returns e as an iterator.
func NewIter[T any, A, B Iterator[T]](e Either[A, B]) Iter[T, A, B] {
	return Iter[T, A, B]{e}
}

// Next advances the active iterator.
func (it *Iter[T, A, B]) Next() (T, bool) {
	if it.isSecond {
		return it.second.Next()
	}
	return it.first.Next()
}

// SizeHint returns the bounds reported by the active iterator if it implements [SizeHinter],
// otherwise (0, [Unbounded]).
func (it *Iter[T, A, B]) SizeHint() (lower, upper int) {
	if it.isSecond {
		return sizeHint(it.second)
	}
	return sizeHint(it.first)
}

func sizeHint(v any) (int, int) {
	if h, ok := v.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, Unbounded
}

// All returns a sequence that drains the iterator from the front.
// The sequence is single-use: elements consumed by it are gone from the iterator.
func (it *Iter[T, A, B]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// DoubleEndedIter is a union of two double-ended iterators over the same element type.
type DoubleEndedIter[T any, A, B DoubleEndedIterator[T]] struct {
	Iter[T, A, B]
}

// NewDoubleEndedIter returns e as a double-ended iterator.
func NewDoubleEndedIter[T any, A, B DoubleEndedIterator[T]](e Either[A, B]) DoubleEndedIter[T, A, B] {
	return DoubleEndedIter[T, A, B]{Iter[T, A, B]{e}}
}

// NextBack advances the active iterator from the back.
func (it *DoubleEndedIter[T, A, B]) NextBack() (T, bool) {
	if it.isSecond {
		return it.second.NextBack()
	}
	return it.first.NextBack()
}

// Backward returns a sequence that drains the iterator from the back.
func (it *DoubleEndedIter[T, A, B]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ExactSizeIter is a union of two exact-size iterators over the same element type.
type ExactSizeIter[T any, A, B ExactSizeIterator[T]] struct {
	Iter[T, A, B]
}

// NewExactSizeIter returns e as an exact-size iterator.
func NewExactSizeIter[T any, A, B ExactSizeIterator[T]](e Either[A, B]) ExactSizeIter[T, A, B] {
	return ExactSizeIter[T, A, B]{Iter[T, A, B]{e}}
}

// Len returns the number of remaining elements of the active iterator.
func (it *ExactSizeIter[T, A, B]) Len() int {
	if it.isSecond {
		return it.second.Len()
	}
	return it.first.Len()
}

// ExactDoubleEndedIter is a union of two iterators that are both
// double-ended and exact-size.
type ExactDoubleEndedIter[T any, A, B ExactDoubleEndedIterator[T]] struct {
	DoubleEndedIter[T, A, B]
}

// NewExactDoubleEndedIter returns e as a double-ended exact-size iterator.
func NewExactDoubleEndedIter[T any, A, B ExactDoubleEndedIterator[T]](e Either[A, B]) ExactDoubleEndedIter[T, A, B] {
	return ExactDoubleEndedIter[T, A, B]{DoubleEndedIter[T, A, B]{Iter[T, A, B]{e}}}
}

// Len returns the number of remaining elements of the active iterator.
func (it *ExactDoubleEndedIter[T, A, B]) Len() int {
	if it.isSecond {
		return it.second.Len()
	}
	return it.first.Len()
}
