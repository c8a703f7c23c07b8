package either

// Referencer is implemented by values that can be viewed as a T,
// for example a byte buffer viewed as []byte.
type Referencer[T any] interface {
	AsRef() T
}

// MutReferencer is implemented by values that expose a T for modification.
type MutReferencer[T any] interface {
	AsMut() *T
}

// Ref is a union of two values that can both be viewed as a T.
// It implements [Referencer] by forwarding to the active variant.
type Ref[T any, A, B Referencer[T]] struct {
	Either[A, B]
}

// NewRef returns e as a [Referencer].
func NewRef[T any, A, B Referencer[T]](e Either[A, B]) Ref[T, A, B] {
	return Ref[T, A, B]{e}
}

// AsRef returns the view of the active variant.
func (r Ref[T, A, B]) AsRef() T {
	if r.isSecond {
		return r.second.AsRef()
	}
	return r.first.AsRef()
}

// Mut is a union of two values that both expose a T for modification.
// It implements [MutReferencer] by forwarding to the active variant.
type Mut[T any, A, B MutReferencer[T]] struct {
	Either[A, B]
}

// NewMut returns e as a [MutReferencer].
func NewMut[T any, A, B MutReferencer[T]](e Either[A, B]) Mut[T, A, B] {
	return Mut[T, A, B]{e}
}

// AsMut returns the pointer exposed by the active variant.
func (m *Mut[T, A, B]) AsMut() *T {
	if m.isSecond {
		return m.second.AsMut()
	}
	return m.first.AsMut()
}
