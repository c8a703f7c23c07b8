// Package either provides [Either], a generic two-variant tagged union that holds
// either a value of type A (the first variant) or a value of type B (the second variant).
//
// Neither variant is a default or an error case. The zero value of Either[A, B]
// holds the first variant with the zero value of A.
//
// The package also provides capability wrappers that make a union behave as the
// value it holds. A wrapper constrains both type parameters to the same interface
// and forwards every method of that interface to the active variant:
//   - [Iter], [DoubleEndedIter], [ExactSizeIter], [ExactDoubleEndedIter] for pull iterators;
//   - [Reader] and [BufReader] for byte-stream reading;
//   - [Writer] for byte-stream writing;
//   - [Ref] and [Mut] for reference coercion.
//
// An instantiation whose variants do not share the capability does not compile:
//
//	var plain = either.First[*bytes.Reader, *snappy.Reader](bytes.NewReader(data))
//	r := either.NewReader(plain)
//	io.Copy(dst, &r) // uses r.WriteTo, forwarded to (*bytes.Reader).WriteTo
//
// Errors returned by the active variant are passed to the caller unchanged.
package either
