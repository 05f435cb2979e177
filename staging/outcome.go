package staging

import "reflect"

// Outcome holds the result of one field's validation: either a value of T or
// an error of E. Both states at once are structurally impossible. The zero
// Outcome reads as a failure carrying E's zero value.
type Outcome[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Outcome holding v.
func Ok[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{value: v, ok: true}
}

// Err returns a failed Outcome holding e.
func Err[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{err: e}
}

// Get returns the value and true on success, or T's zero value and false.
func (o Outcome[T, E]) Get() (T, bool) {
	return o.value, o.ok
}

// Err returns the error. Meaningful only when IsOk reports false.
func (o Outcome[T, E]) Err() E {
	return o.err
}

// IsOk reports whether the Outcome holds a value.
func (o Outcome[T, E]) IsOk() bool {
	return o.ok
}

// slot is the reflection bridge used by Converter. Keeping it unexported and
// implemented by value receivers means any Outcome field satisfies it
// regardless of its type arguments.
type slot interface {
	slotValue() (reflect.Value, bool)
	slotErr() reflect.Value
}

func (o Outcome[T, E]) slotValue() (reflect.Value, bool) {
	return reflect.ValueOf(&o.value).Elem(), o.ok
}

func (o Outcome[T, E]) slotErr() reflect.Value {
	return reflect.ValueOf(&o.err).Elem()
}
