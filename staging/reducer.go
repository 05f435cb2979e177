package staging

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"
)

var (
	ErrReducerIsNotAFunction = errors.New("provided reducer is not a function")
	ErrIsNotAReducer         = errors.New("provided function is not a recognizable reducer")
	ErrFinalNotAnError       = errors.New("reducer result type does not implement error")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Reducer is a validated consumer reduction function of the form
//
//	func(errs []E) F
//
// where F implements error. It collapses the ordered accumulator of one
// conversion into a single error value.
type Reducer struct {
	Elem         reflect.Type // E, the per-field error type
	Final        reflect.Type // F, the aggregated error type
	PackageAlias string
	Name         string

	fn reflect.Value
}

// ParseReducer inspects the provided function and returns a Reducer if it has
// a valid reduction signature.
func ParseReducer(fn any) (Reducer, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Reducer{}, ErrReducerIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() != 1 || fnType.IsVariadic() {
		return Reducer{}, ErrIsNotAReducer
	}

	arg := fnType.In(0)
	if arg.Kind() != reflect.Slice {
		return Reducer{}, ErrIsNotAReducer
	}

	final := fnType.Out(0)
	if !final.Implements(errorType) {
		return Reducer{}, ErrFinalNotAnError
	}

	reducer := Reducer{
		Elem:  arg.Elem(),
		Final: final,
		fn:    fnVal,
	}

	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		_, qualified := path.Split(fnPC.Name())
		reducer.PackageAlias, reducer.Name, _ = strings.Cut(qualified, ".")
	}

	return reducer, nil
}

// Reduce invokes the reduction over errs, which must be a []E value.
// errs must be non-empty; the empty accumulator never reaches the reducer.
func (r Reducer) Reduce(errs reflect.Value) error {
	out := r.fn.Call([]reflect.Value{errs})[0]

	err, _ := out.Interface().(error)

	return err
}
