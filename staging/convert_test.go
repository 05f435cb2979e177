package staging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staging-generator/staging"
)

type testArgs struct {
	Name string
	Age  uint32
}

type testArgsStaging struct {
	Name staging.Outcome[string, fieldErr]
	Age  staging.Outcome[uint32, fieldErr]

	AdditionalErrors []fieldErr
}

// passthrough is identity on a singleton and wraps anything longer.
func passthrough(errs []fieldErr) error {
	if len(errs) == 1 {
		return errs[0]
	}

	return multiErr{errs: errs}
}

func newTestConverter(t *testing.T) *staging.Converter {
	t.Helper()

	c, err := staging.NewConverter(testArgsStaging{}, testArgs{})
	require.NoError(t, err)

	return c
}

func TestConverter_AllFieldsOk(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t)

	calls := 0
	reduce := func(errs []fieldErr) error {
		calls++
		return passthrough(errs)
	}

	got, err := c.Convert(testArgsStaging{
		Name: staging.Ok[string, fieldErr]("Alice"),
		Age:  staging.Ok[uint32, fieldErr](25),
	}, reduce)

	require.NoError(t, err)
	assert.Equal(t, testArgs{Name: "Alice", Age: 25}, got)
	assert.Zero(t, calls, "reduction must not run on success")
}

func TestConverter_SingleErrorPassthrough(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t)

	got, err := c.Convert(testArgsStaging{
		Name: staging.Err[string, fieldErr](fieldErr{msg: "invalid name"}),
		Age:  staging.Ok[uint32, fieldErr](30),
	}, passthrough)

	assert.Equal(t, testArgs{}, got)
	assert.Equal(t, fieldErr{msg: "invalid name"}, err)
}

func TestConverter_OrderPreservation(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t)

	var seen []fieldErr
	reduce := func(errs []fieldErr) error {
		seen = append([]fieldErr(nil), errs...)
		return multiErr{errs: seen}
	}

	u1 := fieldErr{msg: "u1"}
	u2 := fieldErr{msg: "u2"}
	f1 := fieldErr{msg: "f1"}
	f2 := fieldErr{msg: "f2"}

	_, err := c.Convert(testArgsStaging{
		Name:             staging.Err[string, fieldErr](f1),
		Age:              staging.Err[uint32, fieldErr](f2),
		AdditionalErrors: []fieldErr{u1, u2},
	}, reduce)

	require.Error(t, err)
	assert.Equal(t, []fieldErr{u1, u2, f1, f2}, seen)
}

func TestConverter_AdditionalErrorsOnly(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t)

	mismatch := fieldErr{msg: "name and age do not match"}

	_, err := c.Convert(testArgsStaging{
		Name:             staging.Ok[string, fieldErr]("Mildred"),
		Age:              staging.Ok[uint32, fieldErr](70),
		AdditionalErrors: []fieldErr{mismatch},
	}, passthrough)

	assert.Equal(t, mismatch, err)
}

func TestConverter_PointerStagingValue(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t)

	got, err := c.Convert(&testArgsStaging{
		Name: staging.Ok[string, fieldErr]("Bob"),
		Age:  staging.Ok[uint32, fieldErr](40),
	}, passthrough)

	require.NoError(t, err)
	assert.Equal(t, testArgs{Name: "Bob", Age: 40}, got)
}

func TestConverter_ReducerMismatch(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t)

	type otherErr struct{ error }

	_, err := c.Convert(testArgsStaging{
		Name: staging.Ok[string, fieldErr]("Alice"),
		Age:  staging.Ok[uint32, fieldErr](25),
	}, func(errs []otherErr) error { return nil })

	assert.ErrorIs(t, err, staging.ErrReducerMismatch)
}

func TestNewConverter_Rejections(t *testing.T) {
	t.Parallel()

	type noSlots struct {
		Name string
	}

	type wrongValueType struct {
		Name staging.Outcome[int, fieldErr]
		Age  staging.Outcome[uint32, fieldErr]
	}

	type mixedErrTypes struct {
		Name staging.Outcome[string, fieldErr]
		Age  staging.Outcome[uint32, multiErr]
	}

	type missingAge struct {
		Name staging.Outcome[string, fieldErr]
	}

	type badAdditional struct {
		Name staging.Outcome[string, fieldErr]
		Age  staging.Outcome[uint32, fieldErr]

		AdditionalErrors []multiErr
	}

	tests := []struct {
		name    string
		staging any
		record  any
	}{
		{name: "staging not a struct", staging: 42, record: testArgs{}},
		{name: "record not a struct", staging: testArgsStaging{}, record: "nope"},
		{name: "no outcome fields", staging: noSlots{}, record: testArgs{}},
		{name: "value type mismatch", staging: wrongValueType{}, record: testArgs{}},
		{name: "mixed error types", staging: mixedErrTypes{}, record: testArgs{}},
		{name: "uncovered record field", staging: missingAge{}, record: testArgs{}},
		{name: "additional errors of wrong type", staging: badAdditional{}, record: testArgs{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := staging.NewConverter(tt.staging, tt.record)
			assert.Error(t, err)
		})
	}
}
