package staging

import (
	"errors"
	"fmt"
	"reflect"
)

// AdditionalErrorsField is the conventional name of the unassociated-error
// collection on a staging struct.
const AdditionalErrorsField = "AdditionalErrors"

var (
	ErrNotAStruct        = errors.New("prototype is not a struct")
	ErrNotAStagingStruct = errors.New("staging struct has no Outcome fields")
	ErrReducerMismatch   = errors.New("reducer element type does not match the staging error type")
)

var slotType = reflect.TypeOf((*slot)(nil)).Elem()

// Converter performs the staging conversion by reflection, for records that
// skip source generation. Shape checks run once at construction; Convert
// itself follows the same algorithm and ordering as generated TryConvert
// methods.
type Converter struct {
	stagingType reflect.Type
	recordType  reflect.Type
	elem        reflect.Type // E, shared by every Outcome field
	fields      []slotField
	additional  int // staging field index of AdditionalErrors, -1 when absent
}

// slotField links one staging Outcome field to its record field.
type slotField struct {
	name         string
	stagingIndex int
	recordIndex  int
}

// NewConverter validates that stagingPrototype has exactly one Outcome slot
// per recordPrototype field, in the same declaration order, plus at most one
// AdditionalErrors slice. Prototypes are only inspected for their types.
func NewConverter(stagingPrototype, recordPrototype any) (*Converter, error) {
	stagingType := reflect.TypeOf(stagingPrototype)
	recordType := reflect.TypeOf(recordPrototype)

	if stagingType == nil || stagingType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("staging prototype %v: %w", stagingType, ErrNotAStruct)
	}

	if recordType == nil || recordType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record prototype %v: %w", recordType, ErrNotAStruct)
	}

	c := &Converter{
		stagingType: stagingType,
		recordType:  recordType,
		additional:  -1,
	}

	covered := make(map[string]bool, recordType.NumField())

	for i := 0; i < stagingType.NumField(); i++ {
		sf := stagingType.Field(i)

		if sf.Name == AdditionalErrorsField {
			if c.additional >= 0 {
				return nil, fmt.Errorf("duplicate %s field", AdditionalErrorsField)
			}

			if sf.Type.Kind() != reflect.Slice {
				return nil, fmt.Errorf("%s must be a slice, got %v", AdditionalErrorsField, sf.Type)
			}

			c.additional = i

			continue
		}

		if !sf.Type.Implements(slotType) {
			return nil, fmt.Errorf("staging field %s is not an Outcome", sf.Name)
		}

		rf, ok := recordType.FieldByName(sf.Name)
		if !ok || len(rf.Index) != 1 {
			return nil, fmt.Errorf("record %v has no field %s", recordType, sf.Name)
		}

		if !rf.IsExported() {
			return nil, fmt.Errorf("record field %s is not exported", sf.Name)
		}

		// Derive T and E from a zero Outcome of this field's type.
		zero := reflect.Zero(sf.Type).Interface().(slot)

		val, _ := zero.slotValue()
		if !val.Type().AssignableTo(rf.Type) {
			return nil, fmt.Errorf("staging field %s holds %v, record wants %v",
				sf.Name, val.Type(), rf.Type)
		}

		elem := zero.slotErr().Type()
		if c.elem == nil {
			c.elem = elem
		} else if c.elem != elem {
			return nil, fmt.Errorf("staging field %s has error type %v, want %v",
				sf.Name, elem, c.elem)
		}

		covered[sf.Name] = true
		c.fields = append(c.fields, slotField{
			name:         sf.Name,
			stagingIndex: i,
			recordIndex:  rf.Index[0],
		})
	}

	if len(c.fields) == 0 {
		return nil, ErrNotAStagingStruct
	}

	if c.additional >= 0 && c.stagingType.Field(c.additional).Type.Elem() != c.elem {
		return nil, fmt.Errorf("%s holds %v, want %v", AdditionalErrorsField,
			c.stagingType.Field(c.additional).Type.Elem(), c.elem)
	}

	for i := 0; i < recordType.NumField(); i++ {
		rf := recordType.Field(i)
		if !covered[rf.Name] {
			return nil, fmt.Errorf("staging %v has no slot for record field %s",
				stagingType, rf.Name)
		}
	}

	return c, nil
}

// Convert reduces a fully populated staging value into the record type.
// On failure the reduction sees additional errors first, in their original
// order, then field errors in declaration order, each exactly once. On
// success every field value is moved into the returned record and the
// reduction is not invoked.
func (c *Converter) Convert(stagingValue, reduce any) (any, error) {
	reducer, err := ParseReducer(reduce)
	if err != nil {
		return nil, err
	}

	if reducer.Elem != c.elem {
		return nil, fmt.Errorf("%w: reducer takes []%v, staging collects %v",
			ErrReducerMismatch, reducer.Elem, c.elem)
	}

	sv := reflect.ValueOf(stagingValue)
	if sv.Kind() == reflect.Pointer {
		sv = sv.Elem()
	}

	if sv.Type() != c.stagingType {
		return nil, fmt.Errorf("staging value is %v, converter expects %v",
			sv.Type(), c.stagingType)
	}

	errs := reflect.MakeSlice(reflect.SliceOf(c.elem), 0, len(c.fields))
	if c.additional >= 0 {
		errs = reflect.AppendSlice(errs, sv.Field(c.additional))
	}

	out := reflect.New(c.recordType).Elem()

	for _, f := range c.fields {
		s := sv.Field(f.stagingIndex).Interface().(slot)

		val, ok := s.slotValue()
		if !ok {
			errs = reflect.Append(errs, s.slotErr())
			continue
		}

		out.Field(f.recordIndex).Set(val)
	}

	if errs.Len() > 0 {
		return reflect.Zero(c.recordType).Interface(), reducer.Reduce(errs)
	}

	return out.Interface(), nil
}
