package person

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"staging-generator/staging"
)

// ErrTooFewParts reports input that cannot be split into name and age at all.
var ErrTooFewParts = errors.New("not enough parts in input")

const maxAge = 150

// ParseStaging splits a comma-separated "name,age" line into a fully
// populated staging value. It fails only when parsing is impossible;
// semantic errors land in the staging slots so they can all be reported at
// once.
func ParseStaging(line string) (ArgsStaging, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return ArgsStaging{}, ErrTooFewParts
	}

	s := ArgsStaging{
		Name: checkName(parts[0]),
		Age:  checkAge(parts[1]),
	}

	// Cross-field check: not attributable to a single field.
	name, nameOK := s.Name.Get()
	age, ageOK := s.Age.Get()

	if nameOK && ageOK && name == "Mildred" && age < 80 {
		s.AdditionalErrors = append(s.AdditionalErrors, Error{Kind: KindNameAgeMismatch})
	}

	return s, nil
}

// Parse parses a "name,age" line into Args, reporting every semantic error
// of the attempt in one aggregated Error.
func Parse(line string) (Args, error) {
	s, err := ParseStaging(line)
	if err != nil {
		return Args{}, err
	}

	return s.TryConvert()
}

func checkName(raw string) staging.Outcome[string, Error] {
	if raw == "" {
		return staging.Err[string, Error](Error{Kind: KindInvalidName})
	}

	if first, _ := utf8.DecodeRuneInString(raw); unicode.IsLower(first) {
		return staging.Err[string, Error](Error{Kind: KindInvalidName})
	}

	return staging.Ok[string, Error](raw)
}

func checkAge(raw string) staging.Outcome[uint32, Error] {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return staging.Err[uint32, Error](Error{Kind: KindParse, Cause: err})
	}

	if n > maxAge {
		return staging.Err[uint32, Error](Error{Kind: KindAgeTooHigh})
	}

	return staging.Ok[uint32, Error](uint32(n))
}
