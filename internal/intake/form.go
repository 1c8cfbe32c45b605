// Package intake turns raw form values into a Human.
package intake

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/dinocompare/internal/dino"
)

// Form field keys.
const (
	FieldName   = "name"
	FieldFeet   = "feet"
	FieldInches = "inches"
	FieldWeight = "weight"
	FieldDiet   = "diet"
)

// Fields lists every required field in form order.
var Fields = []string{FieldName, FieldFeet, FieldInches, FieldWeight, FieldDiet}

// NumericFields are the fields that only accept stepped numeric values.
var NumericFields = []string{FieldFeet, FieldInches, FieldWeight}

// RequiredMessage is shown when a submission is missing fields.
const RequiredMessage = "Please input all required fields"

// ErrIncomplete is returned when any required field is empty.
var ErrIncomplete = errors.New("required fields missing")

// IncompleteError lists the empty fields of a rejected submission.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIncomplete, strings.Join(e.Missing, ", "))
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// FieldError reports a present but unusable field value.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IsNumeric reports whether field only takes numeric values.
func IsNumeric(field string) bool {
	for _, f := range NumericFields {
		if f == field {
			return true
		}
	}
	return false
}

// Parse builds a Human from form values. Every field must be present;
// nothing else about the values is checked beyond numeric parsing.
func Parse(values map[string]string) (dino.Human, error) {
	var missing []string
	for _, f := range Fields {
		if strings.TrimSpace(values[f]) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return dino.Human{}, &IncompleteError{Missing: missing}
	}

	nums := make(map[string]float64, len(NumericFields))
	for _, f := range NumericFields {
		raw := strings.TrimSpace(values[f])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dino.Human{}, &FieldError{Field: f, Value: raw, Err: err}
		}
		nums[f] = v
	}

	return dino.Human{
		Name:   strings.TrimSpace(values[FieldName]),
		Feet:   nums[FieldFeet],
		Inches: nums[FieldInches],
		Weight: nums[FieldWeight],
		Diet:   strings.TrimSpace(values[FieldDiet]),
	}, nil
}
