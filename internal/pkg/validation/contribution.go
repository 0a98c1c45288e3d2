package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Allocation bounds and tolerance
const (
	MinPercentage  = 0.0
	MaxPercentage  = 100.0
	TargetTotal    = 100.0
	TotalTolerance = 1e-6
)

// Field names reported in FieldError
const (
	FieldAcademy   = "academy"
	FieldIntensive = "intensive"
	FieldNiat      = "niat"
	FieldTotal     = "total"
)

// FieldError describes a single validation failure
type FieldError struct {
	Field   string `json:"field" example:"academy"`
	Message string `json:"message" example:"academy must be between 0 and 100."`
}

// ContributionInput holds raw, not yet coerced, allocation values.
// A nil value means the field was not supplied.
type ContributionInput struct {
	Academy   interface{}
	Intensive interface{}
	Niat      interface{}
}

// Allocation is a coerced academy/intensive/niat triple
type Allocation struct {
	Academy   float64
	Intensive float64
	Niat      float64
}

// Total returns the sum of the three percentages
func (a Allocation) Total() float64 {
	return a.Academy + a.Intensive + a.Niat
}

// Result is the outcome of validating a contribution. Errors lists every
// violation found; Allocation is only meaningful when OK is true.
type Result struct {
	OK         bool
	Errors     []FieldError
	Allocation Allocation
}

// ValidateContribution checks that each of academy, intensive and niat is a
// finite number in [0,100] and that together they sum to 100 within
// TotalTolerance. All violations are collected.
func ValidateContribution(input ContributionInput) Result {
	errs := make([]FieldError, 0)

	var alloc Allocation
	fields := []struct {
		name  string
		value interface{}
		dst   *float64
	}{
		{FieldAcademy, input.Academy, &alloc.Academy},
		{FieldIntensive, input.Intensive, &alloc.Intensive},
		{FieldNiat, input.Niat, &alloc.Niat},
	}

	for _, f := range fields {
		value, ok := ToNumber(f.value)
		if !ok {
			errs = append(errs, FieldError{Field: f.name, Message: fmt.Sprintf("%s must be a number.", f.name)})
			continue
		}
		if value < MinPercentage || value > MaxPercentage {
			errs = append(errs, FieldError{Field: f.name, Message: fmt.Sprintf("%s must be between 0 and 100.", f.name)})
		}
		*f.dst = value
	}

	// non-numeric fields were left at zero above
	if math.Abs(alloc.Total()-TargetTotal) > TotalTolerance {
		errs = append(errs, FieldError{Field: FieldTotal, Message: "Contribution totals must equal 100."})
	}

	return Result{
		OK:         len(errs) == 0,
		Errors:     errs,
		Allocation: alloc,
	}
}

// ValidateAllocation validates an already-numeric triple
func ValidateAllocation(academy, intensive, niat float64) Result {
	return ValidateContribution(ContributionInput{Academy: academy, Intensive: intensive, Niat: niat})
}

// ToNumber coerces a decoded JSON value into a finite float64.
// Numeric strings are accepted; booleans, empty strings and nil are not.
func ToNumber(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
