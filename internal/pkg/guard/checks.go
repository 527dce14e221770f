package guard

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// The checks below return nil on success so that constructors can feed them
// straight into errors.Join.

// NotBlank fails when value is empty or only whitespace.
func NotBlank(value, paramName string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// NotNil fails when ptr is nil.
func NotNil[T any](ptr *T, paramName string) error {
	if ptr == nil {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// NotNilInterface fails when value is nil or an interface holding a nil
// pointer, map, slice, func or chan.
func NotNilInterface(value any, paramName string) error {
	if value == nil {
		return errs.NewValueIsRequiredError(paramName)
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return errs.NewValueIsRequiredError(paramName)
		}
	}
	return nil
}

// NotZeroTime fails when t is the zero instant.
func NotZeroTime(t time.Time, paramName string) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// NotNegative fails when value is below zero.
func NotNegative[T ~int | ~int64](value T, paramName string) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is negative", value))
	}
	return nil
}

// Positive fails when value is zero or below.
func Positive[T ~int | ~int64](value T, paramName string) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", value))
	}
	return nil
}

// NotNegativeAmount fails when amount is below zero.
func NotNegativeAmount(amount decimal.Decimal, paramName string) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", amount))
	}
	return nil
}

// PositiveAmount fails when amount is zero or below.
func PositiveAmount(amount decimal.Decimal, paramName string) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is not greater than 0", amount))
	}
	return nil
}

// True fails with cause when cond does not hold.
func True(cond bool, paramName string, cause error) error {
	if !cond {
		return errs.NewValueIsInvalidErrorWithCause(paramName, cause)
	}
	return nil
}
