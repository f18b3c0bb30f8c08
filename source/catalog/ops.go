package catalog

// Implementations of the scalar operators. By the time any of these run, the
// broadcaster has already unrolled list arguments, so everything here deals in
// single values.

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"rpn/source/err"
	"rpn/source/values"
)

var one = decimal.NewFromInt(1)

// The fundamental constants, to more places than the default precision will
// ever show.
var (
	pi, _  = decimal.NewFromString("3.14159265358979323846264338327950288419716939937511")
	ee, _  = decimal.NewFromString("2.71828182845904523536028747135266249775724709369996")
	phi, _ = decimal.NewFromString("1.61803398874989484820458683436563811772030917980576")
)

func wantNumber(name string, v values.Value) (decimal.Decimal, error) {
	if v.T != values.NUMBER {
		return decimal.Zero, fmt.Errorf("'%s' expects a number, not a %s", name, v.T)
	}
	return v.V.(decimal.Decimal), nil
}

func wantInteger(name string, v values.Value) (decimal.Decimal, error) {
	d, e := wantNumber(name, v)
	if e != nil {
		return decimal.Zero, e
	}
	if !d.Equal(d.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("'%s' expects an integer", name)
	}
	return d, nil
}

// numericOp adapts a plain decimal function to the OperatorFn signature; most
// of the catalog is built out of these.
func numericOp(name string, f func(args []decimal.Decimal) (decimal.Decimal, error)) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		ds := make([]decimal.Decimal, len(args))
		for i, arg := range args {
			d, e := wantNumber(name, arg)
			if e != nil {
				return values.Value{}, e
			}
			ds[i] = d
		}
		result, e := f(ds)
		if e != nil {
			return values.Value{}, e
		}
		return values.MakeNumber(result), nil
	}
}

// floatOp adapts a float64 function, for the operators that decimal has no
// exact answer for (roots, logarithms, trigonometry).
func floatOp(name string, f func(x float64) (float64, error)) OperatorFn {
	return numericOp(name, func(args []decimal.Decimal) (decimal.Decimal, error) {
		x, _ := args[0].Float64()
		y, e := f(x)
		if e != nil {
			return decimal.Zero, e
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return decimal.Zero, fmt.Errorf("'%s' has no finite result here", name)
		}
		return decimal.NewFromFloat(y), nil
	})
}

func constantOp(value decimal.Decimal) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		return values.MakeNumber(value), nil
	}
}

func add(args []decimal.Decimal) (decimal.Decimal, error) {
	return args[0].Add(args[1]), nil
}

func subtract(args []decimal.Decimal) (decimal.Decimal, error) {
	return args[0].Sub(args[1]), nil
}

func multiply(args []decimal.Decimal) (decimal.Decimal, error) {
	return args[0].Mul(args[1]), nil
}

func divide(args []decimal.Decimal) (decimal.Decimal, error) {
	if args[1].IsZero() {
		return decimal.Zero, errors.New("division by zero")
	}
	return args[0].Div(args[1]), nil
}

func modulo(args []decimal.Decimal) (decimal.Decimal, error) {
	if args[1].IsZero() {
		return decimal.Zero, errors.New("division by zero")
	}
	return args[0].Mod(args[1]), nil
}

func reciprocal(args []decimal.Decimal) (decimal.Decimal, error) {
	if args[0].IsZero() {
		return decimal.Zero, errors.New("division by zero")
	}
	return one.Div(args[0]), nil
}

func exponentiate(args []decimal.Decimal) (decimal.Decimal, error) {
	base, exponent := args[0], args[1]
	if exponent.Equal(exponent.Truncate(0)) {
		if base.IsZero() && exponent.IsNegative() {
			return decimal.Zero, errors.New("division by zero")
		}
		return base.Pow(exponent), nil
	}
	// A fractional exponent drops to floats.
	x, _ := base.Float64()
	y, _ := exponent.Float64()
	result := math.Pow(x, y)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return decimal.Zero, errors.New("'power' has no finite result here")
	}
	return decimal.NewFromFloat(result), nil
}

func factorial(args []decimal.Decimal) (decimal.Decimal, error) {
	n := args[0]
	if !n.Equal(n.Truncate(0)) || n.IsNegative() {
		return decimal.Zero, errors.New("'factorial' expects a non-negative integer")
	}
	result := one
	for k := one; k.LessThanOrEqual(n); k = k.Add(one) {
		result = result.Mul(k)
	}
	return result, nil
}

func fibonacci(args []decimal.Decimal) (decimal.Decimal, error) {
	n := args[0]
	if !n.Equal(n.Truncate(0)) || n.IsNegative() {
		return decimal.Zero, errors.New("'fibonacci' expects a non-negative integer")
	}
	a, b := decimal.Zero, one
	for k := decimal.Zero; k.LessThan(n); k = k.Add(one) {
		a, b = b, a.Add(b)
	}
	return a, nil
}

func isDivisible(args []decimal.Decimal) (decimal.Decimal, error) {
	if args[1].IsZero() {
		return decimal.Zero, errors.New("division by zero")
	}
	if args[0].Mod(args[1]).IsZero() {
		return one, nil
	}
	return decimal.Zero, nil
}

// setVariable is the 'set' operator: '$profit 42 set' binds $profit. The name
// arrives as a string value because referencing an unbound variable pushes its
// name.
func setVariable(env Env, args []values.Value) (values.Value, error) {
	if args[0].T != values.STRING {
		return values.Value{}, err.CreateErr("eval/variable/name", nil)
	}
	if e := env.SetVariable(args[0].V.(string), args[1]); e != nil {
		return values.Value{}, e
	}
	return args[1], nil
}

// settingOp builds the operators that adjust the evaluation settings; each
// applies the new value and returns the setting now in force.
func settingOp(name string, apply func(env Env, n decimal.Decimal) decimal.Decimal) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		d, e := wantInteger(name, args[0])
		if e != nil {
			return values.Value{}, e
		}
		return values.MakeNumber(apply(env, d)), nil
	}
}
