package catalog

// The function-consuming operators. Each of these takes a function captured
// with 'x' (or 'x' and 'y', or all three) off the stack and evaluates it one
// or many times through the Env.

import (
	"errors"

	"github.com/shopspring/decimal"

	"rpn/source/err"
	"rpn/source/values"
)

// The catalog has no token to attach; the evaluator fills it in when the
// error surfaces.
func wantLambda(name string, v values.Value) (*values.Lambda, error) {
	if v.T != values.FUNC {
		return nil, err.CreateErr("eval/function/apply", nil, name)
	}
	return v.V.(*values.Lambda), nil
}

// evaluateFunction is 'eval', 'eval2', and 'eval3': the function comes last,
// the values to bind come before it.
func evaluateFunction(name string) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		fn, e := wantLambda(name, args[len(args)-1])
		if e != nil {
			return values.Value{}, e
		}
		return env.EvaluateLambda(fn, args[:len(args)-1]...)
	}
}

// filterList keeps the elements of a list for which the function evaluates to
// something non-zero.
func filterList(env Env, args []values.Value) (values.Value, error) {
	fn, e := wantLambda("filter", args[1])
	if e != nil {
		return values.Value{}, e
	}
	kept := []values.Value{}
	for _, el := range elements(args[0]) {
		verdict, e := env.EvaluateLambda(fn, el)
		if e != nil {
			return values.Value{}, e
		}
		if verdict.T != values.NUMBER {
			return values.Value{}, errors.New("'filter' function must return a number")
		}
		if !verdict.V.(decimal.Decimal).IsZero() {
			kept = append(kept, el)
		}
	}
	return listOf(kept), nil
}

// reduceOverRange is 'nsum' and 'nprod': fold the function's value over the
// integers from a to b.
func reduceOverRange(name string, unit decimal.Decimal,
	combine func(acc, next decimal.Decimal) decimal.Decimal) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		from, e := wantInteger(name, args[0])
		if e != nil {
			return values.Value{}, e
		}
		to, e := wantInteger(name, args[1])
		if e != nil {
			return values.Value{}, e
		}
		fn, e := wantLambda(name, args[2])
		if e != nil {
			return values.Value{}, e
		}
		acc := unit
		for k := from; k.LessThanOrEqual(to); k = k.Add(one) {
			result, e := env.EvaluateLambda(fn, values.MakeNumber(k))
			if e != nil {
				return values.Value{}, e
			}
			d, e := wantNumber(name, result)
			if e != nil {
				return values.Value{}, e
			}
			acc = combine(acc, d)
		}
		return values.MakeNumber(acc), nil
	}
}

// limitAt estimates the limit of the function at a point by evaluating it
// ever closer and stopping when successive values agree. Approaching from
// above is 'limit', from below 'limitn'. This is numeric estimation, not
// analysis: a function that oscillates on fine scales will fool it.
func limitAt(name string, fromAbove bool) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		point, e := wantNumber(name, args[0])
		if e != nil {
			return values.Value{}, e
		}
		fn, e := wantLambda(name, args[1])
		if e != nil {
			return values.Value{}, e
		}
		offset := one
		if !fromAbove {
			offset = offset.Neg()
		}
		ten := decimal.NewFromInt(10)
		tolerance := one.Div(ten.Pow(decimal.NewFromInt(int64(env.Config().Precision / 2))))
		var previous decimal.Decimal
		havePrevious := false
		for step := 0; step < 16; step++ {
			result, e := env.EvaluateLambda(fn, values.MakeNumber(point.Add(offset)))
			if e != nil {
				return values.Value{}, e
			}
			d, e := wantNumber(name, result)
			if e != nil {
				return values.Value{}, e
			}
			if havePrevious && d.Sub(previous).Abs().LessThan(tolerance) {
				return values.MakeNumber(d), nil
			}
			previous = d
			havePrevious = true
			offset = offset.Div(ten)
		}
		return values.MakeNumber(previous), nil
	}
}
