package evaluator

// Deferred evaluation of captured functions. A function's body is replayed in
// a fresh context with 'x', 'y', 'z' standing for the supplied values; list
// values are spread element by element, so a function maps over lists the same
// way the operators do.

import (
	"src.elv.sh/pkg/persistent/vector"

	"rpn/source/err"
	"rpn/source/token"
	"rpn/source/values"
)

func (c *Context) EvaluateLambda(fn *values.Lambda, bound ...values.Value) (values.Value, error) {
	length := -1
	for _, b := range bound {
		if b.IsList() {
			l := b.V.(vector.Vector).Len()
			if length < 0 || l < length {
				length = l
			}
		}
	}
	if length >= 0 {
		result := vector.Empty
		elementBound := make([]values.Value, len(bound))
		for i := 0; i < length; i++ {
			for j, b := range bound {
				if b.IsList() {
					el, _ := b.V.(vector.Vector).Index(i)
					elementBound[j] = el.(values.Value)
				} else {
					elementBound[j] = b
				}
			}
			element, e := c.EvaluateLambda(fn, elementBound...)
			if e != nil {
				return values.Value{}, e
			}
			result = result.Conj(element)
		}
		return values.MakeList(result), nil
	}
	sub := newContext(c.cat, c.vars, c.cfg)
	sub.bound = bound
	for i := range fn.Tokens {
		if e := sub.dispatch(&fn.Tokens[i]); e != nil {
			return values.Value{}, e
		}
	}
	var end *token.Token
	if len(fn.Tokens) > 0 {
		end = &fn.Tokens[len(fn.Tokens)-1]
	}
	if sub.capture != nil {
		sub.stack.Push(values.Value{T: values.FUNC, V: sub.capture})
		sub.capture = nil
	}
	if sub.stack.Len() != 1 {
		return values.Value{}, err.CreateErr("eval/function/malformed", end, sub.stack.Len())
	}
	result, _ := sub.stack.Pop()
	return result, nil
}
