package evaluator

// Element-wise application of the scalar operators. Whenever a regular
// operator finds a list among its arguments, it is applied once per element
// instead, pairing the lists up positionwise and carrying the scalar arguments
// along unchanged. This recurses, so nested lists work to any depth.

import (
	"fmt"

	"src.elv.sh/pkg/persistent/vector"

	"rpn/source/catalog"
	"rpn/source/err"
	"rpn/source/settings"
	"rpn/source/token"
	"rpn/source/values"
)

func (c *Context) broadcast(fn catalog.OperatorFn, args []values.Value, tok *token.Token) (values.Value, *err.Error) {
	anyList := false
	for _, arg := range args {
		if arg.IsList() {
			anyList = true
			break
		}
	}
	if !anyList {
		result, e := fn(c, args)
		if e != nil {
			return values.Value{}, wrapOperatorError(e, tok)
		}
		return result, nil
	}
	if settings.SHOW_BROADCAST {
		fmt.Printf("broadcast: %v over %v\n", tok.Literal, args)
	}
	// Lists are paired up to the length of the shortest; scalars go along with
	// every element. A zero-length list therefore gives a zero-length result.
	length := -1
	for _, arg := range args {
		if arg.IsList() {
			l := arg.V.(vector.Vector).Len()
			if length < 0 || l < length {
				length = l
			}
		}
	}
	result := vector.Empty
	elementArgs := make([]values.Value, len(args))
	for i := 0; i < length; i++ {
		for j, arg := range args {
			if arg.IsList() {
				el, _ := arg.V.(vector.Vector).Index(i)
				elementArgs[j] = el.(values.Value)
			} else {
				elementArgs[j] = arg
			}
		}
		element, e := c.broadcast(fn, elementArgs, tok)
		if e != nil {
			return values.Value{}, err.CreateErr("eval/operator/element", tok, e.Message, i)
		}
		result = result.Conj(element)
	}
	return values.MakeList(result), nil
}
