package evaluator

// The modifiers. These are the terms that work on the stack and the evaluation
// state directly rather than on values: list brackets, stack shuffling, and
// the 'x', 'y', 'z' terms that switch the evaluator into function capture.

import (
	"github.com/shopspring/decimal"
	"src.elv.sh/pkg/persistent/vector"

	"rpn/source/err"
	"rpn/source/token"
	"rpn/source/values"
)

func (c *Context) modify(name string, tok *token.Token) *err.Error {
	switch name {
	case "[":
		c.marks = append(c.marks, c.stack.Len())
		return nil
	case "]":
		if len(c.marks) == 0 {
			return err.CreateErr("eval/bracket/close", tok)
		}
		mark := c.marks[len(c.marks)-1]
		c.marks = c.marks[:len(c.marks)-1]
		collected := c.stack.TakeFrom(mark)
		c.stack.Push(values.MakeListOf(collected...))
		return nil
	case "dup":
		return c.duplicate(tok)
	case "unlist":
		return c.unlist(tok)
	case "flatten":
		return c.flatten(tok)
	case "previous":
		return c.previous(tok)
	case "x", "y", "z":
		// The introducing term is itself the first token of the body, so that
		// '3 x 2 * eval' captures 'x 2 *'.
		c.capture = &values.Lambda{Binding: name, Tokens: []token.Token{*tok}, Depth: c.stack.Len()}
		return nil
	}
	return err.CreateErr("eval/unknown", tok)
}

// duplicate is 'a n dup': pop the count, pop the value, push the value n
// times. A list is spread: its elements are pushed, n times over.
func (c *Context) duplicate(tok *token.Token) *err.Error {
	args, ok := c.stack.Take(2)
	if !ok {
		return err.CreateErr("eval/args", tok, "dup", 2)
	}
	count := args[1]
	if count.T != values.NUMBER {
		return err.CreateErr("eval/dup/count", tok)
	}
	d := count.V.(decimal.Decimal)
	if !d.Equal(d.Truncate(0)) || d.IsNegative() {
		return err.CreateErr("eval/dup/count", tok)
	}
	for k := int64(0); k < d.IntPart(); k++ {
		for _, el := range values.Elements(args[0]) {
			c.stack.Push(el)
		}
	}
	return nil
}

// unlist spills the elements of a list back onto the stack.
func (c *Context) unlist(tok *token.Token) *err.Error {
	top, ok := c.stack.Pop()
	if !ok {
		return err.CreateErr("eval/args", tok, "unlist", 1)
	}
	if !top.IsList() {
		return err.CreateErr("eval/list/flatten", tok)
	}
	vec := top.V.(vector.Vector)
	for i := 0; i < vec.Len(); i++ {
		el, _ := vec.Index(i)
		c.stack.Push(el.(values.Value))
	}
	return nil
}

// flatten replaces a nested list with a flat list of its leaves, in order.
func (c *Context) flatten(tok *token.Token) *err.Error {
	top, ok := c.stack.Pop()
	if !ok {
		return err.CreateErr("eval/args", tok, "flatten", 1)
	}
	if !top.IsList() {
		return err.CreateErr("eval/list/flatten", tok)
	}
	flat := vector.Empty
	var walk func(v values.Value)
	walk = func(v values.Value) {
		if !v.IsList() {
			flat = flat.Conj(v)
			return
		}
		vec := v.V.(vector.Vector)
		for i := 0; i < vec.Len(); i++ {
			el, _ := vec.Index(i)
			walk(el.(values.Value))
		}
	}
	walk(top)
	c.stack.Push(values.MakeList(flat))
	return nil
}

// previous recalls the most recent result of the session.
func (c *Context) previous(tok *token.Token) *err.Error {
	if c.vars == nil {
		return err.CreateErr("eval/variable", tok)
	}
	n := c.vars.ResultCount()
	if n == 0 {
		return err.CreateErr("repl/history", tok)
	}
	v, _ := c.vars.Result(n)
	c.stack.Push(v)
	return nil
}
