package evaluator

// The evaluator walks the token stream left to right, dispatching each term on
// what kind of thing it is: a modifier, an operator, a variable, or a number
// literal. There is no parse tree. The whole state of an evaluation is the
// operand stack, the open-bracket marks, and (sometimes) a function being
// captured.

import (
	"fmt"
	"strconv"

	"rpn/source/catalog"
	"rpn/source/dtypes"
	"rpn/source/err"
	"rpn/source/number"
	"rpn/source/settings"
	"rpn/source/token"
	"rpn/source/values"
)

// A VariableStore supplies user variables and the results history. The REPL
// implements it; one-shot evaluation passes nil, and any term that needs it
// then fails with an explanation.
type VariableStore interface {
	GetVariable(name string) (values.Value, bool)
	SetVariable(name string, v values.Value) error
	Result(n int) (values.Value, bool) // 1-based index into this session's results
	ResultCount() int
}

type Context struct {
	cat   *catalog.Catalog
	vars  VariableStore
	cfg   *number.Config
	stack *dtypes.Stack[values.Value]
	marks []int // stack depths at which '[' was seen, innermost last

	capture *values.Lambda // non-nil while terms are being captured, not evaluated
	bound   []values.Value // non-nil inside a function body: the values for x, y, z
}

func newContext(cat *catalog.Catalog, vars VariableStore, cfg *number.Config) *Context {
	return &Context{cat: cat, vars: vars, cfg: cfg, stack: dtypes.NewStack[values.Value]()}
}

// Evaluate runs one expression to completion. The token slice is expected to
// end with an EOF token, as the lexer supplies it.
func Evaluate(tokens []token.Token, cat *catalog.Catalog, vars VariableStore, cfg *number.Config) (values.Value, *err.Error) {
	c := newContext(cat, vars, cfg)
	end := &token.Token{Type: token.EOF}
	for i := range tokens {
		tok := &tokens[i]
		if tok.Type == token.EOF {
			end = tok
			break
		}
		if e := c.dispatch(tok); e != nil {
			return values.Value{}, e
		}
	}
	// A capture that no operator ever consumed becomes the result: 'x 2 *'
	// evaluates to the function itself.
	if c.capture != nil {
		c.stack.Push(values.Value{T: values.FUNC, V: c.capture})
		c.capture = nil
	}
	if len(c.marks) > 0 {
		return values.Value{}, err.CreateErr("eval/bracket/open", end)
	}
	if c.stack.Len() != 1 {
		return values.Value{}, err.CreateErr("eval/final", end, c.stack.Len())
	}
	result, _ := c.stack.Pop()
	return result, nil
}

func (c *Context) dispatch(tok *token.Token) *err.Error {
	if settings.SHOW_EVALUATOR {
		fmt.Printf("evaluator: %-10v stack %v\n", tok.Literal, c.stack.ToSlice())
	}
	if c.capture != nil {
		if tok.Type == token.TERM && c.cat.IsFunctionOperator(c.cat.Resolve(tok.Literal)) {
			c.stack.Push(values.Value{T: values.FUNC, V: c.capture})
			c.capture = nil
			// The operator that ended the capture is then evaluated as usual.
		} else {
			c.capture.Tokens = append(c.capture.Tokens, *tok)
			return nil
		}
	}
	switch tok.Type {
	case token.STRING:
		c.stack.Push(values.Value{T: values.STRING, V: tok.Literal})
		return nil
	case token.VARIABLE:
		return c.pushVariable(tok)
	}
	name := c.cat.Resolve(tok.Literal)
	if c.bound != nil {
		if i := boundIndex(name); i >= 0 {
			if i >= len(c.bound) {
				return err.CreateErr("eval/function/bound", tok, name)
			}
			c.stack.Push(c.bound[i])
			return nil
		}
	}
	info, ok := c.cat.Get(name)
	if !ok {
		return c.pushLiteral(tok)
	}
	switch info.Cat {
	case catalog.Modifier:
		return c.modify(name, tok)
	case catalog.ListOperator:
		args, ok := c.stack.Take(info.Arity)
		if !ok {
			return err.CreateErr("eval/args", tok, name, info.Arity)
		}
		result, e := info.Fn(c, args)
		if e != nil {
			return wrapOperatorError(e, tok)
		}
		c.stack.Push(result)
		return nil
	default:
		args, ok := c.stack.Take(info.Arity)
		if !ok {
			return err.CreateErr("eval/args", tok, name, info.Arity)
		}
		result, e := c.broadcast(info.Fn, args, tok)
		if e != nil {
			return e
		}
		c.stack.Push(result)
		return nil
	}
}

// pushVariable handles the $ terms: '$3' recalls a result, '$profit' a user
// variable. An unbound name is pushed as a string so that 'set' can bind it.
func (c *Context) pushVariable(tok *token.Token) *err.Error {
	if c.vars == nil {
		return err.CreateErr("eval/variable", tok)
	}
	if n, isIndex := resultIndex(tok.Literal); isIndex {
		v, ok := c.vars.Result(n)
		if !ok {
			return err.CreateErr("repl/history", tok)
		}
		c.stack.Push(v)
		return nil
	}
	if v, ok := c.vars.GetVariable(tok.Literal); ok {
		c.stack.Push(v)
		return nil
	}
	c.stack.Push(values.Value{T: values.STRING, V: tok.Literal})
	return nil
}

// pushLiteral is the last resort for a term: if it isn't an operator it had
// better be a number.
func (c *Context) pushLiteral(tok *token.Token) *err.Error {
	d, e := number.Parse(tok.Literal, c.cfg.InputRadix)
	if e != nil {
		if looksNumeric(tok.Literal) {
			return err.CreateErr("parse/number", tok)
		}
		return err.CreateErr("eval/unknown", tok)
	}
	c.stack.Push(values.MakeNumber(d))
	return nil
}

// The Env interface, through which the catalog's operators reach back into the
// evaluation.

func (c *Context) SetVariable(name string, v values.Value) error {
	if c.vars == nil {
		return err.CreateErr("eval/variable", nil)
	}
	return c.vars.SetVariable(name, v)
}

func (c *Context) Config() *number.Config {
	return c.cfg
}

func boundIndex(name string) int {
	switch name {
	case "x":
		return 0
	case "y":
		return 1
	case "z":
		return 2
	}
	return -1
}

func resultIndex(literal string) (int, bool) {
	n, e := strconv.Atoi(literal)
	if e != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// looksNumeric decides which error an unparseable term deserves: a term that
// starts like a number gets a parse error, anything else is simply unknown.
func looksNumeric(literal string) bool {
	if literal == "" {
		return false
	}
	if literal[0] == '\\' || literal[0] == '.' {
		return true
	}
	if (literal[0] == '-' || literal[0] == '+') && len(literal) > 1 {
		literal = literal[1:]
	}
	return literal[0] >= '0' && literal[0] <= '9'
}

func wrapOperatorError(e error, tok *token.Token) *err.Error {
	if already, ok := e.(*err.Error); ok {
		// The catalog throws its errors without a token.
		if already.Token == nil {
			already.Token = tok
		}
		return already
	}
	return err.CreateErr("eval/operator", tok, e.Error())
}
