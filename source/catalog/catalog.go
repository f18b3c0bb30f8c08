package catalog

// A Catalog maps operator names to what the evaluator needs to know about
// them: their arity, their category, and how to invoke them. It is built once
// by the host and passed by reference into each evaluation; nothing mutates it
// afterwards, which is what makes the evaluator trivially testable with a
// small fake catalog.

import (
	"sort"

	"rpn/source/dtypes"
	"rpn/source/number"
	"rpn/source/values"
)

type Category int

const (
	// Modifiers manipulate the stack and the evaluation context directly: the
	// catalog only classifies them, the evaluator owns their handlers.
	Modifier Category = iota
	// Operators receive scalars, courtesy of the broadcaster.
	Operator
	// ListOperators receive their arguments whole, lists and all.
	ListOperator
)

// Env is the window an operator implementation gets onto the running
// evaluation: enough to evaluate a captured function, assign a variable, or
// adjust a setting, and nothing else.
type Env interface {
	EvaluateLambda(fn *values.Lambda, bound ...values.Value) (values.Value, error)
	SetVariable(name string, v values.Value) error
	Config() *number.Config
}

type OperatorFn func(env Env, args []values.Value) (values.Value, error)

type Info struct {
	Fn    OperatorFn
	Arity int
	Cat   Category
}

type Catalog struct {
	operators         map[string]Info
	aliases           map[string]string
	functionOperators dtypes.Set[string]
}

func New(operators map[string]Info, aliases map[string]string, functionOperators []string) *Catalog {
	return &Catalog{
		operators:         operators,
		aliases:           aliases,
		functionOperators: dtypes.MakeFromSlice(functionOperators),
	}
}

// Resolve maps an alias like '+' to its canonical name; a name that is not an
// alias resolves to itself.
func (c *Catalog) Resolve(name string) string {
	if canonical, ok := c.aliases[name]; ok {
		return canonical
	}
	return name
}

func (c *Catalog) Get(name string) (Info, bool) {
	info, ok := c.operators[name]
	return info, ok
}

// IsFunctionOperator says whether the (canonical) name is one of the operators
// that consume a captured function, and so terminate function capture.
func (c *Catalog) IsFunctionOperator(name string) bool {
	return c.functionOperators.Contains(name)
}

// Names lists the canonical operator names in alphabetical order, for 'help'.
func (c *Catalog) Names() []string {
	names := []string{}
	for name := range c.operators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
