package values

import (
	"strings"

	"github.com/shopspring/decimal"
	"src.elv.sh/pkg/persistent/vector"

	"rpn/source/token"
)

type ValueType uint32

const ( // Cross-reference with typeNames below.
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	NUMBER
	STRING // An unbound variable name, waiting for 'set'.
	LIST
	FUNC
)

var typeNames = []string{"undefined", "number", "string", "list", "func"}

func (t ValueType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "undefined"
}

type Value struct {
	T ValueType
	V any
}

// A Lambda is a function captured from the token stream by one of the
// 'x', 'y', 'z' modifiers, to be replayed later by substitution. It owns its
// tokens: they are copied out of the stream at capture time.
type Lambda struct {
	Tokens  []token.Token
	Binding string // the bound variable that introduced the capture
	Depth   int    // stack depth when capture began
}

func MakeNumber(d decimal.Decimal) Value {
	return Value{NUMBER, d}
}

func MakeList(vec vector.Vector) Value {
	return Value{LIST, vec}
}

func MakeListOf(elements ...Value) Value {
	vec := vector.Empty
	for _, el := range elements {
		vec = vec.Conj(el)
	}
	return Value{LIST, vec}
}

func (v Value) IsList() bool {
	return v.T == LIST
}

// Elements returns a list's elements as a slice. A value that is not a list
// counts as a list of one, which is the convention throughout the calculator.
func Elements(v Value) []Value {
	if v.T != LIST {
		return []Value{v}
	}
	vec := v.V.(vector.Vector)
	result := make([]Value, 0, vec.Len())
	for i := 0; i < vec.Len(); i++ {
		el, _ := vec.Index(i)
		result = append(result, el.(Value))
	}
	return result
}

func Equals(lhs, rhs Value) bool {
	if lhs.T != rhs.T {
		return false
	}
	switch lhs.T {
	case NUMBER:
		return lhs.V.(decimal.Decimal).Equal(rhs.V.(decimal.Decimal))
	case STRING:
		return lhs.V.(string) == rhs.V.(string)
	case LIST:
		K := lhs.V.(vector.Vector)
		L := rhs.V.(vector.Vector)
		if K.Len() != L.Len() {
			return false
		}
		for i := 0; i < K.Len(); i++ {
			a, _ := K.Index(i)
			b, _ := L.Index(i)
			if !Equals(a.(Value), b.(Value)) {
				return false
			}
		}
		return true
	case FUNC:
		return lhs.V == rhs.V
	}
	return false
}

// String renders a value in the same syntax the lexer accepts, so that what
// the store writes out can be read back in.
func (v Value) String() string {
	switch v.T {
	case NUMBER:
		return v.V.(decimal.Decimal).String()
	case STRING:
		return "$" + v.V.(string)
	case LIST:
		vec := v.V.(vector.Vector)
		if vec.Len() == 0 {
			return "[ ]"
		}
		elements := []string{}
		for i := 0; i < vec.Len(); i++ {
			el, _ := vec.Index(i)
			elements = append(elements, el.(Value).String())
		}
		return "[ " + strings.Join(elements, " ") + " ]"
	case FUNC:
		fn := v.V.(*Lambda)
		body := []string{}
		for _, tok := range fn.Tokens {
			body = append(body, tok.Literal)
		}
		return "func " + strings.Join(body, " ")
	}
	return "undefined"
}
