package err

import (
	"fmt"
	"strings"

	"rpn/source/token"
)

// A map from error identifiers to functions that supply the corresponding error
// messages and explanations.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Major categories are eval, lex, parse, repl, and store.
//
// Two otherwise identical errors thrown in different places in the Go code must
// be assigned different identifiers, if only by suffixing /a, /b, etc to the
// identifier.

type ErrorCreator struct {
	Message     func(tok *token.Token, args ...any) string
	Explanation func(errors Errors, pos int, tok *token.Token, args ...any) string
}

var ErrorCreatorMap = map[string]ErrorCreator{

	// TEMPLATE
	"": {
		Message: func(tok *token.Token, args ...any) string {
			return ""
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return ""
		},
	},

	"err/misdirect": {
		Message: func(tok *token.Token, args ...any) string {
			return "rpn error " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "An error with identifier " + emph(args[0]) + " was thrown but there is no message " +
				"registered for it. This is a bug in the calculator and should be reported as one."
		},
	},

	"eval/args": {
		Message: func(tok *token.Token, args ...any) string {
			plural := ""
			if args[1].(int) != 1 {
				plural = "s"
			}
			return fmt.Sprintf("operator %s requires %v argument%s", emph(args[0]), args[1], plural)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Every operator needs as many values on the stack as it has arguments. " +
				"Here the stack was shorter than that when the operator was reached."
		},
	},

	"eval/bracket/close": {
		Message: func(tok *token.Token, args ...any) string {
			return "unmatched " + emph("]")
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A " + emph("]") + " closes the list opened by the matching " + emph("[") + ". " +
				"This one has no matching " + emph("[") + " before it."
		},
	},

	"eval/bracket/open": {
		Message: func(tok *token.Token, args ...any) string {
			return "unclosed " + emph("[")
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The expression ended while a list literal was still open. Every " + emph("[") +
				" needs a matching " + emph("]") + "."
		},
	},

	"eval/dup/count": {
		Message: func(tok *token.Token, args ...any) string {
			return emph("dup") + " expects a numeric count"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The topmost value on the stack when " + emph("dup") + " is reached says how many " +
				"copies to make, so it must be a number."
		},
	},

	"eval/final": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("expression left %v values on the stack instead of one", args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A well-formed postfix expression consumes everything it pushes, ending with " +
				"exactly one value, the result. This one didn't."
		},
	},

	"eval/function/apply": {
		Message: func(tok *token.Token, args ...any) string {
			return emph(args[0]) + " expects a function argument"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Operators like " + emph("eval") + " and " + emph("nsum") + " consume a function " +
				"built with " + emph("x") + ", " + emph("y") + ", or " + emph("z") + ". The top of " +
				"the stack wasn't one."
		},
	},

	"eval/function/bound": {
		Message: func(tok *token.Token, args ...any) string {
			return "function refers to " + emph(args[0].(string)) + " but no value was supplied for it"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A function can only use the bound variables its consuming operator supplies: " +
				emph("eval") + " supplies " + emph("x") + ", " + emph("eval2") + " supplies " +
				emph("x") + " and " + emph("y") + ", and so on."
		},
	},

	"eval/function/malformed": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("function did not reduce to a single value (got %v)", args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "When a function is evaluated, its body must consume all its values and produce " +
				"exactly one result. A body that leaves more or fewer is malformed."
		},
	},

	"eval/list/flatten": {
		Message: func(tok *token.Token, args ...any) string {
			return emph(tok.Literal) + " expects a list"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "This operator reorganizes a list on the stack, so the top of the stack must be one."
		},
	},

	"eval/operator": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v", args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The operator itself rejected its arguments, for the reason given in the message."
		},
	},

	"eval/operator/element": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v (at element %v)", args[0], args[1])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The operator was being applied across a list, and failed on the element whose " +
				"index is given in the message."
		},
	},

	"eval/unknown": {
		Message: func(tok *token.Token, args ...any) string {
			return "unrecognized term " + emph(tok.Literal)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Each term of an expression must be a number, a bracket, or the name or alias of " +
				"an operator. This one is none of those things."
		},
	},

	"eval/variable": {
		Message: func(tok *token.Token, args ...any) string {
			return "variables are not available here"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Variables and the results history only exist in an interactive session."
		},
	},

	"eval/variable/name": {
		Message: func(tok *token.Token, args ...any) string {
			return emph("set") + " expects a variable name"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The first argument of " + emph("set") + " must be an unbound variable, e.g. " +
				emph("$profit 42 set") + "."
		},
	},

	"lex/quote": {
		Message: func(tok *token.Token, args ...any) string {
			return "unterminated quote"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A ' must be closed by a matching ' before the end of the line."
		},
	},

	"parse/number": {
		Message: func(tok *token.Token, args ...any) string {
			return "can't parse " + emph(tok.Literal) + " as a number"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A term that is not an operator name must be a number literal: decimal, " +
				emph("0x") + " hex, binary with a trailing " + emph("b") + ", octal with a " +
				"leading " + emph("0") + ", or a valid numeral in the current input radix."
		},
	},

	"repl/history": {
		Message: func(tok *token.Token, args ...any) string {
			return "result index out of range"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A term like " + emph("$3") + " recalls the third result of this session, so the " +
				"number must be between 1 and the number of results so far."
		},
	},

	"store/open": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't open the calculator's data store: %v", args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "User variables and the results history are kept in a small database in the " +
				"calculator's config directory, which couldn't be opened or created."
		},
	},
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}
