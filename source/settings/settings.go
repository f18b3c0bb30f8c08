// All this does is contain in one place the constants controlling which bits of the inner
// workings of the lexer/evaluator are displayed to me for debugging purposes. In a release
// they must all be set to false except SHOW_TESTS which may as well be left as true.

package settings

const (
	SHOW_LEXER     = false
	SHOW_EVALUATOR = false // Traces each term as it is dispatched, with the stack depth.
	SHOW_BROADCAST = false

	SHOW_TESTS = true // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)
