package evaluator

import (
	"testing"

	"rpn/source/catalog"
	"rpn/source/lexer"
	"rpn/source/number"
	"rpn/source/settings"
	"rpn/source/text"
)

type testItem struct {
	input string
	want  string
}

// runTest evaluates each input with no variable store and compares the textual
// form of the outcome; an error is rendered as 'error <identifier>'.
func runTest(t *testing.T, tests []testItem) {
	t.Helper()
	cat := catalog.Builtins()
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.input))
		}
		cfg := number.NewConfig()
		tokens, lexError := lexer.Tokenize("test", test.input)
		if lexError != nil {
			t.Fatalf(`Test failed with input %s | Lexing error : %s.`, test.input, lexError.Message)
		}
		result, evalError := Evaluate(tokens, cat, nil, cfg)
		got := ""
		if evalError != nil {
			got = "error " + evalError.ErrorId
		} else {
			got = result.String()
		}
		if got != test.want {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.input, test.want, got)
		}
	}
}

func TestLiterals(t *testing.T) {
	tests := []testItem{
		{`42`, `42`},
		{`-5`, `-5`},
		{`2.5`, `2.5`},
		{`0x2a`, `42`},
		{`0101b`, `5`},
		{`052`, `42`},
		{`42,`, `42`},
	}
	runTest(t, tests)
}

func TestArithmetic(t *testing.T) {
	tests := []testItem{
		{`2 2 +`, `4`},
		{`5 3 -`, `2`},
		{`5 2 *`, `10`},
		{`5 2 /`, `2.5`},
		{`10 3 mod`, `1`},
		{`2 3 **`, `8`},
		{`5 !`, `120`},
		{`10 fib`, `55`},
		{`-4 abs`, `4`},
		{`5 neg`, `-5`},
		{`2.7 floor`, `2`},
		{`2.1 ceil`, `3`},
		{`2.5 round`, `3`},
		{`9 sqrt`, `3`},
		{`4 square`, `16`},
		{`5 2 greater`, `1`},
		{`5 2 less`, `0`},
		{`2 2 equal`, `1`},
		{`10 5 isdiv`, `1`},
		{`pi floor`, `3`},
	}
	runTest(t, tests)
}

func TestBroadcasting(t *testing.T) {
	tests := []testItem{
		{`[ 1 2 3 ] 10 +`, `[ 11 12 13 ]`},
		{`10 [ 1 2 3 ] +`, `[ 11 12 13 ]`},
		{`[ 1 2 ] [ 10 20 30 ] +`, `[ 11 22 ]`},
		{`[ [ 1 2 ] [ 3 4 ] ] 10 +`, `[ [ 11 12 ] [ 13 14 ] ]`},
		{`[ [ 1 2 ] [ 3 4 ] ] [ 10 ] +`, `[ [ 11 12 ] ]`},
		{`[ ] 5 +`, `[ ]`},
		{`[ 1 2 3 ] neg`, `[ -1 -2 -3 ]`},
		{`[ 1 2 ] [ 3 4 ] *`, `[ 3 8 ]`},
	}
	runTest(t, tests)
}

func TestModifiers(t *testing.T) {
	tests := []testItem{
		{`[ 1 2 3 ]`, `[ 1 2 3 ]`},
		{`[ [ 1 2 ] 3 ]`, `[ [ 1 2 ] 3 ]`},
		{`[ 1 2 + ]`, `[ 3 ]`},
		{`[ ]`, `[ ]`},
		{`[ 1 2 3 ] unlist + +`, `6`},
		{`5 3 dup + +`, `15`},
		{`[ 1 2 ] 2 dup + + +`, `6`},
		{`7 0 dup 9`, `9`},
		{`[ 1 [ ] [ 2 [ 3 ] ] ] flatten`, `[ 1 2 3 ]`},
		{`[ 1 [ ] [ 2 [ 3 ] ] ] flatten flatten`, `[ 1 2 3 ]`},
	}
	runTest(t, tests)
}

func TestFunctions(t *testing.T) {
	tests := []testItem{
		{`3 x 2 * eval`, `6`},
		{`x 2 *`, `func x 2 *`},
		{`3 4 x y + eval2`, `7`},
		{`1 2 3 x y z + + eval3`, `6`},
		{`[ 1 2 3 ] x x * eval`, `[ 1 4 9 ]`},
		{`2 3 x 4 * eval +`, `14`},
		{`1 4 x 2 * nsum`, `20`},
		{`1 4 x nprod`, `24`},
		{`[ 1 2 3 4 ] x 2 % filter`, `[ 1 3 ]`},
		{`5 x 0 * 3 + limit`, `3`},
		{`5 x 0 * 3 + limitn`, `3`},
	}
	runTest(t, tests)
}

func TestListOperators(t *testing.T) {
	tests := []testItem{
		{`[ 1 2 3 ] sum`, `6`},
		{`[ 1 2 3 4 ] prod`, `24`},
		{`[ 1 2 3 4 ] mean`, `2.5`},
		{`[ 3 1 2 ] min`, `1`},
		{`[ 3 1 2 ] max`, `3`},
		{`[ 1 2 3 ] count`, `3`},
		{`[ 1 2 3 ] reverse`, `[ 3 2 1 ]`},
		{`[ 3 1 2 ] sort`, `[ 1 2 3 ]`},
		{`[ 3 1 2 ] sortdesc`, `[ 3 2 1 ]`},
		{`[ 1 2 2 3 ] unique`, `[ 1 2 3 ]`},
		{`[ 1 2 ] [ 3 4 ] append`, `[ 1 2 3 4 ]`},
		{`[ 1 2 3 ] [ 4 5 ] interleave`, `[ 1 4 2 5 ]`},
		{`[ 1 4 9 ] diffs`, `[ 3 5 ]`},
		{`[ 1 2 3 ] altsign`, `[ 1 -2 3 ]`},
		{`[ 5 3 1 ] altsum`, `3`},
		{`[ 12 18 ] gcd`, `6`},
		{`[ 1 2 3 4 ] stddev floor`, `1`},
		{`[ 2 2 2 ] stddev`, `0`},
		{`[ 0 5 0 7 ] nonzero`, `[ 1 3 ]`},
		{`[ 0 5 0 7 ] zero`, `[ 0 2 ]`},
		{`[ 5 6 7 ] 1 element`, `6`},
		{`1 5 range`, `[ 1 2 3 4 5 ]`},
		{`5 1 range`, `[ 5 4 3 2 1 ]`},
		{`5 sum`, `5`},
	}
	runTest(t, tests)
}

func TestSettings(t *testing.T) {
	tests := []testItem{
		{`16 input_radix ff +`, `271`},
		{`10 precision`, `10`},
		{`-1 precision`, `24`},
	}
	runTest(t, tests)
}

func TestErrors(t *testing.T) {
	tests := []testItem{
		{`]`, `error eval/bracket/close`},
		{`[ 1 2`, `error eval/bracket/open`},
		{`+`, `error eval/args`},
		{`2 3`, `error eval/final`},
		{`foo`, `error eval/unknown`},
		{`12q3`, `error parse/number`},
		{`1 0 /`, `error eval/operator`},
		{`2 [ 1 0 ] /`, `error eval/operator/element`},
		{`5 1.5 dup`, `error eval/dup/count`},
		{`5 unlist`, `error eval/list/flatten`},
		{`3 3 eval`, `error eval/function/apply`},
		{`1 4 3 nsum`, `error eval/function/apply`},
		{`5 42 set`, `error eval/variable/name`},
		{`3 x y + eval`, `error eval/function/bound`},
		{`3 x x eval`, `error eval/function/malformed`},
		{`$profit`, `error eval/variable`},
		{`2 previous +`, `error eval/variable`},
		{`-3 !`, `error eval/operator`},
		{`[ 1 2 ] sum foo`, `error eval/unknown`},
	}
	runTest(t, tests)
}

// The inner evaluation of a function must not disturb the caller's stack.
func TestFunctionIsolation(t *testing.T) {
	tests := []testItem{
		{`1 2 3 x 10 * eval + +`, `33`},
		{`5 [ 1 2 ] x 1 + eval sum +`, `10`},
	}
	runTest(t, tests)
}
