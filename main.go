//
// rpn: a postfix calculator.
//
// With no arguments this starts an interactive session; given arguments it
// evaluates them as one expression and exits, e.g. 'rpn 2 3 +'.
//

package main

import (
	"fmt"
	"os"
	"strings"

	"rpn/source/catalog"
	"rpn/source/evaluator"
	"rpn/source/lexer"
	"rpn/source/number"
	"rpn/source/persistence"
	"rpn/source/repl"
	"rpn/source/text"
)

func main() {

	if len(os.Args) > 1 {
		os.Exit(evaluateOnce(strings.Join(os.Args[1:], " ")))
	}

	fmt.Print(text.Logo())

	store, e := persistence.Open(persistence.DefaultPath())
	if e != nil {
		// The calculator still works without its store, it just forgets.
		fmt.Println(text.ERROR + fmt.Sprintf("can't open the calculator's data store: %v", e) + ".")
		store = nil
	}
	session := repl.NewSession(store)
	repl.Start(session, os.Stdout)
	if store != nil {
		store.Close()
	}
}

func evaluateOnce(expression string) int {
	cfg := number.NewConfig()
	tokens, lexError := lexer.Tokenize("command line", expression)
	if lexError != nil {
		fmt.Println(repl.Describe(lexError))
		return 1
	}
	result, evalError := evaluator.Evaluate(tokens, catalog.Builtins(), nil, cfg)
	if evalError != nil {
		fmt.Println(repl.Describe(evalError))
		return 1
	}
	fmt.Println(result.String())
	return 0
}
