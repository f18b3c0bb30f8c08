package repl

// The interactive calculator. A Session owns the variables and the results
// history, backed (when one is available) by the persistent store, and is the
// VariableStore the evaluator sees. Start wraps a Session in a readline loop.

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lmorg/readline"
	"github.com/shopspring/decimal"

	"rpn/source/catalog"
	"rpn/source/err"
	"rpn/source/evaluator"
	"rpn/source/lexer"
	"rpn/source/number"
	"rpn/source/persistence"
	"rpn/source/text"
	"rpn/source/values"
)

type Session struct {
	cat     *catalog.Catalog
	cfg     *number.Config
	store   *persistence.Store // may be nil, in which case nothing outlives the session
	vars    map[string]values.Value
	results []values.Value
	warned  bool // a store write has already failed and been reported
}

func NewSession(store *persistence.Store) *Session {
	s := &Session{
		cat:   catalog.Builtins(),
		cfg:   number.NewConfig(),
		store: store,
		vars:  map[string]values.Value{},
	}
	s.load()
	return s
}

// load reads the stored variables and history back in by evaluating their
// textual forms. An entry that no longer evaluates is skipped rather than
// poisoning the whole session.
func (s *Session) load() {
	if s.store == nil {
		return
	}
	if stored, e := s.store.Variables(); e == nil {
		for name, textual := range stored {
			if v, ok := s.reparse(textual); ok {
				s.vars[name] = v
			}
		}
	}
	if stored, e := s.store.Results(); e == nil {
		for _, textual := range stored {
			if v, ok := s.reparse(textual); ok {
				s.results = append(s.results, v)
			}
		}
	}
}

func (s *Session) reparse(textual string) (values.Value, bool) {
	tokens, lexError := lexer.Tokenize("store", textual)
	if lexError != nil {
		return values.Value{}, false
	}
	v, evalError := evaluator.Evaluate(tokens, s.cat, nil, s.cfg)
	if evalError != nil {
		return values.Value{}, false
	}
	return v, true
}

// The VariableStore interface.

func (s *Session) GetVariable(name string) (values.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

func (s *Session) SetVariable(name string, v values.Value) error {
	s.vars[name] = v
	if s.store != nil {
		return s.store.SetVariable(name, v.String())
	}
	return nil
}

func (s *Session) Result(n int) (values.Value, bool) {
	if n < 1 || n > len(s.results) {
		return values.Value{}, false
	}
	return s.results[n-1], true
}

func (s *Session) ResultCount() int {
	return len(s.results)
}

// Do evaluates one expression and returns what should be shown to the user.
// A successful result joins the history.
func (s *Session) Do(line string) string {
	tokens, lexError := lexer.Tokenize("REPL input", line)
	if lexError != nil {
		return Describe(lexError)
	}
	result, evalError := evaluator.Evaluate(tokens, s.cat, s, s.cfg)
	if evalError != nil {
		return Describe(evalError)
	}
	s.results = append(s.results, result)
	report := fmt.Sprintf("$%v = %s", len(s.results), s.render(result))
	if s.store != nil {
		if e := s.store.AddResult(result.String()); e != nil {
			report += s.storeTrouble(e)
		}
	}
	return report
}

// storeTrouble reports a failed store write, once: the session still works,
// it just won't be remembered, and the user should hear that the first time
// rather than every time.
func (s *Session) storeTrouble(e error) string {
	if s.warned {
		return ""
	}
	s.warned = true
	return "\n" + text.ERROR + fmt.Sprintf("can't write to the data store: %v", e) + "."
}

// render is like values.Value.String but puts numbers through the output
// formatting settings.
func (s *Session) render(v values.Value) string {
	switch v.T {
	case values.NUMBER:
		return number.Format(v.V.(decimal.Decimal), s.cfg)
	case values.LIST:
		parts := []string{}
		for _, el := range values.Elements(v) {
			parts = append(parts, s.render(el))
		}
		if len(parts) == 0 {
			return "[ ]"
		}
		return "[ " + strings.Join(parts, " ") + " ]"
	}
	return v.String()
}

// Describe turns an error into the one-line report shown to the user.
func Describe(e *err.Error) string {
	return text.ERROR + e.Message + text.DescribePos(e.Token) + "."
}

// Start runs the read-evaluate-print loop until the user asks to leave.
func Start(session *Session, out io.Writer) {
	rline := readline.NewInstance()
	for {
		rline.SetPrompt(makePrompt(session))
		line, _ := rline.Readline()
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "exit", "quit":
			return
		case "help":
			fmt.Fprint(out, helpText(session))
			continue
		case "vars":
			fmt.Fprint(out, varsText(session))
			continue
		case "clear":
			session.results = nil
			if session.store != nil {
				if e := session.store.ClearResults(); e != nil {
					fmt.Fprintln(out, text.ERROR+fmt.Sprintf("can't write to the data store: %v", e)+".")
					continue
				}
			}
			fmt.Fprintln(out, text.OK)
			continue
		}
		fmt.Fprintln(out, session.Do(line))
	}
}

func makePrompt(session *Session) string {
	if session.ResultCount() == 0 {
		return text.PROMPT
	}
	return fmt.Sprintf("(%v) %s", session.ResultCount(), text.PROMPT)
}

func helpText(session *Session) string {
	var b strings.Builder
	b.WriteString("\nAn expression is terms separated by spaces, evaluated left to right:\n")
	b.WriteString("numbers go on the stack and operators take them off it, e.g. " + text.Emph("2 3 +") + ".\n\n")
	b.WriteString("Commands: " + text.Emph("help") + ", " + text.Emph("vars") + ", " +
		text.Emph("clear") + ", " + text.Emph("exit") + ".\n\n")
	b.WriteString("Operators:\n\n")
	names := session.cat.Names()
	for i, name := range names {
		if i%6 == 0 {
			b.WriteString("    ")
		}
		b.WriteString(fmt.Sprintf("%-12s", name))
		if i%6 == 5 {
			b.WriteString("\n")
		}
	}
	if len(names)%6 != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func varsText(session *Session) string {
	if len(session.vars) == 0 {
		return "no variables are set\n"
	}
	names := []string{}
	for name := range session.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		b.WriteString(fmt.Sprintf("$%s = %s\n", name, session.render(session.vars[name])))
	}
	return b.String()
}
