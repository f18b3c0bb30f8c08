package catalog

import (
	"testing"
)

func TestResolve(t *testing.T) {
	cat := Builtins()
	tests := []struct {
		alias string
		want  string
	}{
		{"+", "add"},
		{"**", "power"},
		{"avg", "mean"},
		{"fac", "factorial"},
		{"add", "add"},
		{"nonesuch", "nonesuch"},
	}
	for _, test := range tests {
		if got := cat.Resolve(test.alias); got != test.want {
			t.Fatalf(`Resolve(%q) | Wanted : %s | Got : %s.`, test.alias, test.want, got)
		}
	}
}

// Every alias must point at a real operator, and every function operator must
// be in the catalog; a typo in the tables would otherwise surface as a
// baffling runtime error.
func TestTablesAreClosed(t *testing.T) {
	cat := Builtins()
	for alias, canonical := range operatorAliases {
		if _, ok := cat.Get(canonical); !ok {
			t.Fatalf("alias %q points at unknown operator %q", alias, canonical)
		}
	}
	for _, name := range functionOperators {
		info, ok := cat.Get(name)
		if !ok {
			t.Fatalf("function operator %q is not in the catalog", name)
		}
		// 'filter' is a list operator so that it sees its list whole; the
		// others take scalars. None of them may be a modifier, which would
		// never pop the captured function at all.
		if info.Cat == Modifier {
			t.Fatalf("function operator %q must pop its arguments", name)
		}
	}
}

func TestCategories(t *testing.T) {
	cat := Builtins()
	for name, want := range map[string]Category{
		"[":    Modifier,
		"dup":  Modifier,
		"add":  Operator,
		"sum":  ListOperator,
		"sort": ListOperator,
	} {
		info, ok := cat.Get(name)
		if !ok {
			t.Fatalf("operator %q is not in the catalog", name)
		}
		if info.Cat != want {
			t.Fatalf("operator %q has the wrong category", name)
		}
	}
	if !cat.IsFunctionOperator("eval") {
		t.Fatalf("'eval' should be a function operator")
	}
	if cat.IsFunctionOperator("add") {
		t.Fatalf("'add' should not be a function operator")
	}
}
