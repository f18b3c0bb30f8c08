package repl

import (
	"path/filepath"
	"strings"
	"testing"

	"rpn/source/persistence"
)

func TestSession(t *testing.T) {
	s := NewSession(nil)

	tests := []struct {
		input string
		want  string
	}{
		{`2 3 +`, `$1 = 5`},
		{`$1 2 *`, `$2 = 10`},
		{`previous 1 +`, `$3 = 11`},
		{`$profit 42 set`, `$4 = 42`},
		{`$profit 8 +`, `$5 = 50`},
		{`[ 1 2 3 ] 2 *`, `$6 = [ 2 4 6 ]`},
	}
	for _, test := range tests {
		if got := s.Do(test.input); got != test.want {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.input, test.want, got)
		}
	}
	if s.ResultCount() != 6 {
		t.Fatalf("wrong result count: %v", s.ResultCount())
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSession(nil)
	got := s.Do(`$7 1 +`)
	if !strings.Contains(got, "result index out of range") {
		t.Fatalf("wrong report for an empty history: %s", got)
	}
	got = s.Do(`2 0 /`)
	if !strings.Contains(got, "division by zero") || !strings.Contains(got, "in arg 3") {
		t.Fatalf("wrong report for division by zero: %s", got)
	}
}

// A failed store write should be reported alongside the result, and only the
// first time; the session itself keeps working.
func TestStoreFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpn.db")
	store, e := persistence.Open(path)
	if e != nil {
		t.Fatalf("can't open store: %v", e)
	}
	s := NewSession(store)
	store.Close()

	got := s.Do(`2 3 +`)
	if !strings.Contains(got, "$1 = 5") {
		t.Fatalf("the result went missing: %s", got)
	}
	if !strings.Contains(got, "can't write to the data store") {
		t.Fatalf("the store failure went unreported: %s", got)
	}
	got = s.Do(`1 1 +`)
	if got != "$2 = 2" {
		t.Fatalf("the store failure should only be reported once: %s", got)
	}
}

// A session backed by a store should find its variables and history again
// after a restart.
func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpn.db")

	store, e := persistence.Open(path)
	if e != nil {
		t.Fatalf("can't open store: %v", e)
	}
	s := NewSession(store)
	s.Do(`2 3 +`)
	s.Do(`$profit 42 set`)
	s.Do(`[ 1 2 3 ] 10 *`)
	store.Close()

	store, e = persistence.Open(path)
	if e != nil {
		t.Fatalf("can't reopen store: %v", e)
	}
	defer store.Close()
	s = NewSession(store)
	if s.ResultCount() != 3 {
		t.Fatalf("history did not survive: %v results", s.ResultCount())
	}
	tests := []struct {
		input string
		want  string
	}{
		{`$1 1 +`, `$4 = 6`},
		{`$profit 2 /`, `$5 = 21`},
		{`$3 sum`, `$6 = 60`},
		{`previous 1 +`, `$7 = 61`},
	}
	for _, test := range tests {
		if got := s.Do(test.input); got != test.want {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.input, test.want, got)
		}
	}
}
