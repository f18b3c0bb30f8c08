package persistence

// The calculator's data store: user variables and the results history, kept in
// a SQLite database so that a session can pick up where the last one left off.
// Values are stored in their textual form, which the lexer and evaluator can
// read straight back in, so the store itself knows nothing about values.

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite
)

type Store struct {
	db *sql.DB
}

// DefaultPath puts the database in the user's config directory, falling back
// to the working directory if there isn't one.
func DefaultPath() string {
	dir, e := os.UserConfigDir()
	if e != nil {
		return "rpn.db"
	}
	return filepath.Join(dir, "rpn", "rpn.db")
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if e := os.MkdirAll(dir, 0o755); e != nil {
			return nil, e
		}
	}
	db, e := sql.Open("sqlite", path)
	if e != nil {
		return nil, e
	}
	if e := db.Ping(); e != nil {
		return nil, e
	}
	query :=
		`CREATE TABLE IF NOT EXISTS _Variables (
    name varchar(32),
    value text,
PRIMARY KEY (name));

CREATE TABLE IF NOT EXISTS _Results (
    id integer PRIMARY KEY AUTOINCREMENT,
    value text);`
	if _, e := db.Exec(query); e != nil {
		db.Close()
		return nil, e
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Variables returns every stored variable as name to textual value.
func (s *Store) Variables() (map[string]string, error) {
	rows, e := s.db.Query(`SELECT name, value FROM _Variables`)
	if e != nil {
		return nil, e
	}
	defer rows.Close()
	result := map[string]string{}
	for rows.Next() {
		var name, value string
		if e := rows.Scan(&name, &value); e != nil {
			return nil, e
		}
		result[name] = value
	}
	return result, rows.Err()
}

func (s *Store) SetVariable(name, value string) error {
	_, e := s.db.Exec(`INSERT INTO _Variables (name, value)
VALUES($1, $2)
ON CONFLICT (name) DO UPDATE SET value = $2`, name, value)
	return e
}

// Results returns the history in the order it was added.
func (s *Store) Results() ([]string, error) {
	rows, e := s.db.Query(`SELECT value FROM _Results ORDER BY id`)
	if e != nil {
		return nil, e
	}
	defer rows.Close()
	result := []string{}
	for rows.Next() {
		var value string
		if e := rows.Scan(&value); e != nil {
			return nil, e
		}
		result = append(result, value)
	}
	return result, rows.Err()
}

func (s *Store) AddResult(value string) error {
	_, e := s.db.Exec(`INSERT INTO _Results (value) VALUES($1)`, value)
	return e
}

// ClearResults empties the history, for the REPL's 'clear' command.
func (s *Store) ClearResults() error {
	_, e := s.db.Exec(`DELETE FROM _Results`)
	return e
}
