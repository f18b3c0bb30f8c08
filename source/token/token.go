package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	TERM     = "TERM"     // a number literal, operator name, or bracket
	STRING   = "string"   // 'quoted text'
	VARIABLE = "VARIABLE" // $foo, $1
)

type Token struct {
	Type    TokenType
	Literal string
	Index   int // 1-based position of the term in the expression, for "error in arg n" messages
	ChStart int
	Source  string
}
