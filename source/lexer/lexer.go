package lexer

// The lexer splits an expression into terms. There is no grammar to speak of:
// terms are separated by whitespace, single quotes group a term containing
// spaces, and a leading $ marks a variable or history reference. Deciding
// what a term *means* is the evaluator's job.

import (
	"unicode"

	"rpn/source/err"
	"rpn/source/settings"
	"rpn/source/token"
)

type lexer struct {
	runes  []rune
	pos    int
	index  int // 1-based count of terms emitted so far
	source string
	Ers    err.Errors
}

func NewLexer(source, input string) *lexer {
	return &lexer{
		runes:  []rune(input),
		source: source,
		Ers:    []*err.Error{},
	}
}

// Tokenize is the whole of the lexer's public face: one expression in, a slice
// of terms out, ending with an EOF token.
func Tokenize(source, input string) ([]token.Token, *err.Error) {
	l := NewLexer(source, input)
	tokens := []token.Token{}
	for {
		tok := l.nextToken()
		if settings.SHOW_LEXER {
			println("lexer:", string(tok.Type), tok.Literal)
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.ILLEGAL {
			return nil, l.Ers[len(l.Ers)-1]
		}
	}
	return tokens, nil
}

func (l *lexer) nextToken() token.Token {
	l.skipWhitespace()
	if l.pos >= len(l.runes) {
		return l.newToken(token.EOF, "EOF", l.pos)
	}
	start := l.pos
	switch l.runes[l.pos] {
	case '\'':
		return l.readQuoted(start)
	case '$':
		l.pos++
		literal := l.readBareTerm()
		return l.newToken(token.VARIABLE, literal, start)
	default:
		literal := l.readBareTerm()
		return l.newToken(token.TERM, literal, start)
	}
}

func (l *lexer) readBareTerm() string {
	start := l.pos
	for l.pos < len(l.runes) && !unicode.IsSpace(l.runes[l.pos]) {
		l.pos++
	}
	return string(l.runes[start:l.pos])
}

func (l *lexer) readQuoted(start int) token.Token {
	l.pos++ // consume the opening quote
	from := l.pos
	for l.pos < len(l.runes) && l.runes[l.pos] != '\'' {
		l.pos++
	}
	if l.pos >= len(l.runes) {
		return l.throw("lex/quote", start)
	}
	literal := string(l.runes[from:l.pos])
	l.pos++ // consume the closing quote
	return l.newToken(token.STRING, literal, start)
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.runes) && unicode.IsSpace(l.runes[l.pos]) {
		l.pos++
	}
}

func (l *lexer) newToken(tType token.TokenType, literal string, start int) token.Token {
	if tType != token.EOF {
		l.index++
	}
	return token.Token{
		Type:    tType,
		Literal: literal,
		Index:   l.index,
		ChStart: start,
		Source:  l.source,
	}
}

func (l *lexer) throw(errorID string, start int, args ...any) token.Token {
	tok := l.newToken(token.ILLEGAL, errorID, start)
	l.Ers = err.Throw(errorID, l.Ers, &tok, args...)
	return tok
}
