package lexer

import (
	"testing"

	"rpn/source/token"
)

func TestTokenize(t *testing.T) {
	input := `2 3.5 + [ 1 2 ] $profit 'unit price' $2`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
		expectedIndex   int
	}{
		{token.TERM, "2", 1},
		{token.TERM, "3.5", 2},
		{token.TERM, "+", 3},
		{token.TERM, "[", 4},
		{token.TERM, "1", 5},
		{token.TERM, "2", 6},
		{token.TERM, "]", 7},
		{token.VARIABLE, "profit", 8},
		{token.STRING, "unit price", 9},
		{token.VARIABLE, "2", 10},
		{token.EOF, "EOF", 10},
	}

	tokens, lexError := Tokenize("test", input)
	if lexError != nil {
		t.Fatalf("tokenize failed: %s", lexError.Message)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("wrong number of tokens. expected=%v, got=%v", len(tests), len(tokens))
	}
	for i, tt := range tests {
		tok := tokens[i]
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%v] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%v] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Index != tt.expectedIndex {
			t.Fatalf("tests[%v] - index wrong. expected=%v, got=%v", i, tt.expectedIndex, tok.Index)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, lexError := Tokenize("test", "   ")
	if lexError != nil {
		t.Fatalf("tokenize failed: %s", lexError.Message)
	}
	if len(tokens) != 1 || tokens[0].Type != token.EOF {
		t.Fatalf("expected a lone EOF token, got %v tokens", len(tokens))
	}
}

func TestUnterminatedQuote(t *testing.T) {
	_, lexError := Tokenize("test", "2 'oops")
	if lexError == nil {
		t.Fatalf("expected an error for an unterminated quote")
	}
	if lexError.ErrorId != "lex/quote" {
		t.Fatalf("wrong error. expected=%q, got=%q", "lex/quote", lexError.ErrorId)
	}
}
