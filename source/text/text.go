package text

// Text utilities for generating prompts, error messages, and the other things
// the calculator says to its user.

import (
	"strconv"
	"strings"

	"rpn/source/token"
)

const (
	VERSION = "0.3.2"
	PROMPT  = "> "
)

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	ERROR  = Red("error") + ": "
	OK     = Green("ok")
	BULLET = "  ▪ "
)

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Emph(s string) string {
	return "'" + s + "'"
}

// DescribePos identifies a term by its 1-based position in the expression,
// which is how errors have always been reported to rpn users.
func DescribePos(tok *token.Token) string {
	if tok == nil || tok.Type == token.EOF {
		return " at the end of the expression"
	}
	return " in arg " + strconv.Itoa(tok.Index)
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 0 {
		padding = ","
	}
	titleText := " rpn" + padding + " version " + VERSION + " "
	diamond := Cyan("◆")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + diamond + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + diamond + bar + "╝\n\n"
	return logoString
}
