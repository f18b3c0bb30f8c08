package err

import (
	"rpn/source/token"
)

// The 'error' type.
type Error struct {
	ErrorId string
	Message string
	Args    []any
	Token   *token.Token
}

type Errors []*Error

func (e *Error) Error() string {
	return e.Message
}

// CreateErr makes an error from its identifier, looking the message up in the
// ErrorCreatorMap. An unknown identifier is a bug in the calculator, not in
// the user's expression, and says so.
func CreateErr(errorID string, tok *token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorID]
	if !ok {
		return &Error{
			ErrorId: "err/misdirect",
			Message: "rpn error '" + errorID + "'",
			Args:    []any{errorID},
			Token:   tok,
		}
	}
	return &Error{
		ErrorId: errorID,
		Message: creator.Message(tok, args...),
		Args:    args,
		Token:   tok,
	}
}

func Throw(errorID string, errs Errors, tok *token.Token, args ...any) Errors {
	return append(errs, CreateErr(errorID, tok, args...))
}
