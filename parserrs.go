package parametrizer

import "strconv"

// UnknownFunctionError is an error indicating an identifier in call position
// that is not in the set of known functions. It implements InputError.
type UnknownFunctionError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier that was not recognized.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *UnknownFunctionError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an opening parenthesis that is never
// closed. It implements InputError.
type BracketError struct {
	// Col is the position at which the input ended.
	Col int
	// Left is the opening bracket.
	Left string
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// UnexpectedTokenError is an error indicating a trailing or out-of-place
// token, e.g. the close bracket in "1+2)" or the second number in "1 2". It
// implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression, e.g. an empty input, the missing operand in "1+", or the
// missing argument in "sin()". It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnknownFunctionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
