package parametrizer

import "strings"

// Parametrizer owns a parsed parametric function and evaluates it at
// arbitrary parameter values. A Parametrizer is immutable after construction
// and holds no internal state, so it is safe to evaluate concurrently from
// multiple goroutines.
type Parametrizer struct {
	term Term
}

// New parses an expression into a Parametrizer. The input is formatted
// before parsing so that capitalized input like "6 + T" or "Sin(t)" works;
// use NewStrict to skip the formatting pass. All syntax errors are reported
// here; once New succeeds, evaluation cannot fail.
func New(param string, opts ...ParseOption) (*Parametrizer, error) {
	return NewStrict(strings.ToLower(param), opts...)
}

// NewStrict parses an expression without formatting it first. The input must
// already be lowercase. This skips a copy of the input string, at the cost
// of rejecting input New would accept.
func NewStrict(param string, opts ...ParseOption) (*Parametrizer, error) {
	term, err := Parametrize(param, opts...)
	if err != nil {
		return nil, err
	}
	return &Parametrizer{term: term}, nil
}

// NewTerm creates a Parametrizer directly from a term, for callers composing
// expressions in code to skip string parsing entirely. It cannot fail.
func NewTerm(term Term) *Parametrizer {
	return &Parametrizer{term: term}
}

// Parametrize is a shortcut to parse a string expression into a Term.
func Parametrize(param string, opts ...ParseOption) (Term, error) {
	return Parse(strings.NewReader(param), opts...)
}

// Evaluate computes the parametric function at the parameter value t.
// Evaluation is total: undefined operations such as division by zero or the
// square root of a negative number produce IEEE-754 infinities or NaN
// instead of failing.
func (p *Parametrizer) Evaluate(t float64) float64 {
	return p.term.Evaluate(t)
}

// Term returns the root term of the parsed expression.
func (p *Parametrizer) Term() Term {
	return p.term
}

// String renders the parsed expression with explicit grouping.
func (p *Parametrizer) String() string {
	return p.term.String()
}
