package parametrizer

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Term is a node in a parametric expression tree. A Term is immutable after
// construction and evaluation never fails: mathematically undefined
// operations degrade to IEEE-754 NaN or infinity rather than returning an
// error. Terms built from the package's variants are safe for concurrent use.
//
// Terms may be composed directly in code to skip string parsing, e.g.
//
//	Binary{Add, Constant{1}, Binary{Mul, Constant{2}, Param{}}}
//
// is the tree for "1+2*t".
type Term interface {
	// Evaluate computes the value of the term at the parameter value t.
	Evaluate(t float64) float64
	// String renders the term with explicit grouping.
	String() string
}

// Op is a binary arithmetic operation.
type Op int8

const (
	// Add is the addition operator.
	Add Op = iota
	// Sub is the subtraction operator.
	Sub
	// Mul is the multiplication operator.
	Mul
	// Div is the division operator.
	Div
	// Pow is the exponentiation operator.
	Pow
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Constant is a term which evaluates to a fixed value regardless of the
// parameter.
type Constant struct {
	Value float64
}

func (c Constant) Evaluate(t float64) float64 {
	return c.Value
}

func (c Constant) String() string {
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

// Param is a term which evaluates to the parameter itself.
type Param struct{}

func (Param) Evaluate(t float64) float64 {
	return t
}

func (Param) String() string {
	return ParamName
}

// Binary is a term combining two subterms with an arithmetic operation. It
// owns its subterms exclusively. Division by zero and related undefined
// results follow IEEE-754: 1/0 is +Inf, 0/0 is NaN.
type Binary struct {
	Op    Op
	Left  Term
	Right Term
}

func (b Binary) Evaluate(t float64) float64 {
	l, r := b.Left.Evaluate(t), b.Right.Evaluate(t)
	switch b.Op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	case Pow:
		return math.Pow(l, r)
	default:
		panic("parametrizer: invalid operation " + b.Op.String())
	}
}

func (b Binary) String() string {
	var s strings.Builder
	s.WriteByte('(')
	s.WriteString(b.Left.String())
	s.WriteByte(' ')
	s.WriteString(b.Op.String())
	s.WriteByte(' ')
	s.WriteString(b.Right.String())
	s.WriteByte(')')
	return s.String()
}

// Neg is the negation of a term.
type Neg struct {
	X Term
}

func (n Neg) Evaluate(t float64) float64 {
	return -n.X.Evaluate(t)
}

func (n Neg) String() string {
	return "(-" + n.X.String() + ")"
}

// Call applies a named unary function to a subterm. Fn must be non-nil.
// Arguments outside the function's domain yield NaN, per the math package,
// e.g. sqrt of a negative number.
type Call struct {
	Name string
	Fn   func(float64) float64
	Arg  Term
}

func (c Call) Evaluate(t float64) float64 {
	return c.Fn(c.Arg.Evaluate(t))
}

func (c Call) String() string {
	return c.Name + "(" + c.Arg.String() + ")"
}

// PiecewisePart is one piece of a Piecewise term: Term applies while the
// parameter is at least After and below the next part's After.
type PiecewisePart struct {
	Term  Term
	After float64
}

// Piecewise selects among subterms by intervals of the parameter. Parts must
// be ordered by ascending After; the first part whose interval contains the
// parameter is evaluated. A parameter before the first part's threshold uses
// the first part. If Cycle is positive, parameters beyond it wrap by modulus
// first, producing a looping function. A Piecewise with no parts evaluates
// to 0.
type Piecewise struct {
	Parts []PiecewisePart
	Cycle float64
}

func (p Piecewise) Evaluate(t float64) float64 {
	if len(p.Parts) == 0 {
		return 0
	}
	if p.Cycle > 0 && t > p.Cycle {
		t = math.Mod(t, p.Cycle)
	}
	cur := p.Parts[0].Term
	for _, part := range p.Parts[1:] {
		if t < part.After {
			break
		}
		cur = part.Term
	}
	return cur.Evaluate(t)
}

func (p Piecewise) String() string {
	var s strings.Builder
	s.WriteString("piecewise")
	if p.Cycle > 0 {
		s.WriteByte('[')
		s.WriteString(strconv.FormatFloat(p.Cycle, 'g', -1, 64))
		s.WriteByte(']')
	}
	s.WriteByte('(')
	for i, part := range p.Parts {
		if i > 0 {
			s.WriteString(" | ")
		}
		s.WriteString(part.Term.String())
		s.WriteString(" > ")
		s.WriteString(strconv.FormatFloat(part.After, 'g', -1, 64))
	}
	s.WriteByte(')')
	return s.String()
}

// Random evaluates to a uniform value in [min, max), where min and max are
// themselves evaluated at the parameter. A new value is drawn on every call,
// so Random is the one term for which repeated evaluation is not
// reproducible. If the range is empty or undefined (min >= max, or either
// bound is NaN), the result is the min bound, keeping evaluation total.
type Random struct {
	Min Term
	Max Term
}

func (r Random) Evaluate(t float64) float64 {
	lo, hi := r.Min.Evaluate(t), r.Max.Evaluate(t)
	if !(lo < hi) {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}

func (r Random) String() string {
	return "rand(" + r.Min.String() + ", " + r.Max.String() + ")"
}
