package parametrizer

import (
	"io"
	"strconv"
)

// Expr  = Term { ('+' | '-') Term }
// Term  = Power { ('*' | '/') Power }
// Power = Unary [ '^' Power ]
// Unary = '-' Unary | '+' Unary | Atom
// Atom  = num | 't' | funcname '(' Expr ')' | '(' Expr ')'
//
// Operators are always explicit: "2t" and "2(t+1)" are not
// multiplications, they are errors.

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	funcopt struct {
		name string
		fn   func(float64) float64
	}
	funcsopt map[string]func(float64) float64
)

// parsectx holds general data for parsing.
type parsectx struct {
	// funcs is the set of function names the parser accepts in call position.
	funcs map[string]func(float64) float64
}

// ParseFunc sets a function for parsing. To disable parsing a function, pass
// nil for fn.
func ParseFunc(name string, fn func(float64) float64) ParseOption {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		p.funcs = map[string]func(float64) float64{}
	}
	p.funcs[o.name] = o.fn
	return p
}

// ParseFuncs sets a group of functions for parsing. To disable parsing any
// function, set it to nil.
func ParseFuncs(fns map[string]func(float64) float64) ParseOption {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		// Always make a copy.
		p.funcs = make(map[string]func(float64) float64, len(o))
	}
	for k, v := range o {
		p.funcs[k] = v
	}
	return p
}

// Parse parses an expression from src into a Term. The given options are
// applied in order. On error, the result is nil and the error is one of the
// InputError kinds; the parser never returns a partial tree.
func Parse(src io.RuneScanner, opts ...ParseOption) (Term, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs == nil {
		p.funcs = globalfuncs
	} else {
		// Only set default functions that aren't already set.
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if n == nil {
		// Nothing parsed at all. A close bracket here never opened.
		switch tok.kind {
		case tokenEOF:
			return nil, &EmptyExpressionError{Col: tok.pos}
		default:
			return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
		}
	}
	if tok.kind != tokenEOF {
		return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
	}
	return n, nil
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an
// error in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (Term, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = Binary{Op: prec.op, Left: n, Right: rhs}
		case tokenNum, tokenParam, tokenIdent, tokenOpen:
			// Implicit multiplication is not part of the grammar, so an
			// operand directly following a complete term is a trailing token.
			// Push it and let the enclosing context report it.
			scan.push(tok)
			return n, nil
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("parametrizer: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *lexer, p *parsectx, until operator) (Term, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	var n Term
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// The scanner validated the syntax, so the only failure mode is a
			// value out of range, which ParseFloat clamps to an infinity.
			// That matches evaluation semantics, so keep the value.
			if ne, _ := err.(*strconv.NumError); ne == nil || ne.Err != strconv.ErrRange {
				return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
		}
		n = Constant{Value: v}
	case tokenParam:
		n = Param{}
	case tokenIdent:
		fn := p.funcs[tok.text]
		if fn == nil {
			return nil, &UnknownFunctionError{Col: tok.pos, Name: tok.text}
		}
		arg, err := parsecall(scan, p, tok.text)
		if err != nil {
			return nil, err
		}
		n = Call{Name: tok.text, Fn: fn, Arg: arg}
	case tokenOp:
		// Unary operator.
		prec, ok := unop(tok.text)
		if !ok {
			return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		if tok.text == "-" {
			n = Neg{X: rhs}
		} else {
			// Unary plus is the identity.
			n = rhs
		}
	case tokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		switch {
		case end.kind == tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: "("}
		case end.kind != tokenClose:
			return nil, &UnexpectedTokenError{Col: end.pos, Token: end.text}
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// Let the caller decide whether this closes an open bracket or
		// dangles.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		scan.push(tok)
		return nil, nil
	default:
		panic("parametrizer: unknown token: " + tok.String())
	}
	return n, nil
}

// parsecall parses the parenthesized argument to a call of a named function.
// Function application always takes brackets: "sin t" is an error.
func parsecall(scan *lexer, p *parsectx, name string) (Term, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		if tok.kind == tokenEOF {
			tok.text = "end of input"
		}
		return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
	}
	arg, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	switch {
	case end.kind == tokenEOF:
		return nil, &BracketError{Col: end.pos, Left: "("}
	case end.kind != tokenClose:
		return nil, &UnexpectedTokenError{Col: end.pos, Token: end.text}
	}
	if arg == nil {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return arg, nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operation to use when this operator is selected.
	op Op
}

// opNone marks an operator lookup that failed.
const opNone Op = -1

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. The lexer only produces
// operator tokens for runes in Operators, all of which are binary.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, Add}
	case "-":
		return operator{1, false, Sub}
	case "*":
		return operator{5, false, Mul}
	case "/":
		return operator{5, false, Div}
	case "^":
		return operator{15, true, Pow}
	default:
		panic("parametrizer: no binary operator " + strconv.Quote(text))
	}
}

// unop gets the precedence of a unary operator for a token string. The
// second result reports whether the token is a unary operator at all.
// Unary operators outrank every binary operator, including ^, so -2^2
// parses as (-2)^2 and 2^-3 parses as 2^(-3).
func unop(text string) (operator, bool) {
	switch text {
	case "+", "-":
		return operator{20, true, opNone}, true
	default:
		return operator{}, false
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, opNone}
