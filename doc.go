// Package parametrizer parses strings describing single-variable parametric
// functions, like "1+2*t*t", into expression trees that can be evaluated at
// any value of the parameter t.
//
// The syntax is ordinary calculator math: the operators + - * / ^ with the
// usual precedence (^ binds tighter than * and / and associates to the
// right; a prefix - binds tighter still, so "-2^2" is 4), round brackets,
// integer and decimal literals, the parameter t, and a set of unary
// functions applied as "sin(t)". Every operator must be written out; "2t"
// and "2(t+1)" are errors, not multiplications.
//
// Parsing is the only operation that can fail. A constructed expression
// evaluates to a float64 for every input: division by zero, the square root
// of a negative number, and similar undefined operations follow IEEE-754 and
// produce infinities or NaN rather than errors.
//
// Terms may also be composed directly in code, skipping the string syntax;
// see Term and its variants.
package parametrizer
