package parametrizer

import "math"

// globalfuncs is the default set of functions accepted in call position.
// ln is the natural logarithm and log is base 10.
var globalfuncs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,

	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log10,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

// DefaultFuncs returns a copy of the default function set. The copy may be
// modified and passed to ParseFuncs, e.g. to remove a default function by
// setting it to nil.
func DefaultFuncs() map[string]func(float64) float64 {
	m := make(map[string]func(float64) float64, len(globalfuncs))
	for k, v := range globalfuncs {
		m[k] = v
	}
	return m
}
