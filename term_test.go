package parametrizer

import (
	"math"
	"testing"
)

func TestConstant(t *testing.T) {
	c := Constant{Value: 1.35}
	if got := c.Evaluate(2); got != 1.35 {
		t.Errorf("want 1.35, got %g", got)
	}
	if got := c.Evaluate(3.4); got != 1.35 {
		t.Errorf("want 1.35, got %g", got)
	}
}

func TestParam(t *testing.T) {
	p := Param{}
	if got := p.Evaluate(3); got != 3 {
		t.Errorf("want 3, got %g", got)
	}
	if got := p.Evaluate(1.25); got == 4.2 {
		t.Error("parameter evaluated to a value it was never given")
	}
}

func TestBinary(t *testing.T) {
	cases := []struct {
		name string
		term Term
		t    float64
		want float64
	}{
		{"add", Binary{Add, Constant{1}, Param{}}, 8, 9},
		{"sub", Binary{Sub, Constant{13}, Param{}}, 3, 10},
		{"mul", Binary{Mul, Constant{5}, Param{}}, 6, 30},
		{"div", Binary{Div, Constant{6}, Param{}}, 3, 2},
		{"pow", Binary{Pow, Param{}, Constant{2}}, 4, 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.term.Evaluate(c.t); got != c.want {
				t.Errorf("%v at %g: want %g, got %g", c.term, c.t, c.want, got)
			}
		})
	}
}

func TestNeg(t *testing.T) {
	n := Neg{X: Param{}}
	if got := n.Evaluate(9); got != -9 {
		t.Errorf("want -9, got %g", got)
	}
}

func TestCall(t *testing.T) {
	sin := Call{Name: "sin", Fn: math.Sin, Arg: Constant{20}}
	if got := sin.Evaluate(5); got != math.Sin(20) {
		t.Errorf("want %g, got %g", math.Sin(20), got)
	}
	cos := Call{Name: "cos", Fn: math.Cos, Arg: Param{}}
	if got := cos.Evaluate(3.14); got != math.Cos(3.14) {
		t.Errorf("want %g, got %g", math.Cos(3.14), got)
	}
}

func TestComposition(t *testing.T) {
	// 1 + 2*t*t by hand.
	manual := Binary{
		Op:   Add,
		Left: Constant{1},
		Right: Binary{
			Op:    Mul,
			Left:  Binary{Op: Mul, Left: Constant{2}, Right: Param{}},
			Right: Param{},
		},
	}
	parsed, err := Parametrize("1+2*t*t")
	if err != nil {
		t.Fatal("failed to parse:", err)
	}
	for _, x := range []float64{0, 1, 3, -2.5} {
		if m, p := manual.Evaluate(x), parsed.Evaluate(x); m != p {
			t.Errorf("at %g: manual %g != parsed %g", x, m, p)
		}
	}
	if got := manual.Evaluate(3); got != 19 {
		t.Errorf("at 3: want 19, got %g", got)
	}
}

func TestEvalTotal(t *testing.T) {
	cases := []struct {
		name string
		term Term
		t    float64
		want func(float64) bool
	}{
		{"div-zero", Binary{Div, Constant{1}, Constant{0}}, 0, func(v float64) bool { return math.IsInf(v, 1) }},
		{"div-neg-zero", Binary{Div, Constant{-1}, Constant{0}}, 0, func(v float64) bool { return math.IsInf(v, -1) }},
		{"zero-zero", Binary{Div, Constant{0}, Constant{0}}, 0, math.IsNaN},
		{"sqrt-neg", Call{"sqrt", math.Sqrt, Constant{-1}}, 0, math.IsNaN},
		{"ln-neg", Call{"ln", math.Log, Constant{-1}}, 0, math.IsNaN},
		{"ln-zero", Call{"ln", math.Log, Constant{0}}, 0, func(v float64) bool { return math.IsInf(v, -1) }},
		{"pow-nan", Binary{Pow, Constant{-1}, Constant{0.5}}, 0, math.IsNaN},
		{"div-param", Binary{Div, Constant{1}, Param{}}, 0, func(v float64) bool { return math.IsInf(v, 1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.term.Evaluate(c.t)
			if !c.want(got) {
				t.Errorf("%v at %g: got %g", c.term, c.t, got)
			}
		})
	}
}

func TestPiecewise(t *testing.T) {
	pw := Piecewise{
		Parts: []PiecewisePart{
			{Term: Constant{3}, After: 0},
			{Term: Constant{5}, After: 5},
			{Term: Constant{9}, After: 10},
		},
	}
	cases := []struct{ t, want float64 }{
		{2, 3},
		{8, 5},
		{20, 9},
		{5, 5},
		{-1, 3},
	}
	for _, c := range cases {
		if got := pw.Evaluate(c.t); got != c.want {
			t.Errorf("at %g: want %g, got %g", c.t, c.want, got)
		}
	}
}

func TestPiecewiseLooping(t *testing.T) {
	pw := Piecewise{
		Parts: []PiecewisePart{
			{Term: Constant{2}, After: 1},
			{Term: Constant{4}, After: 5},
			{Term: Constant{6}, After: 9},
		},
		Cycle: 10,
	}
	cases := []struct{ t, want float64 }{
		{3, 2},
		{16, 4},
		{109, 6},
	}
	for _, c := range cases {
		if got := pw.Evaluate(c.t); got != c.want {
			t.Errorf("at %g: want %g, got %g", c.t, c.want, got)
		}
	}
}

func TestPiecewiseEmpty(t *testing.T) {
	if got := (Piecewise{}).Evaluate(3); got != 0 {
		t.Errorf("empty piecewise: want 0, got %g", got)
	}
}

func TestRandom(t *testing.T) {
	r := Random{Min: Constant{6}, Max: Constant{10}}
	for i := 0; i < 100; i++ {
		got := r.Evaluate(2)
		if got < 6 || got >= 10 {
			t.Fatalf("out of range: %g", got)
		}
	}
	r = Random{Min: Constant{2.5}, Max: Param{}}
	for i := 0; i < 100; i++ {
		got := r.Evaluate(15)
		if got < 2.5 || got >= 15 {
			t.Fatalf("out of range: %g", got)
		}
	}
}

func TestRandomDegenerate(t *testing.T) {
	// Evaluation cannot fail, so an empty range collapses to its min bound.
	r := Random{Min: Constant{5}, Max: Constant{5}}
	if got := r.Evaluate(0); got != 5 {
		t.Errorf("want 5, got %g", got)
	}
	r = Random{Min: Constant{7}, Max: Constant{3}}
	if got := r.Evaluate(0); got != 7 {
		t.Errorf("want 7, got %g", got)
	}
}

func TestTermString(t *testing.T) {
	cases := []struct {
		term Term
		want string
	}{
		{Constant{1.5}, "1.5"},
		{Param{}, "t"},
		{Binary{Add, Constant{1}, Param{}}, "(1 + t)"},
		{Neg{Param{}}, "(-t)"},
		{Call{"sin", math.Sin, Param{}}, "sin(t)"},
		{Random{Constant{0}, Param{}}, "rand(0, t)"},
		{Piecewise{Parts: []PiecewisePart{{Constant{1}, 0}, {Constant{2}, 5}}}, "piecewise(1 > 0 | 2 > 5)"},
	}
	for _, c := range cases {
		if got := c.term.String(); got != c.want {
			t.Errorf("want %s, got %s", c.want, got)
		}
	}
}
