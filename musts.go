package fraction

import "fmt"

// MustAdd is like [Fraction.Add] but panics if computing error.
func (f Fraction) MustAdd(g Fraction) Fraction {
	h, err := f.Add(g)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", g, err))
	}
	return h
}

// MustSub is like [Fraction.Sub] but panics if computing error.
func (f Fraction) MustSub(g Fraction) Fraction {
	h, err := f.Sub(g)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", g, err))
	}
	return h
}

// MustMul is like [Fraction.Mul] but panics if computing error.
func (f Fraction) MustMul(g Fraction) Fraction {
	h, err := f.Mul(g)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", g, err))
	}
	return h
}

// MustQuo is like [Fraction.Quo] but panics if computing error.
func (f Fraction) MustQuo(g Fraction) Fraction {
	h, err := f.Quo(g)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", g, err))
	}
	return h
}

// MustPow is like [Fraction.Pow] but panics if computing error.
func (f Fraction) MustPow(exp int) Fraction {
	h, err := f.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return h
}

// MustInv is like [Fraction.Inv] but panics if computing error.
func (f Fraction) MustInv() Fraction {
	h, err := f.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return h
}
