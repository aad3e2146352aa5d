package fraction

import (
	"math"
	"math/big"
	"sync"
)

// fint (Fast INTeger) is a wrapper around int64.
// Values of fint are always within [-maxFint, maxFint], so negation
// never overflows.
type fint int64

// maxFint is a maximum absolute value of fint.
const maxFint = math.MaxInt64

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if (y > 0 && x > maxFint-y) || (y < 0 && x < -maxFint-y) {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z = x * y
	if z == math.MinInt64 || z/y != x {
		return 0, false
	}
	return z, true
}

// pow calculates x^exp by repeated squaring and checks overflow.
func (x fint) pow(exp uint) (z fint, ok bool) {
	z = 1
	for exp > 0 {
		if exp&1 == 1 {
			z, ok = z.mul(x)
			if !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			x, ok = x.mul(x)
			if !ok {
				return 0, false
			}
		}
	}
	return z, true
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// For y > 0 the remainder is always in [0, y).
func (x fint) quoRem(y fint) (q, r fint) {
	q, r = x/y, x%y
	if r < 0 {
		q--
		r += y
	}
	return q, r
}

// abs calculates |x|.
func (x fint) abs() fint {
	if x < 0 {
		return -x
	}
	return x
}

// uabs calculates |x| as uint64.
// math.MinInt64 is mapped to 2^63.
func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// gcd calculates the greatest common divisor of x and y.
// gcd(x, 0) = x.
func gcd(x, y uint64) uint64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) cmpAbs(x *bint) int {
	return (*big.Int)(z).CmpAbs((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetInt64(int64(x))
}

// fint converts *big.Int to fint.
// The second value is false if z is outside [-maxFint, maxFint].
func (z *bint) fint() (fint, bool) {
	b := (*big.Int)(z)
	if !b.IsInt64() || b.Int64() == math.MinInt64 {
		return 0, false
	}
	return fint(b.Int64()), true
}

func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// quo calculates z = x / y, truncated towards zero.
func (z *bint) quo(x, y *bint) {
	(*big.Int)(z).Quo((*big.Int)(x), (*big.Int)(y))
}

// gcd calculates z = gcd(|x|, |y|).
func (z *bint) gcd(x, y *bint) {
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(x), (*big.Int)(y))
}

// reduce divides num and den by their greatest common divisor and
// moves the sign of den to num.
func reduce(num, den *bint) {
	g := getBint()
	defer putBint(g)
	g.gcd(num, den)
	if g.sign() != 0 {
		num.quo(num, g)
		den.quo(den, g)
	}
	if den.sign() < 0 {
		num.neg(num)
		den.neg(den)
	}
}

// bpool is a cache of reusable *big.Int values.
var bpool = sync.Pool{
	New: func() any {
		return new(bint)
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
