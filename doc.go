/*
Package fraction implements immutable exact rational numbers.
Every fraction is kept in lowest terms with a positive denominator,
so each rational number has exactly one representation.

# Representation

[Fraction] is a struct with two fields:

  - Numerator: a signed integer carrying the sign of the fraction.
  - Denominator: a positive integer.

The numerical value of a fraction is Numerator / Denominator.

Fractions are reduced at construction.
For example, [New](6, -8) produces -3/4, and [New](0, 5) produces 0.
The zero value Fraction{} is the number 0, which is also written as 0/1.

# Constraints

Both the numerator and the denominator are int64 values.
The absolute value of the numerator and the denominator never exceeds
[math.MaxInt64], thus [math.MinInt64] is never stored and [Fraction.Neg]
and [Fraction.Abs] always succeed.

# Conversions

The package provides methods for converting fractions:

  - from int64:
    [New], [NewFromInt64].
  - from values of a dynamic type, including *[big.Rat]:
    [Of].
  - to string:
    [Fraction.String], [Fraction.MixedString], [Fraction.MarshalText].
  - to float64:
    [Fraction.Float64].
  - to int64:
    [Fraction.Num], [Fraction.Den], [Fraction.Int64].

Parsing of fractions from strings is not supported.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using int64 arithmetic.
    If no overflow occurs, the result is reduced and immediately returned.

 2. If an intermediate value overflows, the operation is repeated
    using [big.Int] arithmetic.
    The result is reduced and returned if it fits into int64,
    otherwise an overflow error is returned.

Thus, an operation fails only when its reduced result is out of range.
[Fraction.Mul] and [Fraction.Quo] cancel common factors before multiplying,
and powers of coprime integers stay coprime, so [Fraction.Mul], [Fraction.Quo],
and [Fraction.Pow] never need step 2.

# Errors

All methods are panic-free and pure.
Errors are returned in the following cases:

  - Division by Zero.
    [New] with a zero denominator, [Fraction.Quo] and [Fraction.Inv] with a zero
    divisor, and [Fraction.Pow] raising 0 to a negative power return
    [ErrDivisionByZero].

  - Type Mismatch.
    [Of] returns [ErrTypeMismatch] for values of unsupported types.

  - Overflow.
    Unlike standard integers, there is no "wrap around" for fractions.
    For out-of-range results, arithmetic operations return [ErrOverflow].

Comparisons never fail.
[Fraction.EqualValue] reports false for values of other types.

[big.Int]: https://pkg.go.dev/math/big#Int
[big.Rat]: https://pkg.go.dev/math/big#Rat
*/
package fraction
