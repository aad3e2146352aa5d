package fraction_test

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	fraction "github.com/baris-ux/nouvelle-classe-fraction"
)

func evaluate(input string) (fraction.Fraction, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return fraction.Fraction{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]fraction.Fraction, error) {
	stack := make([]fraction.Fraction, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "^":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []fraction.Fraction, token string) ([]fraction.Fraction, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result fraction.Fraction
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "^":
		if !right.IsInt() {
			return nil, fmt.Errorf("exponent %v: %w", right, fraction.ErrTypeMismatch)
		}
		result, err = left.Pow(int(right.Num()))
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []fraction.Fraction, token string) ([]fraction.Fraction, error) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, err
	}
	f, err := fraction.Of(n)
	if err != nil {
		return nil, err
	}
	return append(stack, f), nil
}

// This example implements a simple calculator that evaluates expressions
// written in prefix (or Polish) notation.
// Operands are integers, and fractions appear as results of division.
// The exponent of the "^" operator must be an integer.
func Example_prefixCalculator() {
	f, err := evaluate("+ / 1 2 / 1 3")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	fmt.Println(evaluate("^ / 2 3 -2"))
	_, err = evaluate("^ 2 / 1 2")
	fmt.Println(errors.Is(err, fraction.ErrTypeMismatch))
	_, err = evaluate("/ 1 - 2 2")
	fmt.Println(errors.Is(err, fraction.ErrDivisionByZero))
	// Output:
	// 5/6
	// 9/4 <nil>
	// true
	// true
}

func sum[T fraction.Arithmetic[T]](zero T, terms ...T) (T, error) {
	total := zero
	for _, t := range terms {
		var err error
		total, err = total.Add(t)
		if err != nil {
			return zero, err
		}
	}
	return total, nil
}

// This example sums the first ten terms of the harmonic series
// 1 + 1/2 + 1/3 + ... + 1/10 using a function written against the
// [fraction.Arithmetic] interface.
func Example_harmonicSeries() {
	terms := make([]fraction.Fraction, 0, 10)
	for n := int64(1); n <= 10; n++ {
		terms = append(terms, fraction.MustNew(1, n))
	}
	h, err := sum(fraction.Fraction{}, terms...)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	fmt.Println(h.MixedString())
	// Output:
	// 7381/2520
	// 2 2341/2520
}

func ExampleNew() {
	fmt.Println(fraction.New(6, 8))
	fmt.Println(fraction.New(6, -8))
	fmt.Println(fraction.New(0, 5))
	fmt.Println(fraction.New(1, 0))
	// Output:
	// 3/4 <nil>
	// -3/4 <nil>
	// 0 <nil>
	// 0 constructing 1/0: division by zero
}

func ExampleMustNew() {
	fmt.Println(fraction.MustNew(3, 9))
	fmt.Println(fraction.MustNew(-6, -3))
	// Output:
	// 1/3
	// 2
}

func ExampleNewFromInt64() {
	fmt.Println(fraction.NewFromInt64(-5))
	// Output:
	// -5 <nil>
}

func ExampleOf() {
	f := fraction.MustNew(2, 3)
	fmt.Println(fraction.Of(f))
	fmt.Println(fraction.Of(int32(7)))
	fmt.Println(fraction.Of(big.NewRat(3, 6)))
	fmt.Println(fraction.Of(0.5))
	// Output:
	// 2/3 <nil>
	// 7 <nil>
	// 1/2 <nil>
	// 0 converting float64 to fraction.Fraction: type mismatch
}

func ExampleFraction_Num() {
	f := fraction.MustNew(6, -8)
	fmt.Println(f.Num())
	fmt.Println(f.Den())
	// Output:
	// -3
	// 4
}

func ExampleFraction_String() {
	fmt.Println(fraction.MustNew(3, 4).String())
	fmt.Println(fraction.MustNew(6, 3).String())
	fmt.Println(fraction.MustNew(0, 1).String())
	// Output:
	// 3/4
	// 2
	// 0
}

func ExampleFraction_MixedString() {
	fmt.Println(fraction.MustNew(7, 3).MixedString())
	fmt.Println(fraction.MustNew(-7, 3).MixedString())
	fmt.Println(fraction.MustNew(4, 2).MixedString())
	fmt.Println(fraction.MustNew(1, 3).MixedString())
	// Output:
	// 2 1/3
	// -3 2/3
	// 2
	// 1/3
}

func ExampleFraction_MarshalText() {
	b, err := fraction.MustNew(-6, 8).MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output:
	// -3/4
}

func ExampleFraction_Float64() {
	fmt.Println(fraction.MustNew(1, 4).Float64())
	fmt.Println(fraction.MustNew(-3, 2).Float64())
	// Output:
	// 0.25
	// -1.5
}

func ExampleFraction_Add() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)
	fmt.Println(f.Add(g))
	// Output:
	// 5/6 <nil>
}

func ExampleFraction_Sub() {
	f := fraction.MustNew(1, 4)
	g := fraction.MustNew(3, 4)
	fmt.Println(f.Sub(g))
	// Output:
	// -1/2 <nil>
}

func ExampleFraction_Mul() {
	f := fraction.MustNew(2, 3)
	g := fraction.MustNew(3, 4)
	fmt.Println(f.Mul(g))
	// Output:
	// 1/2 <nil>
}

func ExampleFraction_Quo() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 4)
	fmt.Println(f.Quo(g))
	fmt.Println(f.Quo(fraction.Fraction{}))
	// Output:
	// 2 <nil>
	// 0 computing [1/2 / 0]: division by zero
}

func ExampleFraction_Pow() {
	f := fraction.MustNew(2, 3)
	fmt.Println(f.Pow(2))
	fmt.Println(f.Pow(0))
	fmt.Println(f.Pow(-2))
	// Output:
	// 4/9 <nil>
	// 1 <nil>
	// 9/4 <nil>
}

func ExampleFraction_Inv() {
	fmt.Println(fraction.MustNew(-2, 3).Inv())
	// Output:
	// -3/2 <nil>
}

func ExampleFraction_Equal() {
	f := fraction.MustNew(1, 2)
	fmt.Println(f.Equal(fraction.MustNew(2, 4)))
	fmt.Println(f.Equal(fraction.MustNew(1, 3)))
	fmt.Println(f.EqualValue("1/2"))
	// Output:
	// true
	// false
	// false
}

func ExampleFraction_Cmp() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)
	fmt.Println(f.Cmp(g))
	fmt.Println(g.Cmp(f))
	fmt.Println(f.Cmp(f))
	// Output:
	// 1
	// -1
	// 0
}

func ExampleFraction_IsAdjacent() {
	f := fraction.MustNew(1, 2)
	fmt.Println(f.IsAdjacent(fraction.MustNew(1, 3)))
	fmt.Println(f.IsAdjacent(fraction.MustNew(1, 5)))
	// Output:
	// true
	// false
}

func ExampleFraction_IsUnit() {
	fmt.Println(fraction.MustNew(1, 3).IsUnit())
	fmt.Println(fraction.MustNew(-1, 3).IsUnit())
	fmt.Println(fraction.MustNew(2, 3).IsUnit())
	// Output:
	// true
	// false
	// false
}

func ExampleFraction_IsProper() {
	fmt.Println(fraction.MustNew(1, 3).IsProper())
	fmt.Println(fraction.MustNew(3, 2).IsProper())
	// Output:
	// true
	// false
}

func ExampleFraction_IsInt() {
	fmt.Println(fraction.MustNew(4, 2).IsInt())
	fmt.Println(fraction.MustNew(3, 2).IsInt())
	// Output:
	// true
	// false
}
