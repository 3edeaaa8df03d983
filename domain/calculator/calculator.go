// Package calculator applies one of four arithmetic operators to two operands.
package calculator

import (
	"fmt"
	"strings"

	"showcase/internal/errors"

	"github.com/shopspring/decimal"
)

// Operation is an arithmetic operator offered by the calculator
type Operation string

const (
	Add      Operation = "Add"
	Subtract Operation = "Subtract"
	Multiply Operation = "Multiply"
	Divide   Operation = "Divide"
)

// DivisionPrecision is the number of fractional digits kept by Divide
const DivisionPrecision = 16

// Operands are limited to what a float64 number input can submit: at most
// MaxOperandDigits significant digits and a decimal magnitude between
// MinOperandMagnitude and MaxOperandMagnitude.
const (
	MaxOperandDigits    = 64
	MaxOperandMagnitude = 308
	MinOperandMagnitude = -324
)

// Operations lists the operators in menu order
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// ParseOperation accepts an operator name (case-insensitive) or its symbol
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return Add, nil
	case "subtract", "-":
		return Subtract, nil
	case "multiply", "*", "x":
		return Multiply, nil
	case "divide", "/":
		return Divide, nil
	}
	return "", errors.InvalidInput(fmt.Sprintf("unknown operation %q", s))
}

// Result is the outcome of one calculation
type Result struct {
	A         decimal.Decimal `json:"a"`
	B         decimal.Decimal `json:"b"`
	Operation Operation       `json:"operation"`
	Value     decimal.Decimal `json:"value"`
}

// Float returns the result as the nearest float64
func (r Result) Float() float64 {
	return r.Value.InexactFloat64()
}

// Display is the line shown to the user
func (r Result) Display() string {
	return "Result: " + r.Value.String()
}

// Calculate applies op to a and b. Dividing by zero returns a
// DIVISION_BY_ZERO error and no result.
func Calculate(a, b decimal.Decimal, op Operation) (Result, error) {
	if err := checkOperand("first number", a); err != nil {
		return Result{}, err
	}
	if err := checkOperand("second number", b); err != nil {
		return Result{}, err
	}

	result := Result{A: a, B: b, Operation: op}

	switch op {
	case Add:
		result.Value = a.Add(b)
	case Subtract:
		result.Value = a.Sub(b)
	case Multiply:
		result.Value = a.Mul(b)
	case Divide:
		if b.IsZero() {
			return Result{}, errors.DivisionByZero()
		}
		result.Value = a.DivRound(b, DivisionPrecision)
	default:
		return Result{}, errors.InvalidInput(fmt.Sprintf("unknown operation %q", op))
	}

	return result, nil
}

// ParseOperand reads a number typed by the user. Blank input is 0, as on the form.
func ParseOperand(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.InvalidInput(fmt.Sprintf("%q is not a number", abbreviate(s)))
	}
	if err := checkOperand(fmt.Sprintf("%q", abbreviate(s)), d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// checkOperand bounds the digits and exponent of d; arithmetic rescales
// operands to the smaller exponent.
func checkOperand(name string, d decimal.Decimal) error {
	digits := d.NumDigits()
	magnitude := int64(d.Exponent()) + int64(digits) - 1
	if digits > MaxOperandDigits || magnitude > MaxOperandMagnitude || magnitude < MinOperandMagnitude {
		return errors.InvalidInput(fmt.Sprintf(
			"%s is out of range: use at most %d significant digits and a magnitude up to 1e%d",
			name, MaxOperandDigits, MaxOperandMagnitude))
	}
	return nil
}

func abbreviate(s string) string {
	const max = 32
	if r := []rune(s); len(r) > max {
		return string(r[:max]) + "…"
	}
	return s
}
