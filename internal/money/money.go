// Package money parses and rounds user-entered amounts. All arithmetic in
// the service layer runs on shopspring decimals; float64 never touches a
// monetary value.
package money

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMontoInvalido    = errors.New("monto invalido")
	ErrCantidadInvalida = errors.New("cantidad invalida")
)

// Tolerancia absorbs rounding noise from repeated decimal arithmetic:
// a variance whose absolute value falls below it is treated as zero.
var Tolerancia = decimal.NewFromFloat(0.009)

// ParseMonto parses a non-negative amount with at most two decimals.
// Empty input means zero. Anything that is not digits and at most one dot
// is rejected, never coerced.
func ParseMonto(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return decimal.Zero, ErrMontoInvalido
			}
		default:
			return decimal.Zero, ErrMontoInvalido
		}
	}
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 2 {
		return decimal.Zero, ErrMontoInvalido
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrMontoInvalido
	}
	return d, nil
}

// ParseCantidad parses a non-negative integer quantity (bill/coin counts).
// Empty input means zero.
func ParseCantidad(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrCantidadInvalida
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrCantidadInvalida
	}
	return n, nil
}

// Round2 rounds to two decimals, the precision of every stored amount.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// EsCero reports whether d is zero within the variance tolerance.
func EsCero(d decimal.Decimal) bool {
	return d.Abs().LessThan(Tolerancia)
}
