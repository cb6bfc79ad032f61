package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ToBaseUnits scales a decimal amount string to integer base units.
// Precision finer than one base unit is truncated toward zero.
func ToBaseUnits(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	units := d.Shift(decimals).Truncate(0)
	if !units.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	return units.BigInt(), nil
}

// FormatBaseUnits renders base units as a fixed-point string with exactly decimals places
func FormatBaseUnits(value *big.Int, decimals int32) string {
	if value == nil {
		value = new(big.Int)
	}
	return decimal.NewFromBigInt(value, -decimals).StringFixed(decimals)
}

// ParseHexQuantity parses a 0x-prefixed hex quantity. Empty input and "0x" are zero.
// Leading zeros are accepted since contract calls return left-padded words.
func ParseHexQuantity(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return new(big.Int), nil
	}

	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity: %s", s)
	}
	return v, nil
}

// FormatHexQuantity renders a hex quantity as a fixed-point decimal string
func FormatHexQuantity(s string, decimals int32) (string, error) {
	v, err := ParseHexQuantity(s)
	if err != nil {
		return "", err
	}
	return FormatBaseUnits(v, decimals), nil
}

// ParseBaseUnits parses a base-unit decimal string such as a stored gas override.
// Empty input is zero.
func ParseBaseUnits(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return ParseHexQuantity(s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base units: %s", s)
	}
	return d.Truncate(0).BigInt(), nil
}
