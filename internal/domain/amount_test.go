package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int32
		expected string
		err      error
	}{
		{
			name:     "fractional amount with 6 decimals",
			amount:   "10.5",
			decimals: 6,
			expected: "10500000",
		},
		{
			name:     "one ether",
			amount:   "1",
			decimals: 18,
			expected: "1000000000000000000",
		},
		{
			name:     "smallest unit",
			amount:   "0.000001",
			decimals: 6,
			expected: "1",
		},
		{
			name:     "sub-unit precision truncated",
			amount:   "1.23456789",
			decimals: 6,
			expected: "1234567",
		},
		{
			name:     "large amount keeps precision",
			amount:   "123456789012345678.123456789012345678",
			decimals: 18,
			expected: "123456789012345678123456789012345678",
		},
		{
			name:     "zero amount",
			amount:   "0",
			decimals: 18,
			err:      ErrInvalidAmount,
		},
		{
			name:     "negative amount",
			amount:   "-1",
			decimals: 18,
			err:      ErrInvalidAmount,
		},
		{
			name:     "amount below one base unit",
			amount:   "0.0000001",
			decimals: 6,
			err:      ErrInvalidAmount,
		},
		{
			name:     "malformed amount",
			amount:   "ten",
			decimals: 6,
			err:      ErrInvalidAmount,
		},
		{
			name:     "empty amount",
			amount:   "",
			decimals: 6,
			err:      ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToBaseUnits(tt.amount, tt.decimals)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestFormatBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    *big.Int
		decimals int32
		expected string
	}{
		{
			name:     "one ether",
			value:    big.NewInt(1_000_000_000_000_000_000),
			decimals: 18,
			expected: "1.000000000000000000",
		},
		{
			name:     "six decimals",
			value:    big.NewInt(10_500_000),
			decimals: 6,
			expected: "10.500000",
		},
		{
			name:     "zero decimals",
			value:    big.NewInt(42),
			decimals: 0,
			expected: "42",
		},
		{
			name:     "nil value",
			value:    nil,
			decimals: 2,
			expected: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBaseUnits(tt.value, tt.decimals))
		})
	}
}

func TestFormatHexQuantity(t *testing.T) {
	result, err := FormatHexQuantity("0xde0b6b3a7640000", 18)
	require.NoError(t, err)
	assert.Equal(t, "1.000000000000000000", result)

	result, err = FormatHexQuantity("0x", 6)
	require.NoError(t, err)
	assert.Equal(t, "0.000000", result)

	_, err = FormatHexQuantity("0xzz", 6)
	assert.Error(t, err)
}

func TestParseHexQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "simple", input: "0x1b", expected: "27"},
		{name: "padded word", input: "0x00000000000000000000000000000000000000000000000000000000000f4240", expected: "1000000"},
		{name: "empty", input: "", expected: "0"},
		{name: "bare prefix", input: "0x", expected: "0"},
		{name: "invalid", input: "0xg1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseHexQuantity(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestParseBaseUnits(t *testing.T) {
	v, err := ParseBaseUnits("150000")
	require.NoError(t, err)
	assert.Equal(t, "150000", v.String())

	v, err = ParseBaseUnits("0x4a817c800")
	require.NoError(t, err)
	assert.Equal(t, "20000000000", v.String())

	v, err = ParseBaseUnits("")
	require.NoError(t, err)
	assert.Equal(t, "0", v.String())

	_, err = ParseBaseUnits("abc")
	assert.Error(t, err)
}
