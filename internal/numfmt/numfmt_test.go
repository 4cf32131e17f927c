package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneDecimal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   float64
		want string
	}{
		{70, "70.0"},
		{56.00000000001, "56.0"},
		{2430.4000000000001, "2430.4"},
		{0.05, "0.1"},
		{0, "0.0"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, OneDecimal(tc.in), "OneDecimal(%v)", tc.in)
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{100, "100.0"},
		{1.2, "1.2"},
		{1.375, "1.375"},
		{1.55, "1.55"},
		{1.725, "1.725"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Plain(tc.in), "Plain(%v)", tc.in)
	}
}

func TestNonFinite(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   float64
		want string
	}{
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, OneDecimal(tc.in), "OneDecimal(%v)", tc.in)
		assert.Equal(t, tc.want, Plain(tc.in), "Plain(%v)", tc.in)
	}
}
