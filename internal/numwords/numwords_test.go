package numwords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{100000, "One Lakh"},
		{100118, "One Lakh One Hundred Eighteen"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{10000000, "One Crore"},
		{999999999, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{1000000000, "One Hundred Crore"},
		{10000000000, "One Thousand Crore"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Convert(tc.in), "Convert(%d)", tc.in)
	}
}

func TestConvertNegativeIsOutOfRange(t *testing.T) {
	assert.Empty(t, Convert(-5))
}

func TestRupeesTruncatesPaise(t *testing.T) {
	assert.Equal(t, "Rupees One Hundred Eighteen Only", Rupees(118.99))
	assert.Equal(t, "Rupees Zero Only", Rupees(0))
	assert.Equal(t, "Rupees Zero Only", Rupees(-3))
}

func TestRupeesBeyondInt64(t *testing.T) {
	assert.Equal(t, TooLarge, Rupees(1e20))
	assert.Equal(t, TooLarge, Rupees(math.Pow(2, 63)))
	assert.Equal(t, TooLarge, Rupees(math.Inf(1)))
	assert.Equal(t, "Rupees Zero Only", Rupees(math.NaN()))
	assert.Equal(t, "Rupees One Hundred Crore Only", Rupees(1e9))
}
