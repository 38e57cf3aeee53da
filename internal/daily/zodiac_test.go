package daily

import (
	"testing"

	domainerrors "streetbite/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZodiacSign_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		day, month int
		want       Sign
	}{
		{day: 20, month: 3, want: Pisces},
		{day: 21, month: 3, want: Aries},
		{day: 19, month: 1, want: Capricorn},
		{day: 20, month: 1, want: Aquarius},
		{day: 18, month: 2, want: Aquarius},
		{day: 19, month: 2, want: Pisces},
		{day: 19, month: 4, want: Aries},
		{day: 20, month: 4, want: Taurus},
		{day: 20, month: 5, want: Taurus},
		{day: 21, month: 5, want: Gemini},
		{day: 20, month: 6, want: Gemini},
		{day: 21, month: 6, want: Cancer},
		{day: 22, month: 7, want: Cancer},
		{day: 23, month: 7, want: Leo},
		{day: 22, month: 8, want: Leo},
		{day: 23, month: 8, want: Virgo},
		{day: 22, month: 9, want: Virgo},
		{day: 23, month: 9, want: Libra},
		{day: 22, month: 10, want: Libra},
		{day: 23, month: 10, want: Scorpio},
		{day: 21, month: 11, want: Scorpio},
		{day: 22, month: 11, want: Sagittarius},
		{day: 21, month: 12, want: Sagittarius},
		{day: 22, month: 12, want: Capricorn},
		{day: 31, month: 12, want: Capricorn},
		{day: 1, month: 1, want: Capricorn},
	}

	for _, tt := range tests {
		got, err := ZodiacSign(tt.day, tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "day=%d month=%d", tt.day, tt.month)
	}
}

func TestZodiacSign_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range [][2]int{{0, 3}, {32, 3}, {10, 0}, {10, 13}} {
		_, err := ZodiacSign(in[0], in[1])
		require.Error(t, err)
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidationFailed))
	}
}

func TestSign_Element(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Fire, Aries.Element())
	assert.Equal(t, Water, Pisces.Element())
	assert.Equal(t, Air, Aquarius.Element())
	assert.Equal(t, Earth, Capricorn.Element())
}
