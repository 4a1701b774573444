package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerstudy/poker"
)

func TestClassToCoord(t *testing.T) {
	t.Parallel()
	tests := []struct {
		label    string
		row, col int
	}{
		{"AA", 0, 0},
		{"AKs", 0, 1},
		{"KAs", 0, 1},
		{"AKo", 1, 0},
		{"KAo", 1, 0},
		{"22", 12, 12},
		{"72o", 12, 7},
		{"32s", 11, 12},
		{"T9s", 4, 5},
		{"109s", 4, 5},
		{"kqo", 2, 1},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			row, col, err := ClassToCoord(tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.row, row)
			assert.Equal(t, tc.col, col)
		})
	}
}

func TestClassToCoordInvalid(t *testing.T) {
	t.Parallel()
	for _, label := range []string{"", "A", "AKx", "AAs", "AAo", "AK", "XKs", "AKso", "1Ks"} {
		_, _, err := ClassToCoord(label)
		assert.ErrorIs(t, err, ErrInvalidClass, label)
	}

	_, err := CoordToClass(13, 0)
	assert.ErrorIs(t, err, ErrInvalidClass)
	_, err = CoordToClass(0, -1)
	assert.ErrorIs(t, err, ErrInvalidClass)
}

func TestCoordRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			label, err := CoordToClass(row, col)
			require.NoError(t, err)
			seen[label] = true

			r, c, err := ClassToCoord(label)
			require.NoError(t, err)
			assert.Equal(t, row, r, label)
			assert.Equal(t, col, c, label)
		}
	}
	assert.Len(t, seen, 169)

	for _, label := range []string{"AA", "AKs", "AKo", "72o"} {
		row, col, err := ClassToCoord(label)
		require.NoError(t, err)
		back, err := CoordToClass(row, col)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}
}

func TestAllClasses(t *testing.T) {
	t.Parallel()
	classes := AllClasses()
	require.Len(t, classes, 169)
	assert.Equal(t, "AA", classes[0].String())
	assert.Equal(t, "22", classes[168].String())

	total := 0
	for _, c := range classes {
		total += c.Kind.Combos()
	}
	assert.Equal(t, TotalCombos, total)
}

func TestClassOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "AKs", ClassOf(poker.MustParseHand("KhAh")).String())
	assert.Equal(t, "AKo", ClassOf(poker.MustParseHand("AsKd")).String())
	assert.Equal(t, "77", ClassOf(poker.MustParseHand("7c7d")).String())
}
