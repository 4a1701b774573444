package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerstudy/poker"
)

func TestExpandClassToCombos(t *testing.T) {
	t.Parallel()
	tests := []struct {
		label string
		want  int
	}{
		{"AA", 6},
		{"AKs", 4},
		{"AKo", 12},
		{"32o", 12},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			combos, err := ExpandClassToCombos(tc.label)
			require.NoError(t, err)
			require.Len(t, combos, tc.want)

			seen := make(map[poker.CardSet]bool)
			for _, h := range combos {
				assert.NotEqual(t, h[0], h[1])
				assert.Equal(t, tc.label, ClassOf(h).String())
				seen[h.Set()] = true
			}
			assert.Len(t, seen, tc.want, "combos are distinct")
		})
	}

	_, err := ExpandClassToCombos("AKx")
	assert.ErrorIs(t, err, ErrInvalidClass)
}

func TestFilterBlocked(t *testing.T) {
	t.Parallel()
	aces := MustParseClass("AA").Combos()

	hero := poker.MustParseHand("AhAd").Set()
	remaining := FilterBlocked(aces, hero)
	require.Len(t, remaining, 1)
	assert.Equal(t, poker.NewCardSet(poker.MustParseCards("AsAc")...), remaining[0].Set())

	threeAces := poker.NewCardSet(poker.MustParseCards("AhAdAs")...)
	assert.Empty(t, FilterBlocked(aces, threeAces))

	assert.Len(t, FilterBlocked(aces, 0), 6)
}
