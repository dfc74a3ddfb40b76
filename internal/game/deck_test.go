package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckResetHoldsAllCards(t *testing.T) {
	d := NewDeckFromSource(rand.NewSource(1))
	require.Equal(t, 52, d.Remaining())

	seen := make(map[Card]int)
	for _, c := range d.cards {
		seen[c]++
	}
	assert.Len(t, seen, 52)
	for c, n := range seen {
		assert.Equal(t, 1, n, "card %v appears %d times", c, n)
	}
}

func TestDeckDrawsAreUniqueWithinShoe(t *testing.T) {
	d := NewDeckFromSource(rand.NewSource(42))

	// 43 draws bring the shoe from 52 down to 9 without crossing the
	// low-water mark before a draw is served
	seen := make(map[Card]bool)
	for i := 0; i < 43; i++ {
		c := d.Draw()
		require.False(t, seen[c], "card %v drawn twice within one shoe", c)
		seen[c] = true
	}
	assert.Equal(t, 9, d.Remaining())
}

func TestDeckReshufflesBelowLowWaterMark(t *testing.T) {
	d := NewDeckFromSource(rand.NewSource(7))
	for i := 0; i < 43; i++ {
		d.Draw()
	}
	require.Less(t, d.Remaining(), LowWaterMark)

	// The next draw is served from a freshly reset shoe
	d.Draw()
	assert.Equal(t, 51, d.Remaining())
}

func TestDeckDrawNeverFails(t *testing.T) {
	d := NewDeckFromSource(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		c := d.Draw()
		assert.NotZero(t, c.Value())
	}
}
