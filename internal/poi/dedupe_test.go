package poi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduperOsmID(t *testing.T) {
	d := NewDeduper()

	assert.True(t, d.Offer(CategorySynagogue, 10, 20, "node/123", "Temple A"))
	// Same id always rejects, even with different everything else.
	assert.False(t, d.Offer(CategoryKosher, 99, 99, "node/123", "Other"))
	assert.True(t, d.Offer(CategorySynagogue, 10, 20, "node/456", "Temple A"))
}

func TestDeduperFallbackFuzzyCoords(t *testing.T) {
	d := NewDeduper()

	assert.True(t, d.Offer(CategorySynagogue, 10.000001, 20.000001, "", "Temple A"))
	// Within 5-decimal rounding tolerance: same key.
	assert.False(t, d.Offer(CategorySynagogue, 10.000004, 20.000004, "", "Temple A"))
	// Beyond the tolerance: distinct key.
	assert.True(t, d.Offer(CategorySynagogue, 10.0001, 20.0001, "", "Temple A"))
}

func TestDeduperFallbackNormalizesName(t *testing.T) {
	d := NewDeduper()

	assert.True(t, d.Offer(CategoryJCC, 1, 2, "", "  Downtown JCC "))
	assert.False(t, d.Offer(CategoryJCC, 1, 2, "", "downtown jcc"))
}

func TestDeduperFallbackKeepsCategoriesApart(t *testing.T) {
	d := NewDeduper()

	// Different categories at the same coordinate and name never merge.
	assert.True(t, d.Offer(CategorySynagogue, 1, 2, "", "Center"))
	assert.True(t, d.Offer(CategoryKosher, 1, 2, "", "Center"))
}

func TestDeduperExactIDNoFuzzyMerge(t *testing.T) {
	d := NewDeduper()

	// Distinct ids stay distinct even at identical coordinates.
	assert.True(t, d.Offer(CategoryKosher, 1, 2, "node/1", "Deli"))
	assert.True(t, d.Offer(CategoryKosher, 1, 2, "node/2", "Deli"))
}

func TestDeduperIndependentRuns(t *testing.T) {
	first := NewDeduper()
	assert.True(t, first.Offer(CategoryJCC, 1, 2, "node/1", "A"))

	// A fresh accumulator carries no state from earlier runs.
	second := NewDeduper()
	assert.True(t, second.Offer(CategoryJCC, 1, 2, "node/1", "A"))
}

func TestRound5(t *testing.T) {
	assert.Equal(t, "10", round5(10.000001))
	assert.Equal(t, "10.00001", round5(10.000012))
	assert.Equal(t, "-3.14159", round5(-3.141592653))
}
