package colorwheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Monochromatic(t *testing.T) {
	h := Classify([]string{"blue", "navy", "denim"})

	assert.Equal(t, SchemeMonochromatic, h.Scheme)
	assert.InDelta(t, 0.9, h.Score, 1e-9)
}

func TestClassify_AllNeutrals(t *testing.T) {
	h := Classify([]string{"black", "white", "grey"})

	// Nothing chromatic, nothing can clash.
	assert.Equal(t, SchemeMonochromatic, h.Scheme)
}

func TestClassify_TablePairComplementary(t *testing.T) {
	h := Classify([]string{"navy", "white"})

	assert.Equal(t, SchemeComplementary, h.Scheme)
	// White is part of the pair itself, so it earns no extra neutral bonus.
	assert.InDelta(t, 0.85, h.Score, 1e-9)
}

func TestClassify_OpposingHueClusters(t *testing.T) {
	h := Classify([]string{"orange", "blue"})

	assert.Equal(t, SchemeComplementary, h.Scheme)
	assert.InDelta(t, 0.85, h.Score, 1e-9)
}

func TestClassify_ComplementaryWithFreeNeutral(t *testing.T) {
	h := Classify([]string{"orange", "blue", "white"})

	assert.Equal(t, SchemeComplementary, h.Scheme)
	assert.InDelta(t, 0.90, h.Score, 1e-9)
}

func TestClassify_Analogous(t *testing.T) {
	h := Classify([]string{"red", "orange", "mustard"})

	assert.Equal(t, SchemeAnalogous, h.Scheme)
	assert.InDelta(t, 0.8, h.Score, 1e-9)
}

func TestClassify_Discordant(t *testing.T) {
	h := Classify([]string{"red", "teal", "yellow"})

	assert.Equal(t, SchemeNone, h.Scheme)
	assert.InDelta(t, 0.4, h.Score, 1e-9)
}

func TestClassify_NeutralBonusCappedAtOne(t *testing.T) {
	h := Classify([]string{"navy", "blue", "white", "black", "grey"})

	assert.Equal(t, SchemeMonochromatic, h.Scheme)
	assert.InDelta(t, 1.0, h.Score, 1e-9)
}

func TestClassify_DominantColorByCount(t *testing.T) {
	h := Classify([]string{"white", "navy", "navy"})

	assert.Equal(t, "navy", h.DominantColor)
}

func TestClassify_DominantColorTieFirstSeen(t *testing.T) {
	h := Classify([]string{"black", "white"})

	assert.Equal(t, "black", h.DominantColor)
}

func TestClassify_Deterministic(t *testing.T) {
	colors := []string{"Olive", "green", " teal ", "beige"}

	first := Classify(colors)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(colors))
	}
}

func TestClassify_UnknownColorTreatedAsNeutral(t *testing.T) {
	h := Classify([]string{"blue", "teal", "coral"})

	// An unrecognised tag must never turn a decent palette discordant.
	assert.NotEqual(t, SchemeNone, h.Scheme)
}

func TestClassify_Empty(t *testing.T) {
	h := Classify(nil)

	assert.Equal(t, SchemeNone, h.Scheme)
	assert.InDelta(t, 0.4, h.Score, 1e-9)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Lookup("navy"), Lookup("  NAVY "))
	assert.True(t, Lookup("charcoal").Neutral)
}
