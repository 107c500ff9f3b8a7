package outfit

import (
	"fmt"
	"math/rand"
	"testing"

	"StyleMate-Server/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neutralProfile() domain.PreferenceProfile {
	return domain.PreferenceProfile{
		CategoryScore: map[string]float64{},
		ColorScore:    map[string]float64{},
		BrandScore:    map[string]float64{},
	}
}

func assemblePool(tops, bottoms, shoes int) Pool {
	pool := Pool{}
	colors := []string{"navy", "white", "black", "blue", "grey"}
	add := func(category string, n int) {
		for i := 0; i < n; i++ {
			pool[category] = append(pool[category], poolItem(
				fmt.Sprintf("%s%d", category, i), category, colors[i%len(colors)],
			))
		}
	}
	add(domain.CategoryTop, tops)
	add(domain.CategoryBottom, bottoms)
	add(domain.CategoryShoes, shoes)
	return pool
}

func TestSignature_OrderIndependent(t *testing.T) {
	a := map[string]domain.Item{
		domain.CategoryTop:    poolItem("t1", domain.CategoryTop, "navy"),
		domain.CategoryBottom: poolItem("b1", domain.CategoryBottom, "white"),
	}
	b := map[string]domain.Item{
		domain.CategoryBottom: poolItem("b1", domain.CategoryBottom, "white"),
		domain.CategoryTop:    poolItem("t1", domain.CategoryTop, "navy"),
	}

	assert.Equal(t, Signature(a), Signature(b))
}

func TestSignature_DiffersOnProvenance(t *testing.T) {
	owned := poolItem("x", domain.CategoryTop, "navy")
	catalog := owned
	catalog.Provenance = domain.ProvenanceCatalog

	a := map[string]domain.Item{domain.CategoryTop: owned}
	b := map[string]domain.Item{domain.CategoryTop: catalog}

	assert.NotEqual(t, Signature(a), Signature(b))
}

func TestAssemble_RequiredSlotsAlwaysFilled(t *testing.T) {
	pool := assemblePool(2, 2, 2)
	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))

	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		for _, slot := range domain.RequiredSlots {
			_, ok := c.Items[slot]
			assert.True(t, ok, "missing required slot %s", slot)
		}
	}
}

func TestAssemble_EmptyRequiredSlotYieldsNothing(t *testing.T) {
	pool := assemblePool(2, 0, 2)
	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))

	assert.Empty(t, candidates)
}

func TestAssemble_OptionalSlotsMayBeAbsent(t *testing.T) {
	pool := assemblePool(1, 1, 1)
	pool[domain.CategoryOuterwear] = []domain.Item{poolItem("o1", domain.CategoryOuterwear, "black")}

	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))

	withOuterwear, withoutOuterwear := 0, 0
	for _, c := range candidates {
		if _, ok := c.Items[domain.CategoryOuterwear]; ok {
			withOuterwear++
		} else {
			withoutOuterwear++
		}
	}
	assert.Equal(t, 1, withOuterwear)
	assert.Equal(t, 1, withoutOuterwear)
}

func TestAssemble_SortedByConfidenceDesc(t *testing.T) {
	pool := assemblePool(3, 3, 3)
	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))

	require.NotEmpty(t, candidates)
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Confidence, candidates[i].Confidence)
	}
}

func TestAssemble_DeterministicUnderCap(t *testing.T) {
	pool := assemblePool(3, 3, 3)

	first := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(7)))
	second := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(99)))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Signature, second[i].Signature)
	}
}

func TestAssemble_CapBoundsCandidateCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopKPerCategory = 10
	cfg.MaxCombinations = 50

	pool := assemblePool(10, 10, 10) // 1000 combinations, over the cap
	candidates := Assemble(pool, neutralProfile(), 1.0, cfg, rand.New(rand.NewSource(3)))

	assert.NotEmpty(t, candidates)
	assert.LessOrEqual(t, len(candidates), cfg.MaxCombinations)
}

func TestAssemble_HarmoniousOutfitScoresHigh(t *testing.T) {
	// Monochromatic navy/blue plus neutral shoes with live weather data:
	// 0.35*harmony + 0.25*0.5 + 0.25*1.0 + 0.15*1.0 with harmony >= 0.9.
	pool := Pool{
		domain.CategoryTop:    {poolItem("t1", domain.CategoryTop, "navy")},
		domain.CategoryBottom: {poolItem("b1", domain.CategoryBottom, "blue")},
		domain.CategoryShoes:  {poolItem("s1", domain.CategoryShoes, "white")},
	}

	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))

	require.Len(t, candidates, 1)
	assert.Greater(t, candidates[0].Confidence, 0.7)
}

func TestAssemble_DegradedWeatherScoresLower(t *testing.T) {
	pool := assemblePool(1, 1, 1)

	live := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))
	degraded := Assemble(pool, neutralProfile(), 0.5, DefaultConfig(), rand.New(rand.NewSource(1)))

	require.Len(t, live, 1)
	require.Len(t, degraded, 1)
	assert.Greater(t, live[0].Confidence, degraded[0].Confidence)
	assert.InDelta(t, 0.5, degraded[0].WeatherScore, 1e-9)
}

func TestAssemble_PreferenceCapsCategoryPool(t *testing.T) {
	profile := neutralProfile()
	profile.ColorScore["navy"] = 1.0
	profile.ColorScore["mustard"] = 0.0

	cfg := DefaultConfig()
	cfg.TopKPerCategory = 1

	navyTop := poolItem("t-navy", domain.CategoryTop, "navy")
	mustardTop := poolItem("t-mustard", domain.CategoryTop, "mustard")
	pool := Pool{
		domain.CategoryTop:    {mustardTop, navyTop},
		domain.CategoryBottom: {poolItem("b1", domain.CategoryBottom, "white")},
		domain.CategoryShoes:  {poolItem("s1", domain.CategoryShoes, "white")},
	}

	candidates := Assemble(pool, profile, 1.0, cfg, rand.New(rand.NewSource(1)))

	require.Len(t, candidates, 1)
	assert.Equal(t, "t-navy", candidates[0].Items[domain.CategoryTop].ID)
}

func TestSelectDiverse_AtMostOneSharedSlotItem(t *testing.T) {
	pool := assemblePool(3, 3, 3)
	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))
	require.GreaterOrEqual(t, len(candidates), 3)

	selected := SelectDiverse(candidates, 3)

	require.Len(t, selected, 3)
	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			assert.LessOrEqual(t, sharedItems(selected[i], selected[j]), 1)
		}
	}
}

func TestSelectDiverse_BackfillsWhenDiversityRunsOut(t *testing.T) {
	// Only tops vary, so every pair shares two items. Diversity admits one,
	// backfill restores the rest by confidence.
	pool := assemblePool(4, 1, 1)
	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))
	require.Len(t, candidates, 4)

	selected := SelectDiverse(candidates, 3)

	require.Len(t, selected, 3)
	assert.Equal(t, candidates[0].Signature, selected[0].Signature)
}

func TestSelectDiverse_FewerCandidatesThanRequested(t *testing.T) {
	pool := assemblePool(1, 1, 1)
	candidates := Assemble(pool, neutralProfile(), 1.0, DefaultConfig(), rand.New(rand.NewSource(1)))

	selected := SelectDiverse(candidates, 3)
	assert.Len(t, selected, 1)
}
