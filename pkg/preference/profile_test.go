package preference

import (
	"testing"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(dimension, facet string, likes, total int) *entities.PreferenceCounter {
	return &entities.PreferenceCounter{
		Dimension: dimension,
		Facet:     facet,
		Likes:     likes,
		Total:     total,
	}
}

func TestLikesForAction(t *testing.T) {
	likes, total := LikesForAction(domain.ActionAccept)
	assert.Equal(t, 1, likes)
	assert.Equal(t, 1, total)

	likes, total = LikesForAction(domain.ActionReject)
	assert.Equal(t, 0, likes)
	assert.Equal(t, 1, total)

	// Super-accept counts double on both sides so scores stay in [0,1].
	likes, total = LikesForAction(domain.ActionSuperAccept)
	assert.Equal(t, 2, likes)
	assert.Equal(t, 2, total)

	likes, total = LikesForAction("shrug")
	assert.Equal(t, 0, likes)
	assert.Equal(t, 0, total)
}

func TestBuildProfile_ScoresFacets(t *testing.T) {
	profile, err := BuildProfile([]*entities.PreferenceCounter{
		counter(DimensionColor, "navy", 3, 4),
		counter(DimensionCategory, "top", 1, 5),
		counter(DimensionBrand, "uniqlo", 4, 4),
	}, DefaultMinObservations)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, profile.ColorScore["navy"], 1e-9)
	assert.InDelta(t, 0.2, profile.CategoryScore["top"], 1e-9)
	assert.InDelta(t, 1.0, profile.BrandScore["uniqlo"], 1e-9)
	// Counters alone cannot count events.
	assert.Zero(t, profile.TotalEvents)
}

func TestBuildProfile_BelowMinObservationsStaysNeutral(t *testing.T) {
	profile, err := BuildProfile([]*entities.PreferenceCounter{
		counter(DimensionColor, "red", 0, 2),
	}, DefaultMinObservations)
	require.NoError(t, err)

	// Two rejects are not enough data to call red disliked.
	assert.InDelta(t, NeutralScore, profile.ColorScore["red"], 1e-9)
}

func TestBuildProfile_CorruptCounters(t *testing.T) {
	_, err := BuildProfile([]*entities.PreferenceCounter{
		counter(DimensionColor, "red", 5, 3),
	}, DefaultMinObservations)
	assert.ErrorIs(t, err, ErrCorruptCounters)

	_, err = BuildProfile([]*entities.PreferenceCounter{
		counter(DimensionColor, "red", -1, 3),
	}, DefaultMinObservations)
	assert.ErrorIs(t, err, ErrCorruptCounters)
}

func TestScoreCandidate_EmptyProfileIsNeutral(t *testing.T) {
	profile := domain.PreferenceProfile{
		CategoryScore: map[string]float64{},
		ColorScore:    map[string]float64{},
		BrandScore:    map[string]float64{},
	}
	items := []domain.Item{
		{Category: "top", Color: "navy", Brand: "uniqlo"},
		{Category: "bottom", Color: "black", Brand: ""},
	}

	assert.InDelta(t, NeutralScore, ScoreCandidate(profile, items), 1e-9)
	assert.InDelta(t, NeutralScore, ScoreCandidate(profile, nil), 1e-9)
}

func TestScoreCandidate_LikedFacetsRankHigher(t *testing.T) {
	profile := domain.PreferenceProfile{
		CategoryScore: map[string]float64{},
		ColorScore:    map[string]float64{"navy": 0.9, "mustard": 0.1},
		BrandScore:    map[string]float64{},
	}

	liked := ScoreCandidate(profile, []domain.Item{{Category: "top", Color: "navy"}})
	disliked := ScoreCandidate(profile, []domain.Item{{Category: "top", Color: "mustard"}})

	assert.Greater(t, liked, disliked)
}

func TestFacetsOf(t *testing.T) {
	facets := FacetsOf([]domain.Item{
		{Category: "top", Color: "navy", Brand: "uniqlo", Name: "tee"},
		{Category: "shoes", Color: "white", Brand: ""},
	})

	require.Len(t, facets, 2)
	assert.Equal(t, ItemFacet{Category: "top", Color: "navy", Brand: "uniqlo"}, facets[0])
	assert.Equal(t, ItemFacet{Category: "shoes", Color: "white"}, facets[1])
}
