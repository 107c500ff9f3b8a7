package preference

import (
	"errors"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"
)

const (
	DimensionCategory = "category"
	DimensionColor    = "color"
	DimensionBrand    = "brand"

	// NeutralScore is the score for facets with too little data and for users
	// with no history at all; ranking degrades to weather/occasion/harmony.
	NeutralScore = 0.5

	DefaultMinObservations = 3
)

var ErrCorruptCounters = errors.New("preference counters inconsistent")

// ItemFacet is the per-item slice of a swipe that the learner cares about.
// Snapshots of these are stored on each SwipeEvent so the full log replay
// stays possible after the counters are lost.
type ItemFacet struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Brand    string `json:"brand"`
}

// FacetsOf extracts the learner-relevant facets from a candidate's items.
func FacetsOf(items []domain.Item) []ItemFacet {
	facets := make([]ItemFacet, 0, len(items))
	for _, it := range items {
		facets = append(facets, ItemFacet{
			Category: it.Category,
			Color:    it.Color,
			Brand:    it.Brand,
		})
	}
	return facets
}

// LikesForAction maps a swipe action to its (likes, observations) increment.
// A super-accept counts double on both sides so every score stays in [0,1].
func LikesForAction(action string) (likes int, total int) {
	switch action {
	case domain.ActionAccept:
		return 1, 1
	case domain.ActionSuperAccept:
		return 2, 2
	case domain.ActionReject:
		return 0, 1
	}
	return 0, 0
}

// BuildProfile turns raw counters into a PreferenceProfile. Facets below the
// minimum observation count stay neutral to avoid overfitting sparse data.
// Returns ErrCorruptCounters when any counter fails the consistency check.
// TotalEvents is left zero; counters cannot tell events apart, so the caller
// fills it from the swipe log.
func BuildProfile(counters []*entities.PreferenceCounter, minObservations int) (domain.PreferenceProfile, error) {
	profile := domain.PreferenceProfile{
		CategoryScore: map[string]float64{},
		ColorScore:    map[string]float64{},
		BrandScore:    map[string]float64{},
	}

	for _, c := range counters {
		if c.Likes < 0 || c.Total < 0 || c.Likes > c.Total {
			return domain.PreferenceProfile{}, ErrCorruptCounters
		}

		score := NeutralScore
		if c.Total >= minObservations {
			score = float64(c.Likes) / float64(c.Total)
		}

		switch c.Dimension {
		case DimensionCategory:
			profile.CategoryScore[c.Facet] = score
		case DimensionColor:
			profile.ColorScore[c.Facet] = score
		case DimensionBrand:
			profile.BrandScore[c.Facet] = score
		}
	}
	return profile, nil
}

// ScoreCandidate averages the category, color and brand scores of the
// candidate's items independently, then combines the three dimensions with
// equal weight. Unseen facets score neutral.
func ScoreCandidate(profile domain.PreferenceProfile, items []domain.Item) float64 {
	if len(items) == 0 {
		return NeutralScore
	}

	var categorySum, colorSum, brandSum float64
	for _, it := range items {
		categorySum += scoreOrNeutral(profile.CategoryScore, it.Category)
		colorSum += scoreOrNeutral(profile.ColorScore, it.Color)
		brandSum += scoreOrNeutral(profile.BrandScore, it.Brand)
	}

	n := float64(len(items))
	return (categorySum/n + colorSum/n + brandSum/n) / 3
}

func scoreOrNeutral(scores map[string]float64, facet string) float64 {
	if s, ok := scores[facet]; ok {
		return s
	}
	return NeutralScore
}
