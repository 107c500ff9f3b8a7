package domain

import (
	"errors"
	"time"
)

const (
	OccasionCasual   = "casual"
	OccasionBusiness = "business"
	OccasionFormal   = "formal"
	OccasionParty    = "party"
	OccasionDate     = "date"

	ActionAccept      = "accept"
	ActionReject      = "reject"
	ActionSuperAccept = "super_accept"

	ProvenanceOwned   = "owned"
	ProvenanceCatalog = "catalog"

	// Reason codes for an empty recommendation result.
	ReasonNoItemsAtAll       = "no_items_at_all"
	ReasonNoItemsForWeather  = "no_items_for_weather"
	ReasonNoItemsForOccasion = "no_items_for_occasion"
)

var (
	MessageSuccessGetOutfits      = "outfit recommendations retrieved successfully"
	MessageSuccessRecordSwipe     = "swipe recorded successfully"
	MessageSuccessGetSwipeHistory = "swipe history retrieved successfully"
	MessageSuccessGetStyleProfile = "style profile retrieved successfully"
	MessageFailedGetOutfits       = "failed to retrieve outfit recommendations"
	MessageFailedRecordSwipe      = "failed to record swipe"
	MessageFailedGetSwipeHistory  = "failed to retrieve swipe history"
	MessageFailedGetStyleProfile  = "failed to retrieve style profile"

	ErrInvalidOccasion = errors.New("invalid occasion")
	ErrInvalidAction   = errors.New("invalid swipe action")
	// ErrInvalidSwipe means the signature is not in the user's most recent
	// recommendation set. The append is refused so the log stays clean.
	ErrInvalidSwipe = errors.New("swipe signature not in current recommendation set")
)

type (
	// Item is the uniform candidate-pool record, merged from wardrobe items
	// and retailer products and tagged with provenance.
	Item struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		Color      string  `json:"color"`
		Brand      string  `json:"brand"`
		Price      float64 `json:"price,omitempty"`
		Provenance string  `json:"provenance"` // "owned" or "catalog"
		ImageURL   string  `json:"image_url,omitempty"`
		ProductURL string  `json:"product_url,omitempty"`
		Formality  string  `json:"-"`
		Conditions string  `json:"-"`
		MinTemp    float64 `json:"-"`
		MaxTemp    float64 `json:"-"`
	}

	OutfitCandidate struct {
		Items             map[string]Item `json:"items"` // slot -> item
		ColorHarmonyScore float64         `json:"color_harmony_score"`
		WeatherScore      float64         `json:"weather_score"`
		OccasionScore     float64         `json:"occasion_score"`
		PreferenceScore   float64         `json:"preference_score"`
		Confidence        float64         `json:"confidence"`
		Signature         string          `json:"signature"`
		ColorScheme       string          `json:"color_scheme"`
		DominantColor     string          `json:"dominant_color"`
	}

	RecommendOutfitsRequest struct {
		Occasion            string   `json:"occasion" validate:"required,oneof=casual business formal party date"`
		IncludeWardrobeOnly bool     `json:"include_wardrobe_only"`
		MaxResults          int      `json:"max_results" validate:"omitempty,min=1,max=10"`
		AllowedBrands       []string `json:"allowed_brands,omitempty"`
		UseWeather          *bool    `json:"use_weather"` // nil means true
	}

	RecommendOutfitsResponse struct {
		Outfits     []OutfitCandidate `json:"outfits"`
		RetailerMix map[string]int    `json:"retailer_mix,omitempty"` // provenance -> item count across results
		Reason      string            `json:"reason,omitempty"`       // set when Outfits is empty
		Weather     *Weather          `json:"weather,omitempty"`
	}

	SwipeRequest struct {
		Signature string `json:"signature" validate:"required"`
		Action    string `json:"action" validate:"required,oneof=accept reject super_accept"`
	}

	SwipeEventResponse struct {
		Signature string    `json:"signature"`
		Action    string    `json:"action"`
		Occasion  string    `json:"occasion"`
		CreatedAt time.Time `json:"created_at"`
	}

	SwipeHistoryResponse struct {
		Events []SwipeEventResponse `json:"events"`
		Total  int64                `json:"total"`
	}

	// PreferenceProfile is a derived per-user aggregate, rebuilt from the
	// swipe log at will; every score sits in [0,1] with 0.5 neutral.
	PreferenceProfile struct {
		CategoryScore map[string]float64 `json:"category_score"`
		ColorScore    map[string]float64 `json:"color_score"`
		BrandScore    map[string]float64 `json:"brand_score"`
		TotalEvents   int                `json:"total_events"`
	}
)

// ValidOccasion reports whether occasion is one of the supported values.
func ValidOccasion(occasion string) bool {
	switch occasion {
	case OccasionCasual, OccasionBusiness, OccasionFormal, OccasionParty, OccasionDate:
		return true
	}
	return false
}
