package outfit

import (
	"testing"

	"StyleMate-Server/domain"

	"github.com/stretchr/testify/assert"
)

func poolItem(id, category, color string) domain.Item {
	return domain.Item{
		ID:         id,
		Name:       id,
		Category:   category,
		Color:      color,
		Provenance: domain.ProvenanceOwned,
		Formality:  "casual",
		Conditions: "clear,cloudy,rain",
		MinTemp:    -10,
		MaxTemp:    40,
	}
}

func basicPool() Pool {
	return Pool{
		domain.CategoryTop:    {poolItem("t1", domain.CategoryTop, "navy")},
		domain.CategoryBottom: {poolItem("b1", domain.CategoryBottom, "white")},
		domain.CategoryShoes:  {poolItem("s1", domain.CategoryShoes, "white")},
	}
}

func TestFilterPool_NilWeatherSkipsWeatherCheck(t *testing.T) {
	pool := basicPool()
	pool[domain.CategoryTop][0].MaxTemp = 5 // would fail any warm day

	filtered, reason := FilterPool(pool, nil, domain.OccasionCasual)

	assert.Empty(t, reason)
	assert.Len(t, filtered[domain.CategoryTop], 1)
}

func TestFilterPool_HeatExcludesAllTops(t *testing.T) {
	pool := basicPool()
	pool[domain.CategoryTop][0].MaxTemp = 25

	_, reason := FilterPool(pool, &domain.Weather{Temperature: 32, Condition: domain.ConditionClear}, domain.OccasionCasual)

	assert.Equal(t, domain.ReasonNoItemsForWeather, reason)
}

func TestFilterPool_OuterwearExemptFromMaxTemp(t *testing.T) {
	pool := basicPool()
	coat := poolItem("o1", domain.CategoryOuterwear, "black")
	coat.MaxTemp = 10
	pool[domain.CategoryOuterwear] = []domain.Item{coat}

	filtered, reason := FilterPool(pool, &domain.Weather{Temperature: 22, Condition: domain.ConditionClear}, domain.OccasionCasual)

	assert.Empty(t, reason)
	// Removable layer: staying above its range is fine, below is not.
	assert.Len(t, filtered[domain.CategoryOuterwear], 1)

	coat.MinTemp = 25
	pool[domain.CategoryOuterwear] = []domain.Item{coat}
	filtered, reason = FilterPool(pool, &domain.Weather{Temperature: 22, Condition: domain.ConditionClear}, domain.OccasionCasual)
	assert.Empty(t, reason)
	assert.Empty(t, filtered[domain.CategoryOuterwear])
}

func TestFilterPool_ConditionTags(t *testing.T) {
	pool := basicPool()
	pool[domain.CategoryShoes][0].Conditions = "clear,cloudy"

	_, reason := FilterPool(pool, &domain.Weather{Temperature: 15, Condition: domain.ConditionRain}, domain.OccasionCasual)

	assert.Equal(t, domain.ReasonNoItemsForWeather, reason)
}

func TestFilterPool_OccasionFormality(t *testing.T) {
	pool := basicPool()
	for _, items := range pool {
		items[0].Formality = "casual"
	}

	_, reason := FilterPool(pool, nil, domain.OccasionBusiness)
	assert.Equal(t, domain.ReasonNoItemsForOccasion, reason)

	pool[domain.CategoryTop][0].Formality = "smart_casual,casual"
	pool[domain.CategoryBottom][0].Formality = "business"
	pool[domain.CategoryShoes][0].Formality = "smart_casual"
	filtered, reason := FilterPool(pool, nil, domain.OccasionBusiness)
	assert.Empty(t, reason)
	for _, slot := range domain.RequiredSlots {
		assert.Len(t, filtered[slot], 1)
	}
}

func TestFilterPool_UntaggedFormalityUnconstrained(t *testing.T) {
	pool := basicPool()
	for _, items := range pool {
		items[0].Formality = ""
	}

	_, reason := FilterPool(pool, nil, domain.OccasionFormal)
	assert.Empty(t, reason)
}

func TestFilterPool_EmptyPool(t *testing.T) {
	_, reason := FilterPool(Pool{}, nil, domain.OccasionCasual)
	assert.Equal(t, domain.ReasonNoItemsAtAll, reason)
}

func TestFilterPool_WeatherReasonWinsOverOccasion(t *testing.T) {
	pool := basicPool()
	pool[domain.CategoryTop][0].MaxTemp = 20
	pool[domain.CategoryTop][0].Formality = "formal"

	// The top fails both checks; weather is reported because nothing in the
	// slot even survived the weather pass.
	_, reason := FilterPool(pool, &domain.Weather{Temperature: 30, Condition: domain.ConditionClear}, domain.OccasionCasual)
	assert.Equal(t, domain.ReasonNoItemsForWeather, reason)
}
