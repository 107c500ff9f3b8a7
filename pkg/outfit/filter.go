package outfit

import (
	"strings"

	"StyleMate-Server/domain"
)

// occasionFormality maps each occasion to the formality tags it accepts.
var occasionFormality = map[string][]string{
	domain.OccasionCasual:   {"casual", "smart_casual"},
	domain.OccasionBusiness: {"business", "smart_casual"},
	domain.OccasionFormal:   {"formal", "business"},
	domain.OccasionParty:    {"casual", "smart_casual"},
	domain.OccasionDate:     {"casual", "smart_casual"},
}

// FilterPool prunes items incompatible with the current weather and occasion.
// Per-item, O(n); combinations are never inspected here. A nil weather skips
// the weather check entirely (degraded mode). Returns the filtered pool and,
// when a required slot ends up empty, the reason code explaining why.
func FilterPool(pool Pool, weather *domain.Weather, occasion string) (Pool, string) {
	filtered := Pool{}
	weatherSurvivors := map[string]int{}

	for _, category := range domain.AllCategories {
		for _, item := range pool[category] {
			if !weatherFits(item, weather) {
				continue
			}
			weatherSurvivors[category]++
			if !occasionFits(item, occasion) {
				continue
			}
			filtered[category] = append(filtered[category], item)
		}
	}

	for _, slot := range domain.RequiredSlots {
		if len(filtered[slot]) > 0 {
			continue
		}
		if len(pool[slot]) == 0 {
			return filtered, domain.ReasonNoItemsAtAll
		}
		if weatherSurvivors[slot] == 0 {
			return filtered, domain.ReasonNoItemsForWeather
		}
		return filtered, domain.ReasonNoItemsForOccasion
	}

	return filtered, ""
}

func weatherFits(item domain.Item, weather *domain.Weather) bool {
	if weather == nil {
		return true
	}
	if weather.Temperature < item.MinTemp {
		return false
	}
	// Outerwear is removable, so it stays legal above its declared range.
	if item.Category != domain.CategoryOuterwear && weather.Temperature > item.MaxTemp {
		return false
	}
	if item.Conditions != "" && !tagMatch(item.Conditions, weather.Condition) {
		return false
	}
	return true
}

func occasionFits(item domain.Item, occasion string) bool {
	allowed, ok := occasionFormality[occasion]
	if !ok {
		return false
	}
	// Untagged items are not constrained by formality.
	if item.Formality == "" {
		return true
	}
	for _, tag := range allowed {
		if tagMatch(item.Formality, tag) {
			return true
		}
	}
	return false
}

func tagMatch(tags, want string) bool {
	for _, t := range strings.Split(tags, ",") {
		if strings.TrimSpace(t) == want {
			return true
		}
	}
	return false
}
