package outfit

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"sort"
	"strings"

	"StyleMate-Server/domain"
	"StyleMate-Server/pkg/colorwheel"
	"StyleMate-Server/pkg/preference"
)

// slotOrder fixes the enumeration order: required slots first, then optional.
var slotOrder = []string{
	domain.CategoryTop,
	domain.CategoryBottom,
	domain.CategoryShoes,
	domain.CategoryOuterwear,
	domain.CategoryAccessory,
}

// Signature is the stable hash of a candidate's exact item set, used for
// deduplication and for correlating swipes back to what was shown.
func Signature(items map[string]domain.Item) string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Provenance+":"+it.ID)
	}
	sort.Strings(ids)
	sum := sha256.Sum256([]byte(strings.Join(ids, "|")))
	return hex.EncodeToString(sum[:])
}

// Assemble enumerates slot combinations over the filtered pool, scores each
// candidate and returns them deduplicated, sorted by confidence descending.
// weatherScore is 1.0 when items passed a real weather check and 0.5 in
// degraded mode. Deterministic unless the combination cap forces sampling.
func Assemble(pool Pool, profile domain.PreferenceProfile, weatherScore float64, cfg Config, rng *rand.Rand) []domain.OutfitCandidate {
	slots := make([][]*domain.Item, len(slotOrder))
	total := 1
	for i, slot := range slotOrder {
		items := capByPreference(pool[slot], profile, cfg.TopKPerCategory)
		options := make([]*domain.Item, 0, len(items)+1)
		if isOptionalSlot(slot) {
			options = append(options, nil) // absent
		} else if len(items) == 0 {
			return nil
		}
		for idx := range items {
			options = append(options, &items[idx])
		}
		slots[i] = options
		total *= len(options)
	}

	seen := map[string]bool{}
	var candidates []domain.OutfitCandidate

	emit := func(pick []*domain.Item) {
		c, ok := buildCandidate(pick, profile, weatherScore, cfg.Weights)
		if !ok || seen[c.Signature] {
			return
		}
		seen[c.Signature] = true
		candidates = append(candidates, c)
	}

	if total <= cfg.MaxCombinations {
		enumerate(slots, make([]*domain.Item, len(slots)), 0, emit)
	} else {
		// Too many combinations to walk; sample uniformly instead.
		pick := make([]*domain.Item, len(slots))
		for i := 0; i < cfg.MaxCombinations; i++ {
			for j, options := range slots {
				pick[j] = options[rng.Intn(len(options))]
			}
			emit(pick)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return candidates
}

// SelectDiverse greedily picks up to n candidates such that no two share more
// than one slot-item, then backfills by confidence when diversity alone
// cannot reach n.
func SelectDiverse(candidates []domain.OutfitCandidate, n int) []domain.OutfitCandidate {
	if n <= 0 {
		return nil
	}

	var selected, skipped []domain.OutfitCandidate
	for _, c := range candidates {
		if len(selected) == n {
			break
		}
		diverse := true
		for _, s := range selected {
			if sharedItems(c, s) > 1 {
				diverse = false
				break
			}
		}
		if diverse {
			selected = append(selected, c)
		} else {
			skipped = append(skipped, c)
		}
	}
	for _, c := range skipped {
		if len(selected) == n {
			break
		}
		selected = append(selected, c)
	}
	return selected
}

// capByPreference keeps the top-k items of one category by per-item
// preference score, stable so equal scores keep pool order.
func capByPreference(items []domain.Item, profile domain.PreferenceProfile, k int) []domain.Item {
	if len(items) <= k {
		return items
	}
	ranked := append([]domain.Item(nil), items...)
	sort.SliceStable(ranked, func(i, j int) bool {
		si := preference.ScoreCandidate(profile, ranked[i:i+1])
		sj := preference.ScoreCandidate(profile, ranked[j:j+1])
		return si > sj
	})
	return ranked[:k]
}

func enumerate(slots [][]*domain.Item, pick []*domain.Item, depth int, emit func([]*domain.Item)) {
	if depth == len(slots) {
		emit(pick)
		return
	}
	for _, option := range slots[depth] {
		pick[depth] = option
		enumerate(slots, pick, depth+1, emit)
	}
}

func buildCandidate(pick []*domain.Item, profile domain.PreferenceProfile, weatherScore float64, w Weights) (domain.OutfitCandidate, bool) {
	items := map[string]domain.Item{}
	var list []domain.Item
	var colors []string
	used := map[string]bool{}

	for i, slot := range slotOrder {
		it := pick[i]
		if it == nil {
			continue
		}
		key := it.Provenance + ":" + it.ID
		if used[key] {
			return domain.OutfitCandidate{}, false
		}
		used[key] = true
		items[slot] = *it
		list = append(list, *it)
		colors = append(colors, it.Color)
	}

	harmony := colorwheel.Classify(colors)
	prefScore := preference.ScoreCandidate(profile, list)
	occasionScore := 1.0

	confidence := w.Harmony*harmony.Score +
		w.Preference*prefScore +
		w.Weather*weatherScore +
		w.Occasion*occasionScore
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0 {
		confidence = 0
	}

	return domain.OutfitCandidate{
		Items:             items,
		ColorHarmonyScore: harmony.Score,
		WeatherScore:      weatherScore,
		OccasionScore:     occasionScore,
		PreferenceScore:   prefScore,
		Confidence:        confidence,
		Signature:         Signature(items),
		ColorScheme:       harmony.Scheme,
		DominantColor:     harmony.DominantColor,
	}, true
}

func sharedItems(a, b domain.OutfitCandidate) int {
	shared := 0
	for slot, it := range a.Items {
		if other, ok := b.Items[slot]; ok && other.ID == it.ID && other.Provenance == it.Provenance {
			shared++
		}
	}
	return shared
}

func isOptionalSlot(slot string) bool {
	for _, s := range domain.OptionalSlots {
		if s == slot {
			return true
		}
	}
	return false
}
