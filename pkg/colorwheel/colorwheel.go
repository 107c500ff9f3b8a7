package colorwheel

import (
	"sort"
	"strings"
)

const (
	SchemeMonochromatic = "monochromatic"
	SchemeComplementary = "complementary"
	SchemeAnalogous     = "analogous"
	SchemeNone          = "none"
)

const (
	monochromaticScore = 0.9
	complementaryScore = 0.85
	analogousScore     = 0.8
	discordantScore    = 0.4
	neutralBonus       = 0.05

	monochromaticArc = 15.0
	analogousArc     = 60.0
	clusterArc       = 20.0
)

// Rule is one row of the static color-wheel table: hue position, the color it
// pairs against, and its wheel neighbours. Neutrals carry no hue of their own
// and dampen clashes instead of creating them.
type Rule struct {
	Hue           float64  `json:"hue"`
	Complementary string   `json:"complementary"`
	Analogous     []string `json:"analogous"`
	Neutral       bool     `json:"neutral"`
}

// wheel is loaded once per process and never mutated. Complementary entries
// follow styling pairings rather than strict optics where the two disagree
// (navy pairs with white, not orange).
var wheel = map[string]Rule{
	"red":      {Hue: 0, Complementary: "green", Analogous: []string{"burgundy", "orange", "pink"}},
	"burgundy": {Hue: 345, Complementary: "green", Analogous: []string{"red", "pink"}},
	"pink":     {Hue: 330, Complementary: "green", Analogous: []string{"burgundy", "red"}},
	"orange":   {Hue: 25, Complementary: "blue", Analogous: []string{"red", "mustard"}},
	"mustard":  {Hue: 45, Complementary: "navy", Analogous: []string{"orange", "yellow"}},
	"yellow":   {Hue: 60, Complementary: "purple", Analogous: []string{"mustard", "olive"}},
	"olive":    {Hue: 80, Complementary: "purple", Analogous: []string{"yellow", "green"}},
	"green":    {Hue: 120, Complementary: "red", Analogous: []string{"olive", "teal"}},
	"teal":     {Hue: 175, Complementary: "red", Analogous: []string{"green", "blue"}},
	"blue":     {Hue: 220, Complementary: "orange", Analogous: []string{"teal", "navy"}},
	"denim":    {Hue: 220, Complementary: "orange", Analogous: []string{"blue", "navy"}},
	"navy":     {Hue: 220, Complementary: "white", Analogous: []string{"blue", "purple"}},
	"lavender": {Hue: 275, Complementary: "yellow", Analogous: []string{"purple", "pink"}},
	"purple":   {Hue: 280, Complementary: "yellow", Analogous: []string{"lavender", "navy"}},

	"white":    {Neutral: true},
	"ivory":    {Neutral: true},
	"cream":    {Neutral: true},
	"beige":    {Neutral: true},
	"tan":      {Neutral: true},
	"khaki":    {Neutral: true},
	"brown":    {Neutral: true},
	"grey":     {Neutral: true},
	"gray":     {Neutral: true},
	"charcoal": {Neutral: true},
	"black":    {Neutral: true},
}

// Harmony is the classification result for one candidate's colors.
type Harmony struct {
	Scheme        string  `json:"scheme"`
	Score         float64 `json:"score"`
	DominantColor string  `json:"dominant_color"`
}

// colorCount is a distinct color in first-seen order with its item count.
type colorCount struct {
	color string
	count int
}

// Lookup returns the table rule for a color name. Unknown colors fall back to
// a neutral rule so an odd tag can never make a palette clash.
func Lookup(color string) Rule {
	if r, ok := wheel[normalize(color)]; ok {
		return r
	}
	return Rule{Neutral: true}
}

// Classify scores the color combination of one candidate outfit. It is pure:
// identical input always yields an identical result.
func Classify(colors []string) Harmony {
	if len(colors) == 0 {
		return Harmony{Scheme: SchemeNone, Score: discordantScore}
	}

	var order []colorCount
	counts := make(map[string]int, len(colors))
	var chromaticHues []float64
	neutralCount := 0

	for _, c := range colors {
		name := normalize(c)
		if counts[name] == 0 {
			order = append(order, colorCount{color: name})
		}
		counts[name]++

		rule := Lookup(name)
		if rule.Neutral {
			neutralCount++
		} else {
			chromaticHues = append(chromaticHues, rule.Hue)
		}
	}
	for i := range order {
		order[i].count = counts[order[i].color]
	}

	dominant := order[0].color
	for _, s := range order[1:] {
		if s.count > counts[dominant] {
			dominant = s.color
		}
	}

	scheme, pairedNeutrals := classifyScheme(order, chromaticHues)
	bonus := float64(neutralCount-pairedNeutrals) * neutralBonus

	score := baseScore(scheme) + bonus
	if score > 1.0 {
		score = 1.0
	}
	return Harmony{Scheme: scheme, Score: score, DominantColor: dominant}
}

// classifyScheme returns the palette scheme and how many neutral items belong
// to the scheme pair itself (those do not also earn the neutral bonus).
func classifyScheme(order []colorCount, hues []float64) (string, int) {
	// Two distinct colors listed as each other's pair in the table classify as
	// complementary even when one of them is a neutral (navy/white).
	if len(order) == 2 {
		a, b := order[0], order[1]
		if Lookup(a.color).Complementary == b.color || Lookup(b.color).Complementary == a.color {
			paired := 0
			if Lookup(a.color).Neutral {
				paired += a.count
			}
			if Lookup(b.color).Neutral {
				paired += b.count
			}
			return SchemeComplementary, paired
		}
	}

	if len(hues) == 0 {
		// All-neutral palette; nothing can clash.
		return SchemeMonochromatic, 0
	}

	arc := coveringArc(hues)
	if arc <= monochromaticArc {
		return SchemeMonochromatic, 0
	}
	if twoOpposingClusters(hues) {
		return SchemeComplementary, 0
	}
	if arc <= analogousArc {
		return SchemeAnalogous, 0
	}
	return SchemeNone, 0
}

func baseScore(scheme string) float64 {
	switch scheme {
	case SchemeMonochromatic:
		return monochromaticScore
	case SchemeComplementary:
		return complementaryScore
	case SchemeAnalogous:
		return analogousScore
	}
	return discordantScore
}

// coveringArc returns the smallest hue arc containing every hue.
func coveringArc(hues []float64) float64 {
	if len(hues) < 2 {
		return 0
	}
	sorted := append([]float64(nil), hues...)
	sort.Float64s(sorted)

	maxGap := 360 - sorted[len(sorted)-1] + sorted[0]
	for i := 1; i < len(sorted); i++ {
		if gap := sorted[i] - sorted[i-1]; gap > maxGap {
			maxGap = gap
		}
	}
	return 360 - maxGap
}

// twoOpposingClusters reports whether the hues split into exactly two tight
// groups sitting roughly opposite on the wheel (180 degrees, 20 tolerance).
func twoOpposingClusters(hues []float64) bool {
	var groupA, groupB []float64
	groupA = append(groupA, hues[0])
	for _, h := range hues[1:] {
		switch {
		case hueDistance(h, groupA[0]) <= clusterArc:
			groupA = append(groupA, h)
		case len(groupB) == 0 || hueDistance(h, groupB[0]) <= clusterArc:
			groupB = append(groupB, h)
		default:
			return false
		}
	}
	if len(groupB) == 0 {
		return false
	}
	d := hueDistance(mean(groupA), mean(groupB))
	return d >= 180-clusterArc && d <= 180+clusterArc
}

func hueDistance(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func normalize(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}
