package outfit

import (
	"time"
)

// Weights blend the component scores into a candidate's confidence. They are
// tuning knobs, not fixed truths.
type Weights struct {
	Harmony    float64
	Preference float64
	Weather    float64
	Occasion   float64
}

type Config struct {
	// TopKPerCategory caps each category pool before enumeration.
	TopKPerCategory int
	// MaxCombinations bounds the cross-product; beyond it, combinations are
	// sampled uniformly at random instead of enumerated.
	MaxCombinations int
	// DefaultMaxResults is used when the request does not set max_results.
	DefaultMaxResults int
	// RejectCooldown suppresses recently rejected signatures.
	RejectCooldown time.Duration
	// CatalogPoolLimit caps the catalog contribution to one pool build.
	CatalogPoolLimit int
	Weights          Weights
}

func DefaultConfig() Config {
	return Config{
		TopKPerCategory:   6,
		MaxCombinations:   500,
		DefaultMaxResults: 3,
		RejectCooldown:    14 * 24 * time.Hour,
		CatalogPoolLimit:  200,
		Weights: Weights{
			Harmony:    0.35,
			Preference: 0.25,
			Weather:    0.25,
			Occasion:   0.15,
		},
	}
}
