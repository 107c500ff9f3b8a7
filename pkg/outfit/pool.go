package outfit

import (
	"strings"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"
)

// Pool holds the candidate items partitioned by category.
type Pool map[string][]domain.Item

type PoolOptions struct {
	IncludeCatalog bool
	AllowedBrands  []string
}

// BuildPool merges owned wardrobe items and retailer products into a uniform
// candidate pool tagged with provenance. Pure merge; an empty result is a
// valid pool, not an error.
func BuildPool(owned []*entities.WardrobeItem, products []*entities.RetailerProduct, opts PoolOptions) Pool {
	pool := Pool{}
	allowed := brandSet(opts.AllowedBrands)

	for _, w := range owned {
		if w.IsDeleted {
			continue
		}
		item := itemFromWardrobe(w)
		if !brandAllowed(allowed, item.Brand) || !validCategory(item.Category) {
			continue
		}
		pool[item.Category] = append(pool[item.Category], item)
	}

	if opts.IncludeCatalog {
		for _, p := range products {
			item := itemFromProduct(p)
			if !brandAllowed(allowed, item.Brand) || !validCategory(item.Category) {
				continue
			}
			pool[item.Category] = append(pool[item.Category], item)
		}
	}

	return pool
}

func itemFromWardrobe(w *entities.WardrobeItem) domain.Item {
	return domain.Item{
		ID:         w.ID.String(),
		Name:       w.Name,
		Category:   w.Category,
		Color:      w.Color,
		Brand:      w.Brand,
		Price:      w.Price,
		Provenance: domain.ProvenanceOwned,
		ImageURL:   w.ImageURL,
		Formality:  w.Formality,
		Conditions: w.Conditions,
		MinTemp:    w.MinTemp,
		MaxTemp:    w.MaxTemp,
	}
}

func itemFromProduct(p *entities.RetailerProduct) domain.Item {
	return domain.Item{
		ID:         p.ID.String(),
		Name:       p.Name,
		Category:   p.Category,
		Color:      p.Color,
		Brand:      p.Brand,
		Price:      p.Price,
		Provenance: domain.ProvenanceCatalog,
		ImageURL:   p.ImageURL,
		ProductURL: p.ProductURL,
		Formality:  p.Formality,
		Conditions: p.Conditions,
		MinTemp:    p.MinTemp,
		MaxTemp:    p.MaxTemp,
	}
}

func brandSet(brands []string) map[string]bool {
	if len(brands) == 0 {
		return nil
	}
	set := make(map[string]bool, len(brands))
	for _, b := range brands {
		set[strings.ToLower(strings.TrimSpace(b))] = true
	}
	return set
}

func brandAllowed(allowed map[string]bool, brand string) bool {
	if allowed == nil {
		return true
	}
	return allowed[strings.ToLower(strings.TrimSpace(brand))]
}

func validCategory(category string) bool {
	for _, c := range domain.AllCategories {
		if c == category {
			return true
		}
	}
	return false
}
