package catalog

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"

	"github.com/google/uuid"
)

// categoryKeywords maps product-name keywords to clothing categories. Scraped
// products arrive with no category tag; the longest matching keyword wins so
// "overshirt" beats "shirt", equal-length matches fall to group order, and
// anything unmatched defaults to "top".
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{domain.CategoryTop, []string{"shirt", "t-shirt", "tee", "polo", "knit", "sweat", "jumper", "crew", "henley", "singlet", "tank", "top"}},
	{domain.CategoryBottom, []string{"pant", "pants", "jean", "short", "trouser", "chino", "track", "jogger", "suit"}},
	{domain.CategoryShoes, []string{"shoe", "sneaker", "boot", "loafer", "slide", "thong"}},
	{domain.CategoryOuterwear, []string{"jacket", "coat", "blazer", "overshirt", "duffle"}},
	{domain.CategoryAccessory, []string{"belt", "bag", "wallet", "tie", "sock", "scarf", "hat"}},
}

var businessKeywords = []string{"suit", "blazer", "business", "trouser"}

// Catalog items carry no declared tolerances, so each category gets a
// sensible default range.
var categoryDefaults = map[string]struct {
	minTemp, maxTemp float64
	conditions       string
}{
	domain.CategoryTop:       {8, 32, "clear,cloudy"},
	domain.CategoryBottom:    {0, 30, "clear,cloudy,rain"},
	domain.CategoryOuterwear: {-10, 18, "clear,cloudy,rain,snow"},
	domain.CategoryShoes:     {-5, 35, "clear,cloudy"},
	domain.CategoryAccessory: {-10, 40, "clear,cloudy,rain,snow"},
}

type (
	CatalogService interface {
		IngestProducts(ctx context.Context, req domain.IngestProductsRequest) (domain.IngestProductsResponse, error)
		GetProducts(ctx context.Context, query domain.CatalogQuery, page, limit int) ([]domain.CatalogProductResponse, int64, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) IngestProducts(ctx context.Context, req domain.IngestProductsRequest) (domain.IngestProductsResponse, error) {
	if len(req.Products) == 0 {
		return domain.IngestProductsResponse{}, domain.ErrEmptyIngestBatch
	}

	ingested := 0
	now := time.Now()
	for _, p := range req.Products {
		category := p.Category
		if category == "" {
			category = MapCategory(p.Name)
		}
		defaults := categoryDefaults[category]

		product := entities.RetailerProduct{
			ID:           uuid.New(),
			ExternalID:   ExternalID(p.ProductURL),
			Name:         p.Name,
			Brand:        p.Brand,
			Price:        p.Price,
			ImageURL:     p.ImageURL,
			ProductURL:   p.ProductURL,
			Category:     category,
			Color:        strings.ToLower(strings.TrimSpace(p.Color)),
			Formality:    formalityFor(p.Name),
			Conditions:   defaults.conditions,
			MinTemp:      defaults.minTemp,
			MaxTemp:      defaults.maxTemp,
			RetailerID:   p.Retailer.ID,
			RetailerName: p.Retailer.Name,
			ScrapedAt:    now,
		}

		if err := s.catalogRepository.UpsertProduct(ctx, &product); err != nil {
			return domain.IngestProductsResponse{}, err
		}
		ingested++
	}

	return domain.IngestProductsResponse{Ingested: ingested}, nil
}

func (s *catalogService) GetProducts(ctx context.Context, query domain.CatalogQuery, page, limit int) ([]domain.CatalogProductResponse, int64, error) {
	products, count, err := s.catalogRepository.GetProducts(ctx, query, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.CatalogProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, domain.CatalogProductResponse{
			ID:         p.ID.String(),
			Name:       p.Name,
			Brand:      p.Brand,
			Price:      p.Price,
			ImageURL:   p.ImageURL,
			ProductURL: p.ProductURL,
			Category:   p.Category,
			Color:      p.Color,
			Retailer:   domain.Retailer{ID: p.RetailerID, Name: p.RetailerName},
			ScrapedAt:  p.ScrapedAt,
		})
	}
	return result, count, nil
}

// MapCategory derives the clothing category from keywords in a product name.
// Longest match wins across all groups.
func MapCategory(name string) string {
	lower := strings.ToLower(name)
	best := domain.CategoryTop
	bestLen := 0
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if len(kw) > bestLen && strings.Contains(lower, kw) {
				best = group.category
				bestLen = len(kw)
			}
		}
	}
	return best
}

// ExternalID is the stable upsert key for a scraped product.
func ExternalID(productURL string) string {
	sum := md5.Sum([]byte(productURL))
	return hex.EncodeToString(sum[:])
}

func formalityFor(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range businessKeywords {
		if strings.Contains(lower, kw) {
			return "business,smart_casual"
		}
	}
	return "casual,smart_casual"
}
