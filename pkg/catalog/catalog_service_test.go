package catalog

import (
	"context"
	"testing"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepository struct {
	byExternalID map[string]*entities.RetailerProduct
}

func newFakeCatalogRepository() *fakeCatalogRepository {
	return &fakeCatalogRepository{byExternalID: map[string]*entities.RetailerProduct{}}
}

func (f *fakeCatalogRepository) UpsertProduct(ctx context.Context, product *entities.RetailerProduct) error {
	if existing, ok := f.byExternalID[product.ExternalID]; ok {
		product.ID = existing.ID
	}
	f.byExternalID[product.ExternalID] = product
	return nil
}

func (f *fakeCatalogRepository) GetProducts(ctx context.Context, query domain.CatalogQuery, page, limit int) ([]*entities.RetailerProduct, int64, error) {
	var out []*entities.RetailerProduct
	for _, p := range f.byExternalID {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCatalogRepository) GetProductsForPool(ctx context.Context, query domain.CatalogQuery, limit int) ([]*entities.RetailerProduct, error) {
	products, _, err := f.GetProducts(ctx, query, 1, limit)
	return products, err
}

func TestMapCategory(t *testing.T) {
	cases := map[string]string{
		"Heavy Weight Crew Neck Tee": domain.CategoryTop,
		"Slim Fit Chino":             domain.CategoryBottom,
		"Leather Chelsea Boot":       domain.CategoryShoes,
		"Wool Duffle Coat":           domain.CategoryOuterwear,
		"Woven Leather Belt":         domain.CategoryAccessory,
		"Completely Unrecognisable":  domain.CategoryTop, // fallback
	}
	for name, want := range cases {
		assert.Equal(t, want, MapCategory(name), "name %q", name)
	}
}

func TestMapCategory_LongestMatchWins(t *testing.T) {
	// "overshirt" contains "shirt"; the longer keyword decides the category.
	assert.Equal(t, domain.CategoryOuterwear, MapCategory("Wool Overshirt"))
}

func TestMapCategory_TieBreaksByGroupOrder(t *testing.T) {
	// "sweat" and "short" are equal-length matches; group order decides.
	assert.Equal(t, domain.CategoryTop, MapCategory("Sweat Short"))
}

func TestExternalID_StablePerURL(t *testing.T) {
	a := ExternalID("https://example.com/p/1")
	b := ExternalID("https://example.com/p/1")
	c := ExternalID("https://example.com/p/2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}

func TestIngestProducts_DerivesCategoryAndDefaults(t *testing.T) {
	repo := newFakeCatalogRepository()
	svc := NewCatalogService(repo)

	res, err := svc.IngestProducts(context.Background(), domain.IngestProductsRequest{
		Products: []domain.ScrapedProduct{{
			Name:       "Wool Overshirt",
			Brand:      "Country Road",
			Price:      199,
			ImageURL:   "https://cdn.example.com/overshirt.jpg",
			ProductURL: "https://example.com/p/overshirt",
			Color:      " Navy ",
			Retailer:   domain.Retailer{ID: "cr", Name: "Country Road"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Ingested)

	stored := repo.byExternalID[ExternalID("https://example.com/p/overshirt")]
	require.NotNil(t, stored)
	assert.Equal(t, domain.CategoryOuterwear, stored.Category)
	assert.Equal(t, "navy", stored.Color)
	assert.InDelta(t, -10, stored.MinTemp, 1e-9)
	assert.InDelta(t, 18, stored.MaxTemp, 1e-9)
	assert.Equal(t, "cr", stored.RetailerID)
}

func TestIngestProducts_ExplicitCategoryWins(t *testing.T) {
	repo := newFakeCatalogRepository()
	svc := NewCatalogService(repo)

	_, err := svc.IngestProducts(context.Background(), domain.IngestProductsRequest{
		Products: []domain.ScrapedProduct{{
			Name:       "Oddly Named Jacket",
			Brand:      "Country Road",
			Price:      99,
			ImageURL:   "https://cdn.example.com/x.jpg",
			ProductURL: "https://example.com/p/x",
			Category:   domain.CategoryShoes,
			Retailer:   domain.Retailer{ID: "cr", Name: "Country Road"},
		}},
	})
	require.NoError(t, err)

	stored := repo.byExternalID[ExternalID("https://example.com/p/x")]
	require.NotNil(t, stored)
	assert.Equal(t, domain.CategoryShoes, stored.Category)
}

func TestIngestProducts_RescrapeKeepsIdentity(t *testing.T) {
	repo := newFakeCatalogRepository()
	svc := NewCatalogService(repo)

	product := domain.ScrapedProduct{
		Name:       "Crew Neck Tee",
		Brand:      "Country Road",
		Price:      49,
		ImageURL:   "https://cdn.example.com/tee.jpg",
		ProductURL: "https://example.com/p/tee",
		Retailer:   domain.Retailer{ID: "cr", Name: "Country Road"},
	}

	_, err := svc.IngestProducts(context.Background(), domain.IngestProductsRequest{Products: []domain.ScrapedProduct{product}})
	require.NoError(t, err)
	firstID := repo.byExternalID[ExternalID(product.ProductURL)].ID

	product.Price = 39 // price drop on re-scrape
	_, err = svc.IngestProducts(context.Background(), domain.IngestProductsRequest{Products: []domain.ScrapedProduct{product}})
	require.NoError(t, err)

	stored := repo.byExternalID[ExternalID(product.ProductURL)]
	assert.Equal(t, firstID, stored.ID)
	assert.InDelta(t, 39, stored.Price, 1e-9)
	assert.Len(t, repo.byExternalID, 1)
}

func TestIngestProducts_EmptyBatch(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogRepository())

	_, err := svc.IngestProducts(context.Background(), domain.IngestProductsRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyIngestBatch)
}

func TestFormalityFor(t *testing.T) {
	assert.Equal(t, "business,smart_casual", formalityFor("Tailored Suit Trouser"))
	assert.Equal(t, "casual,smart_casual", formalityFor("Crew Neck Tee"))
}
