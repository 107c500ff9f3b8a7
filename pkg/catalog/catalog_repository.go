package catalog

import (
	"context"
	"errors"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		UpsertProduct(ctx context.Context, product *entities.RetailerProduct) error
		GetProducts(ctx context.Context, query domain.CatalogQuery, page, limit int) ([]*entities.RetailerProduct, int64, error)
		GetProductsForPool(ctx context.Context, query domain.CatalogQuery, limit int) ([]*entities.RetailerProduct, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) UpsertProduct(ctx context.Context, product *entities.RetailerProduct) error {
	var existing entities.RetailerProduct
	err := r.db.WithContext(ctx).
		Where("external_id = ?", product.ExternalID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(product).Error
	}
	if err != nil {
		return err
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *catalogRepository) GetProducts(ctx context.Context, query domain.CatalogQuery, page, limit int) ([]*entities.RetailerProduct, int64, error) {
	var products []*entities.RetailerProduct
	var count int64
	offset := (page - 1) * limit

	q := r.applyFilters(r.db.WithContext(ctx).Model(&entities.RetailerProduct{}), query)

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := q.
		Offset(offset).
		Limit(limit).
		Order("scraped_at desc").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *catalogRepository) GetProductsForPool(ctx context.Context, query domain.CatalogQuery, limit int) ([]*entities.RetailerProduct, error) {
	var products []*entities.RetailerProduct
	if err := r.applyFilters(r.db.WithContext(ctx), query).
		Limit(limit).
		Order("scraped_at desc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) applyFilters(q *gorm.DB, query domain.CatalogQuery) *gorm.DB {
	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	if query.Brand != "" {
		q = q.Where("brand = ?", query.Brand)
	}
	if query.MaxPrice > 0 {
		q = q.Where("price <= ?", query.MaxPrice)
	}
	return q
}
