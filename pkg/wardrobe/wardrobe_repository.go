package wardrobe

import (
	"context"

	"StyleMate-Server/entities"

	"gorm.io/gorm"
)

type (
	WardrobeRepository interface {
		CreateItem(ctx context.Context, item *entities.WardrobeItem) error
		GetItemByID(ctx context.Context, id string) (*entities.WardrobeItem, error)
		GetActiveItems(ctx context.Context, userID string) ([]*entities.WardrobeItem, error)
		GetItems(ctx context.Context, userID, category string, page, limit int) ([]*entities.WardrobeItem, int64, error)
		UpdateItem(ctx context.Context, item *entities.WardrobeItem) error
		SoftDeleteItem(ctx context.Context, item *entities.WardrobeItem) error
	}

	wardrobeRepository struct {
		db *gorm.DB
	}
)

func NewWardrobeRepository(db *gorm.DB) WardrobeRepository {
	return &wardrobeRepository{db: db}
}

func (r *wardrobeRepository) CreateItem(ctx context.Context, item *entities.WardrobeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wardrobeRepository) GetItemByID(ctx context.Context, id string) (*entities.WardrobeItem, error) {
	var item entities.WardrobeItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wardrobeRepository) GetActiveItems(ctx context.Context, userID string) ([]*entities.WardrobeItem, error) {
	var items []*entities.WardrobeItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wardrobeRepository) GetItems(ctx context.Context, userID, category string, page, limit int) ([]*entities.WardrobeItem, int64, error) {
	var items []*entities.WardrobeItem
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.WardrobeItem{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *wardrobeRepository) UpdateItem(ctx context.Context, item *entities.WardrobeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *wardrobeRepository) SoftDeleteItem(ctx context.Context, item *entities.WardrobeItem) error {
	item.IsDeleted = true
	return r.db.WithContext(ctx).Save(item).Error
}
