package outfit

import (
	"context"
	"time"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"

	"gorm.io/gorm"
)

type (
	// SwipeRepository is the append-only interaction log. Nothing in the
	// system ever updates or deletes a swipe event.
	SwipeRepository interface {
		AppendSwipeEvent(ctx context.Context, event *entities.SwipeEvent) error
		GetSwipeEvents(ctx context.Context, userID string, since *time.Time) ([]*entities.SwipeEvent, error)
		CountSwipeEvents(ctx context.Context, userID string) (int64, error)
		GetSwipeHistory(ctx context.Context, userID string, page, limit int) ([]*entities.SwipeEvent, int64, error)
		GetRejectedSignatures(ctx context.Context, userID string, since time.Time) ([]string, error)
	}

	swipeRepository struct {
		db *gorm.DB
	}
)

func NewSwipeRepository(db *gorm.DB) SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) AppendSwipeEvent(ctx context.Context, event *entities.SwipeEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *swipeRepository) GetSwipeEvents(ctx context.Context, userID string, since *time.Time) ([]*entities.SwipeEvent, error) {
	var events []*entities.SwipeEvent
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	if err := query.Order("created_at asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *swipeRepository) CountSwipeEvents(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SwipeEvent{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *swipeRepository) GetSwipeHistory(ctx context.Context, userID string, page, limit int) ([]*entities.SwipeEvent, int64, error) {
	var events []*entities.SwipeEvent
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.SwipeEvent{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, count, nil
}

func (r *swipeRepository) GetRejectedSignatures(ctx context.Context, userID string, since time.Time) ([]string, error) {
	var signatures []string
	if err := r.db.WithContext(ctx).
		Model(&entities.SwipeEvent{}).
		Where("user_id = ? AND action = ? AND created_at >= ?", userID, domain.ActionReject, since).
		Pluck("outfit_signature", &signatures).Error; err != nil {
		return nil, err
	}
	return signatures, nil
}
