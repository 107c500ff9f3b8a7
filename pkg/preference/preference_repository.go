package preference

import (
	"context"
	"errors"

	"StyleMate-Server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PreferenceRepository interface {
		GetCounters(ctx context.Context, userID string) ([]*entities.PreferenceCounter, error)
		IncrementCounter(ctx context.Context, userID, dimension, facet string, likes, total int) error
		ReplaceCounters(ctx context.Context, userID string, counters []*entities.PreferenceCounter) error
	}

	preferenceRepository struct {
		db *gorm.DB
	}
)

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetCounters(ctx context.Context, userID string) ([]*entities.PreferenceCounter, error) {
	var counters []*entities.PreferenceCounter
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&counters).Error; err != nil {
		return nil, err
	}
	return counters, nil
}

func (r *preferenceRepository) IncrementCounter(ctx context.Context, userID, dimension, facet string, likes, total int) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter entities.PreferenceCounter
		err := tx.Where("user_id = ? AND dimension = ? AND facet = ?", userUUID, dimension, facet).
			First(&counter).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = entities.PreferenceCounter{
				ID:        uuid.New(),
				UserID:    userUUID,
				Dimension: dimension,
				Facet:     facet,
				Likes:     likes,
				Total:     total,
			}
			return tx.Create(&counter).Error
		}
		if err != nil {
			return err
		}

		counter.Likes += likes
		counter.Total += total
		return tx.Save(&counter).Error
	})
}

func (r *preferenceRepository) ReplaceCounters(ctx context.Context, userID string, counters []*entities.PreferenceCounter) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userUUID).
			Delete(&entities.PreferenceCounter{}).Error; err != nil {
			return err
		}
		if len(counters) == 0 {
			return nil
		}
		return tx.Create(&counters).Error
	})
}
