package preference

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"

	"github.com/google/uuid"
)

type (
	// SwipeEventSource is the slice of the interaction log the learner needs
	// for full replays. The outfit swipe repository satisfies it.
	SwipeEventSource interface {
		GetSwipeEvents(ctx context.Context, userID string, since *time.Time) ([]*entities.SwipeEvent, error)
		CountSwipeEvents(ctx context.Context, userID string) (int64, error)
	}

	PreferenceService interface {
		GetProfile(ctx context.Context, userID string) (domain.PreferenceProfile, error)
		ApplySwipe(ctx context.Context, userID string, action string, facets []ItemFacet) error
		Rebuild(ctx context.Context, userID string) error
	}

	preferenceService struct {
		preferenceRepository PreferenceRepository
		swipeEvents          SwipeEventSource
		minObservations      int
	}
)

func NewPreferenceService(preferenceRepository PreferenceRepository, swipeEvents SwipeEventSource) PreferenceService {
	return &preferenceService{
		preferenceRepository: preferenceRepository,
		swipeEvents:          swipeEvents,
		minObservations:      DefaultMinObservations,
	}
}

// GetProfile builds the profile from the running counters. Counters failing
// the consistency check trigger a full rebuild from the swipe log instead of
// surfacing an error to the caller.
func (s *preferenceService) GetProfile(ctx context.Context, userID string) (domain.PreferenceProfile, error) {
	counters, err := s.preferenceRepository.GetCounters(ctx, userID)
	if err != nil {
		return domain.PreferenceProfile{}, err
	}

	profile, err := BuildProfile(counters, s.minObservations)
	if errors.Is(err, ErrCorruptCounters) {
		if err := s.Rebuild(ctx, userID); err != nil {
			return domain.PreferenceProfile{}, err
		}
		counters, err = s.preferenceRepository.GetCounters(ctx, userID)
		if err != nil {
			return domain.PreferenceProfile{}, err
		}
		profile, err = BuildProfile(counters, s.minObservations)
	}
	if err != nil {
		return domain.PreferenceProfile{}, err
	}

	// Counters over-count facets shared by several items in one outfit, so
	// the event total comes straight from the log.
	count, err := s.swipeEvents.CountSwipeEvents(ctx, userID)
	if err != nil {
		return domain.PreferenceProfile{}, err
	}
	profile.TotalEvents = int(count)
	return profile, nil
}

// ApplySwipe incrementally updates only the facets touched by the swiped
// outfit's items; no replay of history.
func (s *preferenceService) ApplySwipe(ctx context.Context, userID string, action string, facets []ItemFacet) error {
	likes, total := LikesForAction(action)
	if total == 0 {
		return domain.ErrInvalidAction
	}

	for _, f := range facets {
		if err := s.preferenceRepository.IncrementCounter(ctx, userID, DimensionCategory, f.Category, likes, total); err != nil {
			return err
		}
		if f.Color != "" {
			if err := s.preferenceRepository.IncrementCounter(ctx, userID, DimensionColor, f.Color, likes, total); err != nil {
				return err
			}
		}
		if f.Brand != "" {
			if err := s.preferenceRepository.IncrementCounter(ctx, userID, DimensionBrand, f.Brand, likes, total); err != nil {
				return err
			}
		}
	}
	return nil
}

// Rebuild replays the full swipe log into a fresh counter set. Recovery path
// for lost or corrupted counters; the log is the sole source of truth.
func (s *preferenceService) Rebuild(ctx context.Context, userID string) error {
	events, err := s.swipeEvents.GetSwipeEvents(ctx, userID, nil)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	type tally struct{ likes, total int }
	tallies := map[[2]string]*tally{}

	for _, ev := range events {
		likes, total := LikesForAction(ev.Action)
		if total == 0 {
			continue
		}

		var facets []ItemFacet
		if err := json.Unmarshal([]byte(ev.ItemFacets), &facets); err != nil {
			continue // unreadable snapshot, skip rather than poison the rebuild
		}

		for _, f := range facets {
			keys := [][2]string{{DimensionCategory, f.Category}}
			if f.Color != "" {
				keys = append(keys, [2]string{DimensionColor, f.Color})
			}
			if f.Brand != "" {
				keys = append(keys, [2]string{DimensionBrand, f.Brand})
			}
			for _, k := range keys {
				t, ok := tallies[k]
				if !ok {
					t = &tally{}
					tallies[k] = t
				}
				t.likes += likes
				t.total += total
			}
		}
	}

	counters := make([]*entities.PreferenceCounter, 0, len(tallies))
	for key, t := range tallies {
		counters = append(counters, &entities.PreferenceCounter{
			ID:        uuid.New(),
			UserID:    userUUID,
			Dimension: key[0],
			Facet:     key[1],
			Likes:     t.likes,
			Total:     t.total,
		})
	}

	return s.preferenceRepository.ReplaceCounters(ctx, userID, counters)
}
