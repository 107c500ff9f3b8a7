package outfit

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"
	"StyleMate-Server/pkg/catalog"
	"StyleMate-Server/pkg/preference"
	"StyleMate-Server/pkg/user"
	"StyleMate-Server/pkg/wardrobe"
	"StyleMate-Server/pkg/weather"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Session states for one recommendation set.
const (
	sessionPresented     = "presented"
	sessionAccepted      = "accepted"
	sessionRejected      = "rejected"
	sessionSuperAccepted = "super_accepted"
	sessionExpired       = "expired"
)

type (
	OutfitService interface {
		RecommendOutfits(ctx context.Context, userID string, req domain.RecommendOutfitsRequest) (domain.RecommendOutfitsResponse, error)
		RecordSwipe(ctx context.Context, userID string, req domain.SwipeRequest) error
		GetSwipeHistory(ctx context.Context, userID string, page, limit int) (domain.SwipeHistoryResponse, error)
		GetStyleProfile(ctx context.Context, userID string) (domain.PreferenceProfile, error)
	}

	// presentedSet is the user's most recent recommendation set. Swipes are
	// only accepted against it; anything else is stale UI state.
	presentedSet struct {
		occasion   string
		weather    *domain.Weather
		candidates map[string]domain.OutfitCandidate
		status     string
	}

	outfitService struct {
		swipeRepository    SwipeRepository
		wardrobeRepository wardrobe.WardrobeRepository
		catalogRepository  catalog.CatalogRepository
		userRepository     user.UserRepository
		preferenceService  preference.PreferenceService
		weatherService     weather.WeatherService
		config             Config
		rng                *rand.Rand

		mu        sync.Mutex
		presented map[string]*presentedSet
	}
)

func NewOutfitService(
	swipeRepository SwipeRepository,
	wardrobeRepository wardrobe.WardrobeRepository,
	catalogRepository catalog.CatalogRepository,
	userRepository user.UserRepository,
	preferenceService preference.PreferenceService,
	weatherService weather.WeatherService,
) OutfitService {
	return &outfitService{
		swipeRepository:    swipeRepository,
		wardrobeRepository: wardrobeRepository,
		catalogRepository:  catalogRepository,
		userRepository:     userRepository,
		preferenceService:  preferenceService,
		weatherService:     weatherService,
		config:             DefaultConfig(),
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
		presented:          make(map[string]*presentedSet),
	}
}

func (s *outfitService) RecommendOutfits(ctx context.Context, userID string, req domain.RecommendOutfitsRequest) (domain.RecommendOutfitsResponse, error) {
	if !domain.ValidOccasion(req.Occasion) {
		return domain.RecommendOutfitsResponse{}, domain.ErrInvalidOccasion
	}

	usr, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.RecommendOutfitsResponse{}, domain.ErrUserNotFound
	}

	// Catalog (shoppable) items are a premium feature; everyone else gets
	// wardrobe-only regardless of the requested option.
	includeCatalog := !req.IncludeWardrobeOnly && usr.IsPremium

	// Weather is on unless the caller explicitly opted out.
	var currentWeather *domain.Weather
	if req.UseWeather == nil || *req.UseWeather {
		currentWeather = s.weatherService.GetCurrentWeather(ctx, usr.Latitude, usr.Longitude)
	}
	weatherScore := 0.5
	if currentWeather != nil {
		weatherScore = 1.0
	}

	owned, err := s.wardrobeRepository.GetActiveItems(ctx, userID)
	if err != nil {
		return domain.RecommendOutfitsResponse{}, err
	}

	var products []*entities.RetailerProduct
	if includeCatalog {
		products, err = s.catalogRepository.GetProductsForPool(ctx, domain.CatalogQuery{}, s.config.CatalogPoolLimit)
		if err != nil {
			// Catalog down degrades to an empty contribution, never a failure.
			log.Warnf("catalog unavailable, recommending from wardrobe only: %v", err)
			products = nil
		}
	}

	pool := BuildPool(owned, products, PoolOptions{
		IncludeCatalog: includeCatalog,
		AllowedBrands:  req.AllowedBrands,
	})

	filtered, reason := FilterPool(pool, currentWeather, req.Occasion)
	if reason != "" {
		return domain.RecommendOutfitsResponse{
			Outfits: []domain.OutfitCandidate{},
			Reason:  reason,
			Weather: currentWeather,
		}, nil
	}

	profile, err := s.preferenceService.GetProfile(ctx, userID)
	if err != nil {
		return domain.RecommendOutfitsResponse{}, err
	}

	candidates := Assemble(filtered, profile, weatherScore, s.config, s.rng)

	// Never re-surface combinations the user rejected recently.
	rejected, err := s.swipeRepository.GetRejectedSignatures(ctx, userID, time.Now().Add(-s.config.RejectCooldown))
	if err != nil {
		return domain.RecommendOutfitsResponse{}, err
	}
	if len(rejected) > 0 {
		cooled := make(map[string]bool, len(rejected))
		for _, sig := range rejected {
			cooled[sig] = true
		}
		kept := candidates[:0]
		for _, c := range candidates {
			if !cooled[c.Signature] {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.config.DefaultMaxResults
	}
	selected := SelectDiverse(candidates, maxResults)

	response := domain.RecommendOutfitsResponse{
		Outfits: selected,
		Weather: currentWeather,
	}
	if len(selected) == 0 {
		response.Outfits = []domain.OutfitCandidate{}
		response.Reason = domain.ReasonNoItemsAtAll
		return response, nil
	}
	if !req.IncludeWardrobeOnly {
		mix := map[string]int{}
		for _, c := range selected {
			for _, it := range c.Items {
				mix[it.Provenance]++
			}
		}
		response.RetailerMix = mix
	}

	s.storePresented(userID, req.Occasion, currentWeather, selected)
	return response, nil
}

// RecordSwipe is the only mutation path into the learning system: validate
// against the presented set, append the event durably, then fold it into the
// preference counters.
func (s *outfitService) RecordSwipe(ctx context.Context, userID string, req domain.SwipeRequest) error {
	if req.Action != domain.ActionAccept && req.Action != domain.ActionReject && req.Action != domain.ActionSuperAccept {
		return domain.ErrInvalidAction
	}

	candidate, set, err := s.presentedCandidate(userID, req.Signature)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	var items []domain.Item
	for _, slot := range slotOrder {
		if it, ok := candidate.Items[slot]; ok {
			items = append(items, it)
		}
	}
	facets := preference.FacetsOf(items)
	facetsJSON, err := json.Marshal(facets)
	if err != nil {
		return err
	}

	event := entities.SwipeEvent{
		ID:              uuid.New(),
		UserID:          userUUID,
		OutfitSignature: candidate.Signature,
		Action:          req.Action,
		Occasion:        set.occasion,
		ItemFacets:      string(facetsJSON),
		CreatedAt:       time.Now(),
	}
	if set.weather != nil {
		event.WeatherTemp = set.weather.Temperature
		event.WeatherCondition = set.weather.Condition
		event.Precipitation = set.weather.Precipitation
	}

	// Append must be durable before the counters it feeds are touched.
	if err := s.swipeRepository.AppendSwipeEvent(ctx, &event); err != nil {
		return err
	}
	if err := s.preferenceService.ApplySwipe(ctx, userID, req.Action, facets); err != nil {
		return err
	}

	s.markSwiped(userID, req.Action)
	return nil
}

func (s *outfitService) GetSwipeHistory(ctx context.Context, userID string, page, limit int) (domain.SwipeHistoryResponse, error) {
	events, count, err := s.swipeRepository.GetSwipeHistory(ctx, userID, page, limit)
	if err != nil {
		return domain.SwipeHistoryResponse{}, err
	}

	result := make([]domain.SwipeEventResponse, 0, len(events))
	for _, ev := range events {
		result = append(result, domain.SwipeEventResponse{
			Signature: ev.OutfitSignature,
			Action:    ev.Action,
			Occasion:  ev.Occasion,
			CreatedAt: ev.CreatedAt,
		})
	}
	return domain.SwipeHistoryResponse{Events: result, Total: count}, nil
}

func (s *outfitService) GetStyleProfile(ctx context.Context, userID string) (domain.PreferenceProfile, error) {
	return s.preferenceService.GetProfile(ctx, userID)
}

func (s *outfitService) storePresented(userID, occasion string, w *domain.Weather, selected []domain.OutfitCandidate) {
	bysig := make(map[string]domain.OutfitCandidate, len(selected))
	for _, c := range selected {
		bysig[c.Signature] = c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.presented[userID]; ok && prev.status == sessionPresented {
		// Replaced without a swipe: the old set expired and produces no event.
		prev.status = sessionExpired
	}
	s.presented[userID] = &presentedSet{
		occasion:   occasion,
		weather:    w,
		candidates: bysig,
		status:     sessionPresented,
	}
}

func (s *outfitService) presentedCandidate(userID, signature string) (domain.OutfitCandidate, *presentedSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.presented[userID]
	if !ok {
		return domain.OutfitCandidate{}, nil, domain.ErrInvalidSwipe
	}
	candidate, ok := set.candidates[signature]
	if !ok {
		return domain.OutfitCandidate{}, nil, domain.ErrInvalidSwipe
	}
	return candidate, set, nil
}

func (s *outfitService) markSwiped(userID, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.presented[userID]
	if !ok {
		return
	}
	switch action {
	case domain.ActionAccept:
		set.status = sessionAccepted
	case domain.ActionReject:
		set.status = sessionRejected
	case domain.ActionSuperAccept:
		set.status = sessionSuperAccepted
	}
}

var _ preference.SwipeEventSource = (SwipeRepository)(nil)
