package wardrobe

import (
	"context"
	"errors"
	"strings"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"
	"StyleMate-Server/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default declared tolerances for items added without explicit values.
const (
	defaultMinTemp = -10.0
	defaultMaxTemp = 40.0
)

type (
	WardrobeService interface {
		AddItem(ctx context.Context, req domain.AddWardrobeItemRequest, userID string) (domain.WardrobeItemResponse, error)
		GetItems(ctx context.Context, userID, category string, page, limit int) ([]domain.WardrobeItemResponse, int64, error)
		UpdateItem(ctx context.Context, itemID string, req domain.UpdateWardrobeItemRequest, userID string) (domain.WardrobeItemResponse, error)
		DeleteItem(ctx context.Context, itemID, userID string) error
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error)
	}

	wardrobeService struct {
		wardrobeRepository WardrobeRepository
		s3                 storage.AwsS3
	}
)

func NewWardrobeService(wardrobeRepository WardrobeRepository, s3 storage.AwsS3) WardrobeService {
	return &wardrobeService{
		wardrobeRepository: wardrobeRepository,
		s3:                 s3,
	}
}

func (s *wardrobeService) AddItem(ctx context.Context, req domain.AddWardrobeItemRequest, userID string) (domain.WardrobeItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WardrobeItemResponse{}, domain.ErrParseUUID
	}

	if !validCategory(req.Category) {
		return domain.WardrobeItemResponse{}, domain.ErrInvalidCategory
	}

	minTemp, maxTemp := req.MinTemp, req.MaxTemp
	if minTemp == 0 && maxTemp == 0 {
		minTemp, maxTemp = defaultMinTemp, defaultMaxTemp
	}
	if minTemp > maxTemp {
		return domain.WardrobeItemResponse{}, domain.ErrInvalidTempRange
	}

	formality := req.Formality
	if len(formality) == 0 {
		formality = []string{domain.OccasionCasual}
	}

	item := entities.WardrobeItem{
		ID:         uuid.New(),
		UserID:     userUUID,
		Name:       req.Name,
		Category:   req.Category,
		Color:      strings.ToLower(strings.TrimSpace(req.Color)),
		Brand:      req.Brand,
		Price:      req.Price,
		Formality:  strings.Join(formality, ","),
		Conditions: strings.Join(req.Conditions, ","),
		MinTemp:    minTemp,
		MaxTemp:    maxTemp,
	}

	if err := s.wardrobeRepository.CreateItem(ctx, &item); err != nil {
		return domain.WardrobeItemResponse{}, err
	}

	return toItemResponse(&item), nil
}

func (s *wardrobeService) GetItems(ctx context.Context, userID, category string, page, limit int) ([]domain.WardrobeItemResponse, int64, error) {
	items, count, err := s.wardrobeRepository.GetItems(ctx, userID, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.WardrobeItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toItemResponse(item))
	}
	return result, count, nil
}

func (s *wardrobeService) UpdateItem(ctx context.Context, itemID string, req domain.UpdateWardrobeItemRequest, userID string) (domain.WardrobeItemResponse, error) {
	item, err := s.ownedItem(ctx, itemID, userID)
	if err != nil {
		return domain.WardrobeItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Color != "" {
		item.Color = strings.ToLower(strings.TrimSpace(req.Color))
	}
	if req.Brand != "" {
		item.Brand = req.Brand
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if len(req.Formality) > 0 {
		item.Formality = strings.Join(req.Formality, ",")
	}
	if len(req.Conditions) > 0 {
		item.Conditions = strings.Join(req.Conditions, ",")
	}

	if err := s.wardrobeRepository.UpdateItem(ctx, item); err != nil {
		return domain.WardrobeItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// DeleteItem soft-deletes; the item stops appearing in pools but the row
// survives for swipe history replays.
func (s *wardrobeService) DeleteItem(ctx context.Context, itemID, userID string) error {
	item, err := s.ownedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}
	return s.wardrobeRepository.SoftDeleteItem(ctx, item)
}

func (s *wardrobeService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error) {
	item, err := s.ownedItem(ctx, req.ItemID, userID)
	if err != nil {
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, req.Image, "wardrobe")
	if err != nil {
		return "", err
	}

	item.ImageURL = url
	if err := s.wardrobeRepository.UpdateItem(ctx, item); err != nil {
		return "", err
	}
	return url, nil
}

func (s *wardrobeService) ownedItem(ctx context.Context, itemID, userID string) (*entities.WardrobeItem, error) {
	item, err := s.wardrobeRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWardrobeItemNotFound
		}
		return nil, err
	}
	if item.IsDeleted {
		return nil, domain.ErrWardrobeItemNotFound
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}

func validCategory(category string) bool {
	for _, c := range domain.AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

func toItemResponse(item *entities.WardrobeItem) domain.WardrobeItemResponse {
	return domain.WardrobeItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Category:   item.Category,
		Color:      item.Color,
		Brand:      item.Brand,
		Price:      item.Price,
		Formality:  splitTags(item.Formality),
		Conditions: splitTags(item.Conditions),
		MinTemp:    item.MinTemp,
		MaxTemp:    item.MaxTemp,
		ImageURL:   item.ImageURL,
		CreatedAt:  item.CreatedAt,
	}
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}
