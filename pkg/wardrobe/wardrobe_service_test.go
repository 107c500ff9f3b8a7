package wardrobe

import (
	"context"
	"mime/multipart"
	"testing"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeWardrobeRepository struct {
	items map[string]*entities.WardrobeItem
}

func newFakeWardrobeRepository() *fakeWardrobeRepository {
	return &fakeWardrobeRepository{items: map[string]*entities.WardrobeItem{}}
}

func (f *fakeWardrobeRepository) CreateItem(ctx context.Context, item *entities.WardrobeItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeWardrobeRepository) GetItemByID(ctx context.Context, id string) (*entities.WardrobeItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeWardrobeRepository) GetActiveItems(ctx context.Context, userID string) ([]*entities.WardrobeItem, error) {
	var out []*entities.WardrobeItem
	for _, it := range f.items {
		if it.UserID.String() == userID && !it.IsDeleted {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeWardrobeRepository) GetItems(ctx context.Context, userID, category string, page, limit int) ([]*entities.WardrobeItem, int64, error) {
	items, err := f.GetActiveItems(ctx, userID)
	return items, int64(len(items)), err
}

func (f *fakeWardrobeRepository) UpdateItem(ctx context.Context, item *entities.WardrobeItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeWardrobeRepository) SoftDeleteItem(ctx context.Context, item *entities.WardrobeItem) error {
	item.IsDeleted = true
	return nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	return "https://bucket.s3.region.amazonaws.com/" + dir + "/file.jpg", nil
}

func TestAddItem_DefaultsAndNormalization(t *testing.T) {
	repo := newFakeWardrobeRepository()
	svc := NewWardrobeService(repo, fakeS3{})
	userID := uuid.New().String()

	res, err := svc.AddItem(context.Background(), domain.AddWardrobeItemRequest{
		Name:     "Linen Shirt",
		Category: domain.CategoryTop,
		Color:    "  White ",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "white", res.Color)
	assert.Equal(t, []string{"casual"}, res.Formality)
	assert.InDelta(t, -10, res.MinTemp, 1e-9)
	assert.InDelta(t, 40, res.MaxTemp, 1e-9)
}

func TestAddItem_InvalidCategory(t *testing.T) {
	svc := NewWardrobeService(newFakeWardrobeRepository(), fakeS3{})

	_, err := svc.AddItem(context.Background(), domain.AddWardrobeItemRequest{
		Name:     "Hat Rack",
		Category: "furniture",
		Color:    "brown",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestAddItem_InvalidTempRange(t *testing.T) {
	svc := NewWardrobeService(newFakeWardrobeRepository(), fakeS3{})

	_, err := svc.AddItem(context.Background(), domain.AddWardrobeItemRequest{
		Name:     "Backwards Coat",
		Category: domain.CategoryOuterwear,
		Color:    "black",
		MinTemp:  20,
		MaxTemp:  5,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidTempRange)
}

func TestUpdateItem_OwnershipEnforced(t *testing.T) {
	repo := newFakeWardrobeRepository()
	svc := NewWardrobeService(repo, fakeS3{})
	owner := uuid.New().String()

	created, err := svc.AddItem(context.Background(), domain.AddWardrobeItemRequest{
		Name:     "Denim Jacket",
		Category: domain.CategoryOuterwear,
		Color:    "denim",
	}, owner)
	require.NoError(t, err)

	_, err = svc.UpdateItem(context.Background(), created.ID, domain.UpdateWardrobeItemRequest{Name: "stolen"}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	updated, err := svc.UpdateItem(context.Background(), created.ID, domain.UpdateWardrobeItemRequest{Color: "Navy"}, owner)
	require.NoError(t, err)
	assert.Equal(t, "navy", updated.Color)
}

func TestDeleteItem_SoftDelete(t *testing.T) {
	repo := newFakeWardrobeRepository()
	svc := NewWardrobeService(repo, fakeS3{})
	owner := uuid.New().String()

	created, err := svc.AddItem(context.Background(), domain.AddWardrobeItemRequest{
		Name:     "Old Sneakers",
		Category: domain.CategoryShoes,
		Color:    "white",
	}, owner)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), created.ID, owner))

	// Row survives for history replays but disappears from pools.
	stored := repo.items[created.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsDeleted)

	active, err := repo.GetActiveItems(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Deleted items are gone from the API surface too.
	err = svc.DeleteItem(context.Background(), created.ID, owner)
	assert.ErrorIs(t, err, domain.ErrWardrobeItemNotFound)
}

func TestDeleteItem_NotFound(t *testing.T) {
	svc := NewWardrobeService(newFakeWardrobeRepository(), fakeS3{})

	err := svc.DeleteItem(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrWardrobeItemNotFound)
}
