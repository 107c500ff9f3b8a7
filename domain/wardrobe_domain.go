package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	CategoryTop       = "top"
	CategoryBottom    = "bottom"
	CategoryOuterwear = "outerwear"
	CategoryShoes     = "shoes"
	CategoryAccessory = "accessory"
)

// Required slots always filled in a candidate; optional slots may stay empty.
var (
	RequiredSlots = []string{CategoryTop, CategoryBottom, CategoryShoes}
	OptionalSlots = []string{CategoryOuterwear, CategoryAccessory}
	AllCategories = []string{CategoryTop, CategoryBottom, CategoryOuterwear, CategoryShoes, CategoryAccessory}
)

var (
	MessageSuccessAddWardrobeItem    = "wardrobe item added successfully"
	MessageSuccessUpdateWardrobeItem = "wardrobe item updated successfully"
	MessageSuccessDeleteWardrobeItem = "wardrobe item removed successfully"
	MessageSuccessGetWardrobeItems   = "wardrobe items retrieved successfully"
	MessageSuccessUploadItemImage    = "item image uploaded successfully"

	MessageFailedAddWardrobeItem    = "failed to add wardrobe item"
	MessageFailedUpdateWardrobeItem = "failed to update wardrobe item"
	MessageFailedDeleteWardrobeItem = "failed to remove wardrobe item"
	MessageFailedGetWardrobeItems   = "failed to retrieve wardrobe items"
	MessageFailedUploadItemImage    = "failed to upload item image"

	ErrWardrobeItemNotFound = errors.New("wardrobe item not found")
	ErrInvalidCategory      = errors.New("invalid clothing category")
	ErrInvalidTempRange     = errors.New("min temperature above max temperature")
)

type (
	AddWardrobeItemRequest struct {
		Name       string   `json:"name" validate:"required"`
		Category   string   `json:"category" validate:"required,oneof=top bottom outerwear shoes accessory"`
		Color      string   `json:"color" validate:"required"`
		Brand      string   `json:"brand" validate:"omitempty"`
		Price      float64  `json:"price" validate:"omitempty,gte=0"`
		Formality  []string `json:"formality" validate:"omitempty,dive,oneof=casual smart_casual business formal"`
		Conditions []string `json:"conditions" validate:"omitempty,dive,oneof=clear cloudy rain snow"`
		MinTemp    float64  `json:"min_temp"`
		MaxTemp    float64  `json:"max_temp"`
	}

	UpdateWardrobeItemRequest struct {
		Name       string   `json:"name" validate:"omitempty"`
		Color      string   `json:"color" validate:"omitempty"`
		Brand      string   `json:"brand" validate:"omitempty"`
		Price      float64  `json:"price" validate:"omitempty,gte=0"`
		Formality  []string `json:"formality" validate:"omitempty,dive,oneof=casual smart_casual business formal"`
		Conditions []string `json:"conditions" validate:"omitempty,dive,oneof=clear cloudy rain snow"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	WardrobeItemResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Category   string    `json:"category"`
		Color      string    `json:"color"`
		Brand      string    `json:"brand"`
		Price      float64   `json:"price,omitempty"`
		Formality  []string  `json:"formality"`
		Conditions []string  `json:"conditions"`
		MinTemp    float64   `json:"min_temp"`
		MaxTemp    float64   `json:"max_temp"`
		ImageURL   string    `json:"image_url,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
