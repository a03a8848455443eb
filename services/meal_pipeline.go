package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"
	"github.com/DandaAkhilReddy/reddyfit-backend/utils"

	"github.com/google/uuid"
)

// ErrNotAnImage rejects submissions before any stage runs.
var ErrNotAnImage = errors.New("submitted file is not an image")

// recordAppender is the slice of MealRecordStore the pipeline writes through.
type recordAppender interface {
	Append(ctx context.Context, userID uint, rec models.MealRecord) (*models.MealRecord, error)
}

// MealPipeline turns a raw photo into a persisted MealRecord in four strictly
// sequential stages: recognize, compute nutrition, store image, persist.
// No stage is retried and nothing runs concurrently within one invocation.
//
// Known limitation: if the record write fails after the image upload
// succeeded, the blob stays behind with no referencing record. OrphanSweeper
// cleans those up; the pipeline itself does not compensate.
type MealPipeline struct {
	recognizer FoodRecognizer
	nutrition  NutritionComputer
	images     utils.ImageStore
	records    recordAppender
}

func NewMealPipeline(rec FoodRecognizer, nut NutritionComputer, img utils.ImageStore, store recordAppender) *MealPipeline {
	return &MealPipeline{
		recognizer: rec,
		nutrition:  nut,
		images:     img,
		records:    store,
	}
}

func (p *MealPipeline) LogMeal(ctx context.Context, userID uint, image []byte, mimeType string) (*models.MealRecord, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: got %q", ErrNotAnImage, mimeType)
	}

	// Stage 1: recognize.
	labels, err := p.recognizer.Recognize(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognitionFailure, err)
	}
	if len(labels) == 0 {
		return nil, ErrNoFoodDetected
	}

	// Stage 2: compute nutrition.
	nut, err := p.nutrition.Compute(ctx, labels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNutritionServiceFailure, err)
	}

	// Stage 3: store the image. The uuid keeps concurrent uploads by the
	// same user from colliding.
	key := fmt.Sprintf("meals/%d/%s%s", userID, uuid.NewString(), extensionFor(mimeType))
	url, err := p.images.Put(ctx, key, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	// Stage 4: persist. The store assigns ID and CreatedAt; its error is
	// already tagged ErrPersistenceFailure.
	rec := models.MealRecord{
		ImageURL:  url,
		FoodItems: labels,
		Nutrition: *nut,
	}
	return p.records.Append(ctx, userID, rec)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
