//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByActorID(ctx context.Context, db *gorm.DB, actorID string) (*model.Profile, error)
	Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) FindByActorID(ctx context.Context, db *gorm.DB, actorID string) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile

	result := db.WithContext(ctx).Where("actor_id = ?", actorID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Profile not found", "actor_id", actorID)
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding profile by actor ID in DB",
			"error", result.Error,
			"actor_id", actorID,
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByActorID: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create profile", "actor_id", profile.ActorID)
			return model.ErrConflict
		}
		logger.Error(
			"Error creating profile in DB",
			"error", result.Error,
			"actor_id", profile.ActorID,
		)
		return fmt.Errorf("gormProfileRepository.Create: %w", result.Error)
	}
	return nil
}
