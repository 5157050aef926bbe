//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LessonRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error
	FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	FindByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) ([]*model.Lesson, error)
	// ListSiblings はモジュール内の全レッスンの位置を返します (トランザクション内では行ロック)
	ListSiblings(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) ([]model.SiblingPosition, error)
	Update(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, updates map[string]interface{}) error
	// UpdateOrderIndex は現在の位置が from の場合のみ to に更新します。一致しなければ ErrConflict
	UpdateOrderIndex(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, from, to int) error
	Delete(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error
	DeleteByModule(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) (int64, error)
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(lesson)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Order index already taken on create lesson",
				"module_id", lesson.ModuleID.String(),
				"order_index", lesson.OrderIndex,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating lesson in DB",
			"error", result.Error,
			"module_id", lesson.ModuleID.String(),
			"title", lesson.Title,
		)
		return fmt.Errorf("gormLessonRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson by ID in DB",
			"error", result.Error,
			"lesson_id", lessonID.String(),
		)
		return nil, fmt.Errorf("gormLessonRepository.FindByID: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) FindByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) ([]*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lessons []*model.Lesson
	result := db.WithContext(ctx).Where("module_id = ?", moduleID).Order("order_index ASC").Find(&lessons)
	if result.Error != nil {
		logger.Error("Error finding lessons by module in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return nil, fmt.Errorf("gormLessonRepository.FindByModule: %w", result.Error)
	}
	return lessons, nil
}

func (r *gormLessonRepository) ListSiblings(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) ([]model.SiblingPosition, error) {
	logger := middleware.GetLogger(ctx)
	var lessons []model.Lesson
	// SQLite ドライバは FOR UPDATE を出力しない
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("lesson_id", "order_index").
		Where("module_id = ?", moduleID).
		Order("order_index ASC").
		Find(&lessons)
	if result.Error != nil {
		logger.Error("Error listing lesson positions in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return nil, fmt.Errorf("gormLessonRepository.ListSiblings: %w", result.Error)
	}

	positions := make([]model.SiblingPosition, 0, len(lessons))
	for _, l := range lessons {
		positions = append(positions, model.SiblingPosition{ID: l.LessonID, OrderIndex: l.OrderIndex})
	}
	return positions, nil
}

func (r *gormLessonRepository) Update(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Lesson{}).Where("lesson_id = ?", lessonID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating lesson in DB",
			"error", result.Error,
			"lesson_id", lessonID.String(),
		)
		return fmt.Errorf("gormLessonRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLessonRepository) UpdateOrderIndex(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, from, to int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Lesson{}).
		Where("lesson_id = ? AND order_index = ?", lessonID, from).
		Update("order_index", to)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Order index collision while moving lesson",
				"lesson_id", lessonID.String(),
				"from", from,
				"to", to,
			)
			return model.ErrConflict
		}
		logger.Error("Error updating lesson order index in DB",
			"error", result.Error,
			"lesson_id", lessonID.String(),
		)
		return fmt.Errorf("gormLessonRepository.UpdateOrderIndex: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Lesson position changed since snapshot",
			"lesson_id", lessonID.String(),
			"expected_order_index", from,
		)
		return model.ErrConflict
	}
	return nil
}

func (r *gormLessonRepository) Delete(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("lesson_id = ?", lessonID).Delete(&model.Lesson{})
	if result.Error != nil {
		logger.Error("Error deleting lesson in DB",
			"error", result.Error,
			"lesson_id", lessonID.String(),
		)
		return fmt.Errorf("gormLessonRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteByModule はモジュールに属するレッスンをまとめて削除し、削除件数を返します
func (r *gormLessonRepository) DeleteByModule(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("module_id = ?", moduleID).Delete(&model.Lesson{})
	if result.Error != nil {
		logger.Error("Error deleting lessons by module in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return 0, fmt.Errorf("gormLessonRepository.DeleteByModule: %w", result.Error)
	}
	return result.RowsAffected, nil
}
