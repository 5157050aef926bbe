//go:generate mockery --name ModuleRepository --output ./mocks --outpkg mocks --case=underscore
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

type ModuleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, module *model.CourseModule) error
	FindByID(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.CourseModule, error)
	FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.CourseModule, error)
	// ListSiblings はコース内の全モジュールの位置を返します (トランザクション内では行ロック)
	ListSiblings(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]model.SiblingPosition, error)
	Update(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, updates map[string]interface{}) error
	// UpdateOrderIndex は現在の位置が from の場合のみ to に更新します。一致しなければ ErrConflict
	UpdateOrderIndex(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, from, to int) error
	Delete(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) error
}

type gormModuleRepository struct{}

func NewGormModuleRepository() ModuleRepository {
	return &gormModuleRepository{}
}

func (r *gormModuleRepository) Create(ctx context.Context, tx *gorm.DB, module *model.CourseModule) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(module)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Order index already taken on create module",
				"course_id", module.CourseID.String(),
				"order_index", module.OrderIndex,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating module in DB",
			"error", result.Error,
			"course_id", module.CourseID.String(),
			"title", module.Title,
		)
		return fmt.Errorf("gormModuleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormModuleRepository) FindByID(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.CourseModule, error) {
	logger := middleware.GetLogger(ctx)
	var module model.CourseModule
	result := db.WithContext(ctx).Where("module_id = ?", moduleID).First(&module)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding module by ID in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return nil, fmt.Errorf("gormModuleRepository.FindByID: %w", result.Error)
	}
	return &module, nil
}

func (r *gormModuleRepository) FindByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.CourseModule, error) {
	logger := middleware.GetLogger(ctx)
	var modules []*model.CourseModule
	result := db.WithContext(ctx).Where("course_id = ?", courseID).Order("order_index ASC").Find(&modules)
	if result.Error != nil {
		logger.Error("Error finding modules by course in DB",
			"error", result.Error,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormModuleRepository.FindByCourse: %w", result.Error)
	}
	return modules, nil
}

func (r *gormModuleRepository) ListSiblings(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]model.SiblingPosition, error) {
	logger := middleware.GetLogger(ctx)
	var modules []model.CourseModule
	// SQLite ドライバは FOR UPDATE を出力しない
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("module_id", "order_index").
		Where("course_id = ?", courseID).
		Order("order_index ASC").
		Find(&modules)
	if result.Error != nil {
		logger.Error("Error listing module positions in DB",
			"error", result.Error,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormModuleRepository.ListSiblings: %w", result.Error)
	}

	positions := make([]model.SiblingPosition, 0, len(modules))
	for _, m := range modules {
		positions = append(positions, model.SiblingPosition{ID: m.ModuleID, OrderIndex: m.OrderIndex})
	}
	return positions, nil
}

func (r *gormModuleRepository) Update(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.CourseModule{}).Where("module_id = ?", moduleID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating module in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormModuleRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormModuleRepository) UpdateOrderIndex(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, from, to int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.CourseModule{}).
		Where("module_id = ? AND order_index = ?", moduleID, from).
		Update("order_index", to)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Order index collision while moving module",
				"module_id", moduleID.String(),
				"from", from,
				"to", to,
			)
			return model.ErrConflict
		}
		logger.Error("Error updating module order index in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormModuleRepository.UpdateOrderIndex: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Module position changed since snapshot",
			"module_id", moduleID.String(),
			"expected_order_index", from,
		)
		return model.ErrConflict
	}
	return nil
}

func (r *gormModuleRepository) Delete(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("module_id = ?", moduleID).Delete(&model.CourseModule{})
	if result.Error != nil {
		logger.Error("Error deleting module in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormModuleRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
