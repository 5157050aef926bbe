//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, db *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	FindTeacherIDs(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]string, error)
	AddTeacher(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, teacherID string) error
	RemoveTeacher(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, teacherID string) error
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, db *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(course)
	if result.Error != nil {
		logger.Error("Error creating course in DB",
			"error", result.Error,
			"course_id", course.CourseID.String(),
		)
		return fmt.Errorf("gormCourseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course

	result := db.WithContext(ctx).Where("course_id = ?", courseID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by ID in DB",
			"error", result.Error,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindTeacherIDs(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	teacherIDs := []string{}

	result := db.WithContext(ctx).Model(&model.CourseTeacher{}).
		Where("course_id = ?", courseID).
		Order("teacher_id ASC").
		Pluck("teacher_id", &teacherIDs)
	if result.Error != nil {
		logger.Error("Error finding course teachers in DB",
			"error", result.Error,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormCourseRepository.FindTeacherIDs: %w", result.Error)
	}
	return teacherIDs, nil
}

func (r *gormCourseRepository) AddTeacher(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, teacherID string) error {
	logger := middleware.GetLogger(ctx)
	link := &model.CourseTeacher{CourseID: courseID, TeacherID: teacherID}

	result := tx.WithContext(ctx).Create(link)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Teacher already assigned to course",
				"course_id", courseID.String(),
				"teacher_id", teacherID,
			)
			return model.ErrConflict
		}
		logger.Error("Error assigning teacher in DB",
			"error", result.Error,
			"course_id", courseID.String(),
			"teacher_id", teacherID,
		)
		return fmt.Errorf("gormCourseRepository.AddTeacher: %w", result.Error)
	}
	return nil
}

func (r *gormCourseRepository) RemoveTeacher(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, teacherID string) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).
		Where("course_id = ? AND teacher_id = ?", courseID, teacherID).
		Delete(&model.CourseTeacher{})
	if result.Error != nil {
		logger.Error("Error unassigning teacher in DB",
			"error", result.Error,
			"course_id", courseID.String(),
			"teacher_id", teacherID,
		)
		return fmt.Errorf("gormCourseRepository.RemoveTeacher: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
