//go:generate mockery --name LessonService --output ./mocks --outpkg mocks --structname MockLessonService --filename lesson_service.go
package service

import (
	"context"
	"strings"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"
	"go_course_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MsgLessonNotFound = "lesson not found"

type LessonService interface {
	CreateLesson(ctx context.Context, actorID string, moduleID uuid.UUID, req *model.PostLessonRequest) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, actorID string, lessonID uuid.UUID, req *model.PatchLessonRequest) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, actorID string, lessonID uuid.UUID) error
	ListLessons(ctx context.Context, moduleID uuid.UUID) ([]*model.Lesson, error)
}

type lessonService struct {
	db         *gorm.DB
	lessonRepo repository.LessonRepository
	moduleRepo repository.ModuleRepository
	guard      AccessGuard
}

func NewLessonService(db *gorm.DB, lessonRepo repository.LessonRepository, moduleRepo repository.ModuleRepository, guard AccessGuard) LessonService {
	return &lessonService{
		db:         db,
		lessonRepo: lessonRepo,
		moduleRepo: moduleRepo,
		guard:      guard,
	}
}

// owningCourse はレッスンの親モジュールからコースを解決します
func (s *lessonService) owningCourse(ctx context.Context, moduleID uuid.UUID) (uuid.UUID, error) {
	module, err := s.moduleRepo.FindByID(ctx, s.db, moduleID)
	if err != nil {
		return uuid.Nil, lookupError(err, MsgModuleNotFound)
	}
	return module.CourseID, nil
}

func (s *lessonService) CreateLesson(ctx context.Context, actorID string, moduleID uuid.UUID, req *model.PostLessonRequest) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)

	courseID, err := s.owningCourse(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if err := authorize(s.guard.Authorize(ctx, model.ActionCreate, courseID, actorID)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, model.NewAppError(model.CodeValidation, MsgTitleRequired, "title", model.ErrInvalidInput)
	}

	var created *model.Lesson
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		siblings, err := s.lessonRepo.ListSiblings(ctx, tx, moduleID)
		if err != nil {
			return err
		}
		index, err := insertSlot(ctx, tx, s.lessonRepo, siblings, req.OrderIndex)
		if err != nil {
			return err
		}

		lesson := &model.Lesson{
			LessonID:   uuid.New(),
			ModuleID:   moduleID,
			Title:      req.Title,
			Content:    req.Content,
			OrderIndex: index,
		}
		if err := s.lessonRepo.Create(ctx, tx, lesson); err != nil {
			return err
		}
		created = lesson
		return nil
	})
	if err != nil {
		logger.Warn("CreateLesson transaction failed", "error", err, "module_id", moduleID.String())
		return nil, translateTxError(err, MsgModuleNotFound)
	}

	logger.Info("Lesson created",
		"lesson_id", created.LessonID.String(),
		"module_id", moduleID.String(),
		"order_index", created.OrderIndex,
	)
	return created, nil
}

func (s *lessonService) UpdateLesson(ctx context.Context, actorID string, lessonID uuid.UUID, req *model.PatchLessonRequest) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)

	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, lookupError(err, MsgLessonNotFound)
	}
	courseID, err := s.owningCourse(ctx, lesson.ModuleID)
	if err != nil {
		return nil, err
	}
	if err := authorize(s.guard.Authorize(ctx, model.ActionEdit, courseID, actorID)); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, model.NewAppError(model.CodeValidation, MsgTitleRequired, "title", model.ErrInvalidInput)
		}
		if *req.Title != lesson.Title {
			updates["title"] = *req.Title
		}
	}
	if req.Content != nil && *req.Content != lesson.Content {
		updates["content"] = *req.Content
	}

	var updated *model.Lesson
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.OrderIndex != nil {
			siblings, err := s.lessonRepo.ListSiblings(ctx, tx, lesson.ModuleID)
			if err != nil {
				return err
			}
			if err := moveWithin(ctx, tx, s.lessonRepo, siblings, lessonID, *req.OrderIndex); err != nil {
				return err
			}
		}

		if err := s.lessonRepo.Update(ctx, tx, lessonID, updates); err != nil {
			return err
		}

		found, err := s.lessonRepo.FindByID(ctx, tx, lessonID)
		if err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		logger.Warn("UpdateLesson transaction failed", "error", err, "lesson_id", lessonID.String())
		return nil, translateTxError(err, MsgLessonNotFound)
	}

	logger.Info("Lesson updated", "lesson_id", lessonID.String(), "order_index", updated.OrderIndex)
	return updated, nil
}

func (s *lessonService) DeleteLesson(ctx context.Context, actorID string, lessonID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return lookupError(err, MsgLessonNotFound)
	}
	courseID, err := s.owningCourse(ctx, lesson.ModuleID)
	if err != nil {
		return err
	}
	if err := authorize(s.guard.Authorize(ctx, model.ActionDelete, courseID, actorID)); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lessonRepo.Delete(ctx, tx, lessonID); err != nil {
			return err
		}
		survivors, err := s.lessonRepo.ListSiblings(ctx, tx, lesson.ModuleID)
		if err != nil {
			return err
		}
		return compact(ctx, tx, s.lessonRepo, survivors)
	})
	if err != nil {
		logger.Warn("DeleteLesson transaction failed", "error", err, "lesson_id", lessonID.String())
		return translateTxError(err, MsgLessonNotFound)
	}

	logger.Info("Lesson deleted", "lesson_id", lessonID.String(), "module_id", lesson.ModuleID.String())
	return nil
}

func (s *lessonService) ListLessons(ctx context.Context, moduleID uuid.UUID) ([]*model.Lesson, error) {
	if _, err := s.moduleRepo.FindByID(ctx, s.db, moduleID); err != nil {
		return nil, lookupError(err, MsgModuleNotFound)
	}
	lessons, err := s.lessonRepo.FindByModule(ctx, s.db, moduleID)
	if err != nil {
		return nil, model.NewCollaboratorError(err)
	}
	return lessons, nil
}
