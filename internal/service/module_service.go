//go:generate mockery --name ModuleService --output ./mocks --outpkg mocks --structname MockModuleService --filename module_service.go
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

const (
	MsgCourseNotFound = "course not found"
	MsgModuleNotFound = "module not found"
	MsgTitleRequired  = "title must not be empty"
)

type ModuleService interface {
	CreateModule(ctx context.Context, actorID string, courseID uuid.UUID, req *model.PostModuleRequest) (*model.CourseModule, error)
	UpdateModule(ctx context.Context, actorID string, moduleID uuid.UUID, req *model.PatchModuleRequest) (*model.CourseModule, error)
	DeleteModule(ctx context.Context, actorID string, moduleID uuid.UUID) error
	ListModules(ctx context.Context, courseID uuid.UUID) ([]*model.CourseModule, error)
}

type moduleService struct {
	db         *gorm.DB // トランザクション用
	moduleRepo repository.ModuleRepository
	lessonRepo repository.LessonRepository
	courseRepo repository.CourseRepository
	guard      AccessGuard
}

func NewModuleService(db *gorm.DB, moduleRepo repository.ModuleRepository, lessonRepo repository.LessonRepository, courseRepo repository.CourseRepository, guard AccessGuard) ModuleService {
	return &moduleService{
		db:         db,
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		courseRepo: courseRepo,
		guard:      guard,
	}
}

func (s *moduleService) CreateModule(ctx context.Context, actorID string, courseID uuid.UUID, req *model.PostModuleRequest) (*model.CourseModule, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.courseRepo.FindByID(ctx, s.db, courseID); err != nil {
		return nil, lookupError(err, MsgCourseNotFound)
	}
	if err := authorize(s.guard.Authorize(ctx, model.ActionCreate, courseID, actorID)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, model.NewAppError(model.CodeValidation, MsgTitleRequired, "title", model.ErrInvalidInput)
	}

	var created *model.CourseModule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		siblings, err := s.moduleRepo.ListSiblings(ctx, tx, courseID)
		if err != nil {
			return err
		}
		index, err := insertSlot(ctx, tx, s.moduleRepo, siblings, req.OrderIndex)
		if err != nil {
			return err
		}

		module := &model.CourseModule{
			ModuleID:    uuid.New(),
			CourseID:    courseID,
			Title:       req.Title,
			Description: req.Description,
			OrderIndex:  index,
		}
		if err := s.moduleRepo.Create(ctx, tx, module); err != nil {
			return err
		}
		created = module
		return nil
	})
	if err != nil {
		logger.Warn("CreateModule transaction failed", "error", err, "course_id", courseID.String())
		return nil, translateTxError(err, MsgCourseNotFound)
	}

	logger.Info("Module created",
		"module_id", created.ModuleID.String(),
		"course_id", courseID.String(),
		"order_index", created.OrderIndex,
	)
	return created, nil
}

func (s *moduleService) UpdateModule(ctx context.Context, actorID string, moduleID uuid.UUID, req *model.PatchModuleRequest) (*model.CourseModule, error) {
	logger := middleware.GetLogger(ctx)

	module, err := s.moduleRepo.FindByID(ctx, s.db, moduleID)
	if err != nil {
		return nil, lookupError(err, MsgModuleNotFound)
	}
	if _, err := s.courseRepo.FindByID(ctx, s.db, module.CourseID); err != nil {
		return nil, lookupError(err, MsgCourseNotFound)
	}
	if err := authorize(s.guard.Authorize(ctx, model.ActionEdit, module.CourseID, actorID)); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, model.NewAppError(model.CodeValidation, MsgTitleRequired, "title", model.ErrInvalidInput)
		}
		if *req.Title != module.Title {
			updates["title"] = *req.Title
		}
	}
	if req.Description != nil && *req.Description != module.Description {
		updates["description"] = *req.Description
	}

	var updated *model.CourseModule
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.OrderIndex != nil {
			siblings, err := s.moduleRepo.ListSiblings(ctx, tx, module.CourseID)
			if err != nil {
				return err
			}
			if err := moveWithin(ctx, tx, s.moduleRepo, siblings, moduleID, *req.OrderIndex); err != nil {
				return err
			}
		}

		if err := s.moduleRepo.Update(ctx, tx, moduleID, updates); err != nil {
			return err
		}

		found, err := s.moduleRepo.FindByID(ctx, tx, moduleID)
		if err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		logger.Warn("UpdateModule transaction failed", "error", err, "module_id", moduleID.String())
		return nil, translateTxError(err, MsgModuleNotFound)
	}

	logger.Info("Module updated", "module_id", moduleID.String(), "order_index", updated.OrderIndex)
	return updated, nil
}

// DeleteModule はモジュールと配下のレッスンを削除し、残りのモジュールを詰め直します
func (s *moduleService) DeleteModule(ctx context.Context, actorID string, moduleID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	module, err := s.moduleRepo.FindByID(ctx, s.db, moduleID)
	if err != nil {
		return lookupError(err, MsgModuleNotFound)
	}
	if _, err := s.courseRepo.FindByID(ctx, s.db, module.CourseID); err != nil {
		return lookupError(err, MsgCourseNotFound)
	}
	if err := authorize(s.guard.Authorize(ctx, model.ActionDelete, module.CourseID, actorID)); err != nil {
		return err
	}

	var removedLessons int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.lessonRepo.DeleteByModule(ctx, tx, moduleID)
		if err != nil {
			return err
		}
		removedLessons = n

		if err := s.moduleRepo.Delete(ctx, tx, moduleID); err != nil {
			return err
		}

		survivors, err := s.moduleRepo.ListSiblings(ctx, tx, module.CourseID)
		if err != nil {
			return err
		}
		return compact(ctx, tx, s.moduleRepo, survivors)
	})
	if err != nil {
		logger.Warn("DeleteModule transaction failed", "error", err, "module_id", moduleID.String())
		return translateTxError(err, MsgModuleNotFound)
	}

	logger.Info("Module deleted",
		"module_id", moduleID.String(),
		"course_id", module.CourseID.String(),
		"lessons_deleted", removedLessons,
	)
	return nil
}

func (s *moduleService) ListModules(ctx context.Context, courseID uuid.UUID) ([]*model.CourseModule, error) {
	if _, err := s.courseRepo.FindByID(ctx, s.db, courseID); err != nil {
		return nil, lookupError(err, MsgCourseNotFound)
	}
	modules, err := s.moduleRepo.FindByCourse(ctx, s.db, courseID)
	if err != nil {
		return nil, model.NewCollaboratorError(err)
	}
	return modules, nil
}
