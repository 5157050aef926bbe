//go:generate mockery --name CourseService --output ./mocks --outpkg mocks --structname MockCourseService --filename course_service.go
package service

import (
	"context"
	"errors"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"
	"go_course_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MsgNotATeacher          = "user is not a teacher"
	MsgTeacherNotFound      = "teacher profile not found"
	MsgTeacherAlreadyListed = "teacher already assigned to this course"
	MsgTeacherNotAssigned   = "teacher is not assigned to this course"
)

// CourseService はコース担当教師の割り当てを管理します (管理者のみ)
type CourseService interface {
	AssignTeacher(ctx context.Context, actorID string, courseID uuid.UUID, teacherID string) (*model.CourseTeachersResponse, error)
	UnassignTeacher(ctx context.Context, actorID string, courseID uuid.UUID, teacherID string) (*model.CourseTeachersResponse, error)
	ListTeachers(ctx context.Context, courseID uuid.UUID) (*model.CourseTeachersResponse, error)
}

type courseService struct {
	db          *gorm.DB
	courseRepo  repository.CourseRepository
	profileRepo repository.ProfileRepository
	guard       AccessGuard
}

func NewCourseService(db *gorm.DB, courseRepo repository.CourseRepository, profileRepo repository.ProfileRepository, guard AccessGuard) CourseService {
	return &courseService{
		db:          db,
		courseRepo:  courseRepo,
		profileRepo: profileRepo,
		guard:       guard,
	}
}

func (s *courseService) AssignTeacher(ctx context.Context, actorID string, courseID uuid.UUID, teacherID string) (*model.CourseTeachersResponse, error) {
	logger := middleware.GetLogger(ctx)

	if err := authorize(s.guard.RequireAdmin(ctx, model.ActionEdit, actorID)); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.FindByID(ctx, s.db, courseID); err != nil {
		return nil, lookupError(err, MsgCourseNotFound)
	}

	profile, err := s.profileRepo.FindByActorID(ctx, s.db, teacherID)
	if err != nil {
		return nil, lookupError(err, MsgTeacherNotFound)
	}
	if profile.Role != model.RoleTeacher {
		return nil, model.NewAppError(model.CodeValidation, MsgNotATeacher, "teacher_id", model.ErrInvalidInput)
	}

	var teacherIDs []string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.courseRepo.AddTeacher(ctx, tx, courseID, teacherID); err != nil {
			return err
		}
		ids, err := s.courseRepo.FindTeacherIDs(ctx, tx, courseID)
		if err != nil {
			return err
		}
		teacherIDs = ids
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError(model.CodeConflict, MsgTeacherAlreadyListed, "teacher_id", model.ErrConflict)
		}
		return nil, model.NewCollaboratorError(err)
	}

	logger.Info("Teacher assigned to course", "course_id", courseID.String(), "teacher_id", teacherID)
	return &model.CourseTeachersResponse{CourseID: courseID, TeacherIDs: teacherIDs}, nil
}

func (s *courseService) UnassignTeacher(ctx context.Context, actorID string, courseID uuid.UUID, teacherID string) (*model.CourseTeachersResponse, error) {
	logger := middleware.GetLogger(ctx)

	if err := authorize(s.guard.RequireAdmin(ctx, model.ActionDelete, actorID)); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.FindByID(ctx, s.db, courseID); err != nil {
		return nil, lookupError(err, MsgCourseNotFound)
	}

	var teacherIDs []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.courseRepo.RemoveTeacher(ctx, tx, courseID, teacherID); err != nil {
			return err
		}
		ids, err := s.courseRepo.FindTeacherIDs(ctx, tx, courseID)
		if err != nil {
			return err
		}
		teacherIDs = ids
		return nil
	})
	if err != nil {
		return nil, translateTxError(err, MsgTeacherNotAssigned)
	}

	logger.Info("Teacher unassigned from course", "course_id", courseID.String(), "teacher_id", teacherID)
	return &model.CourseTeachersResponse{CourseID: courseID, TeacherIDs: teacherIDs}, nil
}

func (s *courseService) ListTeachers(ctx context.Context, courseID uuid.UUID) (*model.CourseTeachersResponse, error) {
	if _, err := s.courseRepo.FindByID(ctx, s.db, courseID); err != nil {
		return nil, lookupError(err, MsgCourseNotFound)
	}
	teacherIDs, err := s.courseRepo.FindTeacherIDs(ctx, s.db, courseID)
	if err != nil {
		return nil, model.NewCollaboratorError(err)
	}
	return &model.CourseTeachersResponse{CourseID: courseID, TeacherIDs: teacherIDs}, nil
}
