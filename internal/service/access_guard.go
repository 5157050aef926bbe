//go:generate mockery --name AccessGuard --output ./mocks --outpkg mocks --structname MockAccessGuard --filename access_guard.go
// internal/service/access_guard.go
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"
	"go_course_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessGuard はモジュール/レッスンの変更操作を許可するかどうかを判定します。
// 拒否は Decision で、判定に必要な読み取りの失敗は error で返します。
type AccessGuard interface {
	Authorize(ctx context.Context, action model.Action, courseID uuid.UUID, actorID string) (model.Decision, error)
	RequireAdmin(ctx context.Context, action model.Action, actorID string) (model.Decision, error)
}

type accessGuard struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
	courseRepo  repository.CourseRepository
}

func NewAccessGuard(db *gorm.DB, profileRepo repository.ProfileRepository, courseRepo repository.CourseRepository) AccessGuard {
	return &accessGuard{
		db:          db,
		profileRepo: profileRepo,
		courseRepo:  courseRepo,
	}
}

func (g *accessGuard) Authorize(ctx context.Context, action model.Action, courseID uuid.UUID, actorID string) (model.Decision, error) {
	logger := middleware.GetLogger(ctx).With("action", string(action), "course_id", courseID.String())

	profile, decision, err := g.loadProfile(ctx, actorID)
	if err != nil || !decision.Permitted() {
		return decision, err
	}

	switch profile.Role {
	case model.RoleAdmin:
		return model.Permit(), nil

	case model.RoleTeacher:
		// 教師は作成・編集のみ。削除は担当コースでも不可
		if action == model.ActionDelete {
			logger.Info("Teacher attempted delete", "actor_id", actorID)
			return model.DenyUnauthorized(model.ReasonAdminOnlyDelete), nil
		}
		teacherIDs, err := g.courseRepo.FindTeacherIDs(ctx, g.db, courseID)
		if err != nil {
			return model.Decision{}, guardFailure(err)
		}
		if !slices.Contains(teacherIDs, actorID) {
			logger.Info("Teacher is not assigned to course", "actor_id", actorID)
			return model.DenyUnauthorized(model.ReasonNotAssigned), nil
		}
		return model.Permit(), nil

	default:
		// student および未知のロール
		return model.DenyUnauthorized(model.ReasonInsufficientPermissions(action)), nil
	}
}

// RequireAdmin はコース担当の割り当てなど、管理者専用の操作を判定します。
func (g *accessGuard) RequireAdmin(ctx context.Context, action model.Action, actorID string) (model.Decision, error) {
	profile, decision, err := g.loadProfile(ctx, actorID)
	if err != nil || !decision.Permitted() {
		return decision, err
	}
	if profile.Role != model.RoleAdmin {
		return model.DenyUnauthorized(model.ReasonInsufficientPermissions(action)), nil
	}
	return model.Permit(), nil
}

// guardFailure は判定に必要な読み取りの失敗を包みます
func guardFailure(err error) error {
	return fmt.Errorf("%s: %w", model.MsgOperationFailed, err)
}

// loadProfile はアクターとプロフィールの解決を行います。
// プロフィールが取得できたときだけ Decision は許可になります。
func (g *accessGuard) loadProfile(ctx context.Context, actorID string) (*model.Profile, model.Decision, error) {
	if actorID == "" {
		return nil, model.DenyUnauthenticated(), nil
	}

	profile, err := g.profileRepo.FindByActorID(ctx, g.db, actorID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.DenyUnauthorized(model.ReasonProfileNotFound), nil
		}
		return nil, model.Decision{}, guardFailure(err)
	}
	return profile, model.Permit(), nil
}
