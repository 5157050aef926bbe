// internal/service/module_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_course_keep/internal/model"
	"go_course_keep/internal/repository"
	"go_course_keep/internal/repository/mocks"
	svcmocks "go_course_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderWrite struct {
	id       uuid.UUID
	from, to int
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func requireAppError(t *testing.T, err error, code, message string) {
	t.Helper()
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestModuleService_UpdateModule_WithMocks(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	courseID := uuid.New()
	const actor = "teacher-1"

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	siblings := []model.SiblingPosition{
		{ID: ids[0], OrderIndex: 1},
		{ID: ids[1], OrderIndex: 2},
		{ID: ids[2], OrderIndex: 3},
		{ID: ids[3], OrderIndex: 4},
	}
	moving := &model.CourseModule{ModuleID: ids[3], CourseID: courseID, Title: "4th", OrderIndex: 4}

	type deps struct {
		moduleRepo *mocks.ModuleRepository
		lessonRepo *mocks.LessonRepository
		courseRepo *mocks.CourseRepository
		guard      *svcmocks.MockAccessGuard
	}
	newService := func(t *testing.T) (ModuleService, deps) {
		d := deps{
			moduleRepo: mocks.NewModuleRepository(t),
			lessonRepo: mocks.NewLessonRepository(t),
			courseRepo: mocks.NewCourseRepository(t),
			guard:      svcmocks.NewMockAccessGuard(t),
		}
		return NewModuleService(db, d.moduleRepo, d.lessonRepo, d.courseRepo, d.guard), d
	}
	expectLookup := func(d deps) {
		d.moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), ids[3]).Return(moving, nil).Once()
		d.courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
			Return(&model.Course{CourseID: courseID}, nil).Once()
	}

	t.Run("正常系: 移動対象を退避してからシフトし、最後に確定する", func(t *testing.T) {
		svc, d := newService(t)
		expectLookup(d)
		d.guard.On("Authorize", ctx, model.ActionEdit, courseID, actor).Return(model.Permit(), nil).Once()
		d.moduleRepo.On("ListSiblings", ctx, mock.AnythingOfType("*gorm.DB"), courseID).Return(siblings, nil).Once()

		var writes []orderWrite
		d.moduleRepo.On("UpdateOrderIndex", ctx, mock.AnythingOfType("*gorm.DB"), mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				writes = append(writes, orderWrite{id: args.Get(2).(uuid.UUID), from: args.Int(3), to: args.Int(4)})
			}).
			Return(nil).Times(4)
		d.moduleRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), ids[3], map[string]interface{}{}).Return(nil).Once()

		moved := *moving
		moved.OrderIndex = 2
		d.moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), ids[3]).Return(&moved, nil).Once()

		got, err := svc.UpdateModule(ctx, actor, ids[3], &model.PatchModuleRequest{OrderIndex: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, 2, got.OrderIndex)

		assert.Equal(t, []orderWrite{
			{id: ids[3], from: 4, to: model.ParkedOrderIndex},
			{id: ids[2], from: 3, to: 4},
			{id: ids[1], from: 2, to: 3},
			{id: ids[3], from: model.ParkedOrderIndex, to: 2},
		}, writes)
	})

	t.Run("正常系: タイトルのみの更新は並び順に触れない", func(t *testing.T) {
		svc, d := newService(t)
		expectLookup(d)
		d.guard.On("Authorize", ctx, model.ActionEdit, courseID, actor).Return(model.Permit(), nil).Once()
		d.moduleRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), ids[3], map[string]interface{}{"title": "renamed"}).
			Return(nil).Once()
		renamed := *moving
		renamed.Title = "renamed"
		d.moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), ids[3]).Return(&renamed, nil).Once()

		got, err := svc.UpdateModule(ctx, actor, ids[3], &model.PatchModuleRequest{Title: strPtr("renamed")})
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)

		d.moduleRepo.AssertNotCalled(t, "ListSiblings", mock.Anything, mock.Anything, mock.Anything)
		d.moduleRepo.AssertNotCalled(t, "UpdateOrderIndex", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 書き込み中の競合は CONFLICT で中断", func(t *testing.T) {
		svc, d := newService(t)
		expectLookup(d)
		d.guard.On("Authorize", ctx, model.ActionEdit, courseID, actor).Return(model.Permit(), nil).Once()
		d.moduleRepo.On("ListSiblings", ctx, mock.AnythingOfType("*gorm.DB"), courseID).Return(siblings, nil).Once()
		d.moduleRepo.On("UpdateOrderIndex", ctx, mock.AnythingOfType("*gorm.DB"), ids[3], 4, model.ParkedOrderIndex).Return(nil).Once()
		d.moduleRepo.On("UpdateOrderIndex", ctx, mock.AnythingOfType("*gorm.DB"), ids[2], 3, 4).Return(model.ErrConflict).Once()

		got, err := svc.UpdateModule(ctx, actor, ids[3], &model.PatchModuleRequest{OrderIndex: intPtr(2)})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrConflict)
		requireAppError(t, err, model.CodeConflict, "sibling order changed, please retry")

		d.moduleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 範囲外の order_index", func(t *testing.T) {
		svc, d := newService(t)
		expectLookup(d)
		d.guard.On("Authorize", ctx, model.ActionEdit, courseID, actor).Return(model.Permit(), nil).Once()
		d.moduleRepo.On("ListSiblings", ctx, mock.AnythingOfType("*gorm.DB"), courseID).Return(siblings, nil).Once()

		_, err := svc.UpdateModule(ctx, actor, ids[3], &model.PatchModuleRequest{OrderIndex: intPtr(5)})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		requireAppError(t, err, model.CodeValidation, "order must be between 1 and 4")

		d.moduleRepo.AssertNotCalled(t, "UpdateOrderIndex", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 担当外の教師", func(t *testing.T) {
		svc, d := newService(t)
		expectLookup(d)
		d.guard.On("Authorize", ctx, model.ActionEdit, courseID, actor).
			Return(model.DenyUnauthorized(model.ReasonNotAssigned), nil).Once()

		_, err := svc.UpdateModule(ctx, actor, ids[3], &model.PatchModuleRequest{OrderIndex: intPtr(2)})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		requireAppError(t, err, model.CodeForbidden, "not assigned to this course")

		d.moduleRepo.AssertNotCalled(t, "ListSiblings", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 判定に失敗した場合は汎用エラー", func(t *testing.T) {
		svc, d := newService(t)
		expectLookup(d)
		d.guard.On("Authorize", ctx, model.ActionEdit, courseID, actor).
			Return(model.Decision{}, errors.New("operation failed: connection reset")).Once()

		_, err := svc.UpdateModule(ctx, actor, ids[3], &model.PatchModuleRequest{OrderIndex: intPtr(2)})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		requireAppError(t, err, model.CodeInternal, "operation failed: connection reset")
	})

	t.Run("異常系: モジュールが存在しない", func(t *testing.T) {
		svc, d := newService(t)
		missing := uuid.New()
		d.moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), missing).Return(nil, model.ErrNotFound).Once()

		_, err := svc.UpdateModule(ctx, actor, missing, &model.PatchModuleRequest{OrderIndex: intPtr(1)})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		requireAppError(t, err, model.CodeNotFound, "module not found")

		d.guard.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestModuleService_CreateModule_WithMocks(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	courseID := uuid.New()

	t.Run("異常系: student は作成できない", func(t *testing.T) {
		moduleRepo := mocks.NewModuleRepository(t)
		courseRepo := mocks.NewCourseRepository(t)
		guard := svcmocks.NewMockAccessGuard(t)
		svc := NewModuleService(db, moduleRepo, mocks.NewLessonRepository(t), courseRepo, guard)

		courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).Return(&model.Course{CourseID: courseID}, nil).Once()
		guard.On("Authorize", ctx, model.ActionCreate, courseID, studentID).
			Return(model.DenyUnauthorized(model.ReasonInsufficientPermissions(model.ActionCreate)), nil).Once()

		_, err := svc.CreateModule(ctx, studentID, courseID, &model.PostModuleRequest{Title: "x"})
		require.Error(t, err)
		requireAppError(t, err, model.CodeForbidden, "insufficient permissions for create operation")
		moduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 未認証", func(t *testing.T) {
		courseRepo := mocks.NewCourseRepository(t)
		guard := svcmocks.NewMockAccessGuard(t)
		svc := NewModuleService(db, mocks.NewModuleRepository(t), mocks.NewLessonRepository(t), courseRepo, guard)

		courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).Return(&model.Course{CourseID: courseID}, nil).Once()
		guard.On("Authorize", ctx, model.ActionCreate, courseID, "").Return(model.DenyUnauthenticated(), nil).Once()

		_, err := svc.CreateModule(ctx, "", courseID, &model.PostModuleRequest{Title: "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthenticated)
		requireAppError(t, err, model.CodeUnauthenticated, "no authenticated user")
	})

	t.Run("異常系: コースが存在しない", func(t *testing.T) {
		courseRepo := mocks.NewCourseRepository(t)
		svc := NewModuleService(db, mocks.NewModuleRepository(t), mocks.NewLessonRepository(t), courseRepo, svcmocks.NewMockAccessGuard(t))

		courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).Return(nil, model.ErrNotFound).Once()

		_, err := svc.CreateModule(ctx, adminID, courseID, &model.PostModuleRequest{Title: "x"})
		requireAppError(t, err, model.CodeNotFound, "course not found")
	})

	t.Run("異常系: タイトルが空白のみ", func(t *testing.T) {
		moduleRepo := mocks.NewModuleRepository(t)
		courseRepo := mocks.NewCourseRepository(t)
		guard := svcmocks.NewMockAccessGuard(t)
		svc := NewModuleService(db, moduleRepo, mocks.NewLessonRepository(t), courseRepo, guard)

		courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).Return(&model.Course{CourseID: courseID}, nil).Once()
		guard.On("Authorize", ctx, model.ActionCreate, courseID, adminID).Return(model.Permit(), nil).Once()

		_, err := svc.CreateModule(ctx, adminID, courseID, &model.PostModuleRequest{Title: "   "})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		requireAppError(t, err, model.CodeValidation, "title must not be empty")
		moduleRepo.AssertNotCalled(t, "ListSiblings", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- ここから実際の DB (SQLite) を使ったテスト ---

func newModuleServiceForFixture(f *fixture) ModuleService {
	return NewModuleService(
		f.db,
		repository.NewGormModuleRepository(),
		repository.NewGormLessonRepository(),
		repository.NewGormCourseRepository(),
		f.guard,
	)
}

// titlesInOrder はコース内のモジュールタイトルを order_index 順に返し、連番も検証します
func titlesInOrder(t *testing.T, svc ModuleService, courseID uuid.UUID) []string {
	t.Helper()
	modules, err := svc.ListModules(context.Background(), courseID)
	require.NoError(t, err)
	titles := make([]string, 0, len(modules))
	for i, m := range modules {
		require.Equal(t, i+1, m.OrderIndex, "order_index must be dense")
		titles = append(titles, m.Title)
	}
	return titles
}

func createModules(t *testing.T, svc ModuleService, actor string, courseID uuid.UUID, titles ...string) []*model.CourseModule {
	t.Helper()
	created := make([]*model.CourseModule, 0, len(titles))
	for _, title := range titles {
		m, err := svc.CreateModule(context.Background(), actor, courseID, &model.PostModuleRequest{Title: title})
		require.NoError(t, err)
		created = append(created, m)
	}
	return created
}

func TestModuleService_WithDB(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 省略時は末尾、指定時はその位置に挿入", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)

		createModules(t, svc, teacherID, f.courseID, "A", "B", "C")
		inserted, err := svc.CreateModule(ctx, teacherID, f.courseID, &model.PostModuleRequest{Title: "X", OrderIndex: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, 2, inserted.OrderIndex)

		assert.Equal(t, []string{"A", "X", "B", "C"}, titlesInOrder(t, svc, f.courseID))

		_, err = svc.CreateModule(ctx, teacherID, f.courseID, &model.PostModuleRequest{Title: "Y", OrderIndex: intPtr(6)})
		requireAppError(t, err, model.CodeValidation, "order must be between 1 and 5")
	})

	t.Run("正常系: 4番目を2番目へ移動", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)
		modules := createModules(t, svc, teacherID, f.courseID, "A", "B", "C", "D")

		moved, err := svc.UpdateModule(ctx, teacherID, modules[3].ModuleID, &model.PatchModuleRequest{OrderIndex: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, 2, moved.OrderIndex)
		assert.Equal(t, []string{"A", "D", "B", "C"}, titlesInOrder(t, svc, f.courseID))

		// 同じ位置の再指定は何も変えない
		_, err = svc.UpdateModule(ctx, teacherID, modules[3].ModuleID, &model.PatchModuleRequest{OrderIndex: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "D", "B", "C"}, titlesInOrder(t, svc, f.courseID))
	})

	t.Run("正常系: 全ての移動元と移動先で連番が保たれる", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)
		modules := createModules(t, svc, adminID, f.courseID, "A", "B", "C", "D", "E")

		for _, m := range modules {
			for to := 1; to <= len(modules); to++ {
				_, err := svc.UpdateModule(ctx, adminID, m.ModuleID, &model.PatchModuleRequest{OrderIndex: intPtr(to)})
				require.NoError(t, err)
				titlesInOrder(t, svc, f.courseID)
			}
		}
	})

	t.Run("正常系: 移動とタイトル変更を同時に行う", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)
		modules := createModules(t, svc, teacherID, f.courseID, "A", "B", "C")

		got, err := svc.UpdateModule(ctx, teacherID, modules[0].ModuleID, &model.PatchModuleRequest{
			Title:      strPtr("A2"),
			OrderIndex: intPtr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, "A2", got.Title)
		assert.Equal(t, []string{"B", "C", "A2"}, titlesInOrder(t, svc, f.courseID))
	})

	t.Run("異常系: 担当外の教師とstudentは変更できない", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)
		modules := createModules(t, svc, teacherID, f.courseID, "A", "B")

		_, err := svc.UpdateModule(ctx, outsiderID, modules[1].ModuleID, &model.PatchModuleRequest{OrderIndex: intPtr(1)})
		requireAppError(t, err, model.CodeForbidden, "not assigned to this course")

		_, err = svc.UpdateModule(ctx, studentID, modules[1].ModuleID, &model.PatchModuleRequest{OrderIndex: intPtr(1)})
		requireAppError(t, err, model.CodeForbidden, "insufficient permissions for edit operation")

		_, err = svc.UpdateModule(ctx, "unknown", modules[1].ModuleID, &model.PatchModuleRequest{OrderIndex: intPtr(1)})
		requireAppError(t, err, model.CodeForbidden, "profile not found")

		assert.Equal(t, []string{"A", "B"}, titlesInOrder(t, svc, f.courseID))
	})

	t.Run("正常系: 削除は管理者のみ、残りは詰め直される", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)
		lessonSvc := NewLessonService(f.db, repository.NewGormLessonRepository(), repository.NewGormModuleRepository(), f.guard)
		modules := createModules(t, svc, teacherID, f.courseID, "A", "B", "C", "D")

		_, err := lessonSvc.CreateLesson(ctx, teacherID, modules[1].ModuleID, &model.PostLessonRequest{Title: "L1"})
		require.NoError(t, err)

		err = svc.DeleteModule(ctx, teacherID, modules[1].ModuleID)
		requireAppError(t, err, model.CodeForbidden, "only administrators may delete")

		require.NoError(t, svc.DeleteModule(ctx, adminID, modules[1].ModuleID))
		assert.Equal(t, []string{"A", "C", "D"}, titlesInOrder(t, svc, f.courseID))

		// 配下のレッスンも削除されている
		var count int64
		require.NoError(t, f.db.Model(&model.Lesson{}).Where("module_id = ?", modules[1].ModuleID).Count(&count).Error)
		assert.Zero(t, count)

		err = svc.DeleteModule(ctx, adminID, modules[1].ModuleID)
		requireAppError(t, err, model.CodeNotFound, "module not found")
	})

	t.Run("異常系: 空白タイトルでも認可の判定が先", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)

		_, err := svc.CreateModule(ctx, "", f.courseID, &model.PostModuleRequest{Title: "   "})
		requireAppError(t, err, model.CodeUnauthenticated, "no authenticated user")

		_, err = svc.CreateModule(ctx, studentID, f.courseID, &model.PostModuleRequest{Title: "   "})
		requireAppError(t, err, model.CodeForbidden, "insufficient permissions for create operation")

		_, err = svc.CreateModule(ctx, outsiderID, f.courseID, &model.PostModuleRequest{Title: "   "})
		requireAppError(t, err, model.CodeForbidden, "not assigned to this course")

		_, err = svc.CreateModule(ctx, teacherID, f.courseID, &model.PostModuleRequest{Title: "   "})
		requireAppError(t, err, model.CodeValidation, "title must not be empty")
		assert.Empty(t, titlesInOrder(t, svc, f.courseID))
	})

	t.Run("異常系: 親コースが無いモジュールは判定前に NotFound", func(t *testing.T) {
		f := setupFixture(t)
		svc := newModuleServiceForFixture(f)
		modules := createModules(t, svc, teacherID, f.courseID, "A")

		require.NoError(t, f.db.Where("course_id = ?", f.courseID).Delete(&model.CourseTeacher{}).Error)
		require.NoError(t, f.db.Where("course_id = ?", f.courseID).Delete(&model.Course{}).Error)

		err := svc.DeleteModule(ctx, adminID, modules[0].ModuleID)
		requireAppError(t, err, model.CodeNotFound, "course not found")

		var count int64
		require.NoError(t, f.db.Model(&model.CourseModule{}).Where("module_id = ?", modules[0].ModuleID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("異常系: 途中で失敗した並べ替えはロールバックされる", func(t *testing.T) {
		f := setupFixture(t)
		base := newModuleServiceForFixture(f)
		modules := createModules(t, base, adminID, f.courseID, "A", "B", "C", "D")

		failing := &failingModuleRepository{
			ModuleRepository: repository.NewGormModuleRepository(),
			failOnCall:       3,
		}
		svc := NewModuleService(f.db, failing, repository.NewGormLessonRepository(), repository.NewGormCourseRepository(), f.guard)

		_, err := svc.UpdateModule(ctx, adminID, modules[3].ModuleID, &model.PatchModuleRequest{OrderIndex: intPtr(1)})
		requireAppError(t, err, model.CodeConflict, "sibling order changed, please retry")

		assert.Equal(t, []string{"A", "B", "C", "D"}, titlesInOrder(t, base, f.courseID))
	})
}

// failingModuleRepository は failOnCall 回目の位置更新で競合を返します
type failingModuleRepository struct {
	repository.ModuleRepository
	calls      int
	failOnCall int
}

func (r *failingModuleRepository) UpdateOrderIndex(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, from, to int) error {
	r.calls++
	if r.calls == r.failOnCall {
		return model.ErrConflict
	}
	return r.ModuleRepository.UpdateOrderIndex(ctx, tx, moduleID, from, to)
}
