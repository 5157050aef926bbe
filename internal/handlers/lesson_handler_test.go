// internal/handlers/lesson_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"go_course_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLessonHandler(t *testing.T) {
	moduleID := uuid.New()
	lessonID := uuid.New()

	t.Run("正常系: モジュールへの追加", func(t *testing.T) {
		router, s := newTestRouter(t)
		order := 1
		s.lesson.On("CreateLesson", mock.Anything, "teacher-1", moduleID, &model.PostLessonRequest{Title: "L1", OrderIndex: &order}).
			Return(&model.Lesson{LessonID: lessonID, ModuleID: moduleID, Title: "L1", OrderIndex: 1}, nil).Once()

		rr, result := doRequest(t, router, http.MethodPost, "/api/v1/modules/"+moduleID.String()+"/lessons", "teacher-1",
			map[string]interface{}{"title": "L1", "order_index": 1})
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, result.Success)
	})

	t.Run("異常系: 未知のフィールド", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr, result := doRequest(t, router, http.MethodPatch, "/api/v1/lessons/"+lessonID.String(), "teacher-1",
			map[string]interface{}{"position": 1})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "request body is malformed", result.Error)
	})

	t.Run("異常系: 1件のモジュールで 2 を指定", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.lesson.On("UpdateLesson", mock.Anything, "teacher-1", lessonID, mock.AnythingOfType("*model.PatchLessonRequest")).
			Return(nil, model.NewAppError(model.CodeValidation, "order must be between 1 and 1", "order_index", model.ErrInvalidInput)).Once()

		rr, result := doRequest(t, router, http.MethodPatch, "/api/v1/lessons/"+lessonID.String(), "teacher-1",
			map[string]interface{}{"order_index": 2})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "order must be between 1 and 1", result.Error)
		assert.Equal(t, "order_index", result.Field)
	})

	t.Run("正常系: 削除と一覧", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.lesson.On("DeleteLesson", mock.Anything, "admin-1", lessonID).Return(nil).Once()
		s.lesson.On("ListLessons", mock.Anything, moduleID).
			Return([]*model.Lesson{{LessonID: uuid.New(), ModuleID: moduleID, Title: "L2", OrderIndex: 1}}, nil).Once()

		rr, _ := doRequest(t, router, http.MethodDelete, "/api/v1/lessons/"+lessonID.String(), "admin-1", nil)
		assert.Equal(t, http.StatusOK, rr.Code)

		rr, result := doRequest(t, router, http.MethodGet, "/api/v1/modules/"+moduleID.String()+"/lessons", "", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, result.Data, 1)
	})
}
