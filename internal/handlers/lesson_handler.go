// internal/handlers/lesson_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"
	"go_course_keep/internal/service"
	"go_course_keep/internal/webutil"
)

type LessonHandler struct {
	service service.LessonService
	logger  *slog.Logger
}

func NewLessonHandler(s service.LessonService, logger *slog.Logger) *LessonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonHandler{
		service: s,
		logger:  logger,
	}
}

// PostLesson はモジュールにレッスンを追加します
func (h *LessonHandler) PostLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLesson"))

	moduleID, err := parseUUIDParam(r, "module_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostLessonRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	actorID := middleware.GetActorIDFromContext(r.Context())
	lesson, err := h.service.CreateLesson(r.Context(), actorID, moduleID, &req)
	if err != nil {
		logger.Warn("Error creating lesson in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson created successfully", slog.String("lesson_id", lesson.LessonID.String()))
	webutil.RespondWithSuccess(w, http.StatusCreated, lesson, logger)
}

// GetLessons はモジュール内のレッスンを order_index 順に返します
func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessons"))

	moduleID, err := parseUUIDParam(r, "module_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lessons, err := h.service.ListLessons(r.Context(), moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if lessons == nil {
		lessons = []*model.Lesson{}
	}
	webutil.RespondWithSuccess(w, http.StatusOK, lessons, logger)
}

// PatchLesson はレッスンを部分更新します
func (h *LessonHandler) PatchLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchLesson"))

	lessonID, err := parseUUIDParam(r, "lesson_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchLessonRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	actorID := middleware.GetActorIDFromContext(r.Context())
	lesson, err := h.service.UpdateLesson(r.Context(), actorID, lessonID, &req)
	if err != nil {
		logger.Warn("Error updating lesson in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson updated successfully", slog.String("lesson_id", lesson.LessonID.String()))
	webutil.RespondWithSuccess(w, http.StatusOK, lesson, logger)
}

func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteLesson"))

	lessonID, err := parseUUIDParam(r, "lesson_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	actorID := middleware.GetActorIDFromContext(r.Context())
	if err := h.service.DeleteLesson(r.Context(), actorID, lessonID); err != nil {
		logger.Warn("Error deleting lesson in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson deleted successfully", slog.String("lesson_id", lessonID.String()))
	webutil.RespondWithSuccess(w, http.StatusOK, nil, logger)
}
