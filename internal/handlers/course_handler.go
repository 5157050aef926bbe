// internal/handlers/course_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"
	"go_course_keep/internal/service"
	"go_course_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// CourseHandler はコース担当教師の割り当て API を扱います
type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(s service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		service: s,
		logger:  logger,
	}
}

func (h *CourseHandler) GetTeachers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTeachers"))

	courseID, err := parseUUIDParam(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	roster, err := h.service.ListTeachers(r.Context(), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, roster, logger)
}

// PutTeacher は教師をコースに割り当てます。既に割り当て済みなら 409
func (h *CourseHandler) PutTeacher(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTeacher"))

	courseID, err := parseUUIDParam(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	teacherID := chi.URLParam(r, "teacher_id")
	if teacherID == "" {
		webutil.HandleError(w, logger, model.NewAppError(model.CodeValidation, "teacher_id is required", "teacher_id", model.ErrInvalidInput))
		return
	}

	actorID := middleware.GetActorIDFromContext(r.Context())
	roster, err := h.service.AssignTeacher(r.Context(), actorID, courseID, teacherID)
	if err != nil {
		logger.Warn("Error assigning teacher in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Teacher assigned successfully", slog.String("course_id", courseID.String()), slog.String("teacher_id", teacherID))
	webutil.RespondWithSuccess(w, http.StatusOK, roster, logger)
}

func (h *CourseHandler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTeacher"))

	courseID, err := parseUUIDParam(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	teacherID := chi.URLParam(r, "teacher_id")

	actorID := middleware.GetActorIDFromContext(r.Context())
	roster, err := h.service.UnassignTeacher(r.Context(), actorID, courseID, teacherID)
	if err != nil {
		logger.Warn("Error unassigning teacher in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Teacher unassigned successfully", slog.String("course_id", courseID.String()), slog.String("teacher_id", teacherID))
	webutil.RespondWithSuccess(w, http.StatusOK, roster, logger)
}
