// internal/handlers/module_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_course_keep/internal/middleware"
	"go_course_keep/internal/model"
	"go_course_keep/internal/service"
	"go_course_keep/internal/webutil"
)

type ModuleHandler struct {
	service service.ModuleService
	logger  *slog.Logger
}

func NewModuleHandler(s service.ModuleService, logger *slog.Logger) *ModuleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModuleHandler{
		service: s,
		logger:  logger,
	}
}

// PostModule はコースにモジュールを追加します
func (h *ModuleHandler) PostModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostModule"))

	courseID, err := parseUUIDParam(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostModuleRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	actorID := middleware.GetActorIDFromContext(r.Context())
	module, err := h.service.CreateModule(r.Context(), actorID, courseID, &req)
	if err != nil {
		logger.Warn("Error creating module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module created successfully", slog.String("module_id", module.ModuleID.String()))
	webutil.RespondWithSuccess(w, http.StatusCreated, module, logger)
}

// GetModules はコース内のモジュールを order_index 順に返します
func (h *ModuleHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModules"))

	courseID, err := parseUUIDParam(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	modules, err := h.service.ListModules(r.Context(), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if modules == nil {
		modules = []*model.CourseModule{}
	}
	webutil.RespondWithSuccess(w, http.StatusOK, modules, logger)
}

// PatchModule はモジュールを部分更新します (order_index の変更を含む)
func (h *ModuleHandler) PatchModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchModule"))

	moduleID, err := parseUUIDParam(r, "module_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchModuleRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	actorID := middleware.GetActorIDFromContext(r.Context())
	module, err := h.service.UpdateModule(r.Context(), actorID, moduleID, &req)
	if err != nil {
		logger.Warn("Error updating module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module updated successfully", slog.String("module_id", module.ModuleID.String()))
	webutil.RespondWithSuccess(w, http.StatusOK, module, logger)
}

func (h *ModuleHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteModule"))

	moduleID, err := parseUUIDParam(r, "module_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	actorID := middleware.GetActorIDFromContext(r.Context())
	if err := h.service.DeleteModule(r.Context(), actorID, moduleID); err != nil {
		logger.Warn("Error deleting module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module deleted successfully", slog.String("module_id", moduleID.String()))
	webutil.RespondWithSuccess(w, http.StatusOK, nil, logger)
}
