// internal/handlers/helpers.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"go_course_keep/internal/model"
	"go_course_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parseUUIDParam は URL パラメータを UUID として読み取ります
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError(
			model.CodeValidation,
			fmt.Sprintf("%s is not a valid id", name),
			name,
			model.ErrInvalidInput,
		)
	}
	return id, nil
}

// decodeAndValidate はボディのデコードとバリデーションをまとめて行います
func decodeAndValidate(r *http.Request, logger *slog.Logger, dst interface{}) error {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		return err
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
