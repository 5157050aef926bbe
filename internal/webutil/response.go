// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_course_keep/internal/model"
)

// HandleError はエラーを解釈し、{"success": false, "error": ...} 形式で返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		// AppError ではない予期せぬエラー: ログには詳細、クライアントには汎用メッセージ
		logger.Error("Unhandled error", slog.Any("error", err))
		appErr = model.NewAppError(model.CodeInternal, model.MsgOperationFailed, "", err)
	}

	RespondWithJSON(w, statusCode, model.Result{
		Success: false,
		Error:   appErr.Message,
		Code:    appErr.Code,
		Field:   appErr.Field,
	}, logger)
}

// RespondWithSuccess は {"success": true, "data": ...} 形式で返します。
func RespondWithSuccess(w http.ResponseWriter, code int, data interface{}, logger *slog.Logger) {
	RespondWithJSON(w, code, model.Result{Success: true, Data: data}, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"operation failed","code":"INTERNAL_SERVER_ERROR"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
