package webutil

import (
	"encoding/json"
	"net/http"

	"go_course_keep/internal/model"
)

const msgMalformedBody = "request body is malformed"

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラー
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError(model.CodeValidation, msgMalformedBody, "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError(model.CodeValidation, msgMalformedBody, "", model.ErrInvalidInput)
	}
	return nil
}
