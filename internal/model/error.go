// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("resource conflict") // 並び順の競合・重複エラー用
)

// エラーコード (レスポンスの code フィールド)
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// MsgOperationFailed は原因メッセージが取得できない場合の汎用メッセージ
const MsgOperationFailed = "operation failed"

// AppError はクライアントに返すメッセージと、判定用の根本エラーを保持します。
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewCollaboratorError はリポジトリ等の失敗を AppError に変換します。
// 既に AppError の場合はそのまま返します。
func NewCollaboratorError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := MsgOperationFailed
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return NewAppError(CodeInternal, msg, "", errors.Join(ErrInternalServer, err))
}

// Result は API レスポンスの共通エンベロープです。
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Field   string      `json:"field,omitempty"`
}
