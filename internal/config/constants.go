// internal/config/constants.go
package config

import "strings"

// アプリケーション情報
const (
	AppName    = "CourseKeep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultAuthEnabled = true
)

// ネストしたキー (database.url) を環境変数名 (APP_DATABASE_URL) に対応させる
var envKeyReplacer = strings.NewReplacer(".", "_")
