// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"
	"strings"
)

// DevActorContextMiddleware は開発時用ミドルウェアです。
// X-Actor-ID ヘッダーの値をそのままアクターIDとしてコンテキストに設定します。
// 署名の検証は行いません。ヘッダーが無い場合は未認証として扱います。
func DevActorContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := strings.TrimSpace(r.Header.Get("X-Actor-ID"))
		if actorID == "" {
			next.ServeHTTP(w, r)
			return
		}

		GetLogger(r.Context()).Debug("[DEV AUTH] Actor ID set to context (no validation)", "actor_id", actorID)
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actorID)))
	})
}
