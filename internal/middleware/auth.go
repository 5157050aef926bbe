package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_course_keep/internal/model"
	"go_course_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// subject をアクターIDとしてコンテキストにセットします。
// ヘッダーが無い場合はアクター無しのまま次へ渡す (拒否は AccessGuard が行う)。
func JWTAuthMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError(model.CodeUnauthenticated, "invalid authorization header", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// jwt.Parse は署名と有効期限(exp)の両方を検証する
			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errUnexpectedSigningMethod
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError(model.CodeUnauthenticated, "invalid token", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError(model.CodeUnauthenticated, "token has no subject", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r.WithContext(withActor(r.Context(), subject)))
		})
	}
}

// withActor はアクターIDとアクター付きロガーをコンテキストにセットします
func withActor(ctx context.Context, actorID string) context.Context {
	ctx = context.WithValue(ctx, model.ActorIDKey, actorID)
	recordActor(ctx, actorID)
	return WithLogger(ctx, GetLogger(ctx).With("actor_id", actorID))
}

// GetActorIDFromContext はコンテキストからアクターIDを取得します。
// 未認証の場合は空文字を返す。
func GetActorIDFromContext(ctx context.Context) string {
	actorID, _ := ctx.Value(model.ActorIDKey).(string)
	return actorID
}
