// internal/middleware/auth_test.go
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_course_keep/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// actorEcho はコンテキストのアクターIDをそのまま書き返します
var actorEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(GetActorIDFromContext(r.Context())))
})

func TestJWTAuthMiddleware(t *testing.T) {
	handler := JWTAuthMiddleware(testSecret)(actorEcho)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "正常系: ヘッダー無しはアクター無しで通す",
			header:         "",
			expectedStatus: http.StatusOK,
			expectedBody:   "",
		},
		{
			name:           "正常系: sub をアクターIDにする",
			header:         "Bearer " + signToken(t, testSecret, jwt.RegisteredClaims{Subject: "teacher-1", ExpiresAt: future}),
			expectedStatus: http.StatusOK,
			expectedBody:   "teacher-1",
		},
		{
			name:           "異常系: 署名が違う",
			header:         "Bearer " + signToken(t, "other", jwt.RegisteredClaims{Subject: "teacher-1", ExpiresAt: future}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 期限切れ",
			header:         "Bearer " + signToken(t, testSecret, jwt.RegisteredClaims{Subject: "teacher-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: sub が無い",
			header:         "Bearer " + signToken(t, testSecret, jwt.RegisteredClaims{ExpiresAt: future}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: Bearer 以外",
			header:         "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
				return
			}

			var result model.Result
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
			assert.False(t, result.Success)
			assert.Equal(t, model.CodeUnauthenticated, result.Code)
		})
	}
}

func TestDevActorContextMiddleware(t *testing.T) {
	handler := DevActorContextMiddleware(actorEcho)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Actor-ID", "  admin-1 ")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "admin-1", rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "", rr.Body.String())
}

func TestFormatHeaders_MasksActorHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer abc")
	headers.Set("X-Actor-ID", "admin-1")
	headers.Set("Accept", "application/json")

	formatted := formatHeaders(headers)
	assert.Equal(t, "[SENSITIVE]", formatted["Authorization"])
	assert.Equal(t, "[SENSITIVE]", formatted["X-Actor-Id"])
	assert.Equal(t, "application/json", formatted["Accept"])
}
