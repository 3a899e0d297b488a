package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/radelytskyi20/TaskManagement/internal/infra/components/logging"
)

// Middleware 校验 Bearer 令牌并把 Identity 写入请求上下文.
// tokens 可为 nil, 此时跳过吊销检查.
func Middleware(provider *JwtProvider, tokens TokenStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				unauthorized(w)
				return
			}

			claims, err := provider.Parse(raw)
			if err != nil {
				logging.Debug(r.Context(), "token parse failed", zap.Error(err))
				unauthorized(w)
				return
			}

			if tokens != nil {
				revoked, err := tokens.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					logging.Warn(r.Context(), "revocation check failed", zap.Error(err))
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				if revoked {
					unauthorized(w)
					return
				}
			}

			id := Identity{
				UserID:   claims.Subject,
				UserName: claims.Name,
				Email:    claims.Email,
				JTI:      claims.ID,
			}
			if claims.ExpiresAt != nil {
				id.ExpiresAt = claims.ExpiresAt.Time
			}
			ctx := WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="taskmgmt"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
