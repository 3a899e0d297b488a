package auth

import (
	"context"
	"time"
)

// Identity 是通过鉴权后附着在请求上下文中的调用者身份
type Identity struct {
	UserID    string
	UserName  string
	Email     string
	JTI       string
	ExpiresAt time.Time
}

type identityCtxKey struct{}

// WithIdentity 将身份写入上下文
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFromContext 读取上下文中的身份, 未鉴权时 ok 为 false
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	return id, ok
}
