package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/radelytskyi20/TaskManagement/internal/config"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
	"github.com/radelytskyi20/TaskManagement/internal/model"
)

var ErrTokenInvalid = errors.New("token is invalid")

// Claims 是本服务签发的 JWT 载荷
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JwtProvider 负责签发与解析访问令牌, HS256 签名
type JwtProvider struct {
	*core.BaseComponent
	opts config.JWTOptions
}

func NewJwtProvider(opts config.JWTOptions) *JwtProvider {
	return &JwtProvider{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_JWT_PROVIDER, infraConsts.COMPONENT_LOGGING),
		opts:          opts,
	}
}

func (p *JwtProvider) Start(ctx context.Context) error {
	if p.opts.SecretKey == "" {
		return fmt.Errorf("jwt provider: secret key is empty")
	}
	return p.BaseComponent.Start(ctx)
}

func (p *JwtProvider) Stop(ctx context.Context) error {
	return p.BaseComponent.Stop(ctx)
}

// Issue 为用户签发访问令牌, 返回令牌串与 jti
func (p *JwtProvider) Issue(user *model.User) (token string, jti string, expiresAt time.Time, err error) {
	now := time.Now()
	jti = uuid.NewString()
	expiresAt = now.Add(time.Duration(p.opts.ExpiresMinutes) * time.Minute)

	claims := Claims{
		Name:  user.UserName,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        jti,
			Issuer:    p.opts.Issuer,
			Audience:  jwt.ClaimStrings{p.opts.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(p.opts.SecretKey))
	if err != nil {
		return "", "", time.Time{}, err
	}
	return token, jti, expiresAt, nil
}

// Parse 解析并校验令牌签名, 签发者与受众
func (p *JwtProvider) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(p.opts.SecretKey), nil
	},
		jwt.WithIssuer(p.opts.Issuer),
		jwt.WithAudience(p.opts.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
