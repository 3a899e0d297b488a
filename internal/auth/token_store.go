package auth

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	rediscomp "github.com/radelytskyi20/TaskManagement/internal/infra/components/redis"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
)

// TokenStore 记录被吊销的令牌 jti, 登出时写入, 鉴权时查询
type TokenStore interface {
	core.Component
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// redisTokenStore 基于 Redis 的吊销存储, key 带 TTL 随令牌过期自动清理
type redisTokenStore struct {
	*core.BaseComponent

	RedisComp *rediscomp.RedisComponent `infra:"dep:redis"`

	client goredis.UniversalClient
}

func NewTokenStore() TokenStore {
	return &redisTokenStore{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_TOKEN_STORE,
			infraConsts.COMPONENT_REDIS, infraConsts.COMPONENT_LOGGING),
	}
}

func (s *redisTokenStore) Start(ctx context.Context) error {
	if s.RedisComp == nil {
		return fmt.Errorf("token store: redis component not injected")
	}
	s.client = s.RedisComp.Client()
	if s.client == nil {
		return fmt.Errorf("token store: redis client not ready")
	}
	return s.BaseComponent.Start(ctx)
}

func (s *redisTokenStore) Stop(ctx context.Context) error {
	return s.BaseComponent.Stop(ctx)
}

func revokedKey(jti string) string {
	return "auth:revoked:" + jti
}

func (s *redisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// 令牌已过期, 无需记录
		return nil
	}
	return s.client.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
