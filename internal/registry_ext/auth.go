package registry_ext

import (
	infraConfig "github.com/radelytskyi20/TaskManagement/internal/infra/config"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
	"github.com/radelytskyi20/TaskManagement/internal/infra/registry"

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	bizConfig "github.com/radelytskyi20/TaskManagement/internal/config"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
)

// bizConfigOf 取业务配置, 未配置时回退默认值
func bizConfigOf(cfg *infraConfig.AppConfig) *bizConfig.Config {
	if bc, ok := cfg.BizConfig.(*bizConfig.Config); ok && bc != nil {
		return bc
	}
	return bizConfig.Default()
}

func init() {
	registry.RegisterAuto(func(cfg *infraConfig.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, auth.NewJwtProvider(bizConfigOf(cfg).Auth.JWT), nil
	})
	registry.RegisterAuto(func(cfg *infraConfig.AppConfig, c *core.Container) (bool, core.Component, error) {
		// 吊销存储依赖 redis, 未开启时不注册, 登出退化为无吊销
		if cfg.Redis == nil || !cfg.Redis.Enabled {
			return false, nil, nil
		}
		// 服务启动顺序上, http_server 需要等吊销存储就绪
		registry.ExtendRuntimeDependencies(infraConsts.COMPONENT_HTTP_SERVER, bizConsts.COMP_TOKEN_STORE)
		return true, auth.NewTokenStore(), nil
	})
}
