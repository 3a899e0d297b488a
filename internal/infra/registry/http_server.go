package registry

import (
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/http_server"
	"github.com/radelytskyi20/TaskManagement/internal/infra/config"
	"github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
)

func init() {
	Register(consts.COMPONENT_HTTP_SERVER, func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		if cfg.HTTPServer == nil || !cfg.HTTPServer.Enabled {
			return false, nil, nil
		}
		if cfg.HTTPServer.ServiceName == "" && cfg.APPInfo != nil {
			cfg.HTTPServer.ServiceName = cfg.APPInfo.APPName
		}
		// 请求指标中间件依赖 prometheus 组件先注册好全局入口
		if cfg.Prometheus != nil && cfg.Prometheus.Enabled {
			ExtendRuntimeDependencies(consts.COMPONENT_HTTP_SERVER, consts.COMPONENT_PROMETHEUS)
		}
		factory := http_server.NewFactory(c)
		comp, err := factory.Create(cfg.HTTPServer)
		if err != nil {
			return true, nil, err
		}
		return true, comp, nil
	})
}
