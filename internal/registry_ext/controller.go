package registry_ext

import (
	infraConfig "github.com/radelytskyi20/TaskManagement/internal/infra/config"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
	"github.com/radelytskyi20/TaskManagement/internal/infra/registry"

	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/controller"
)

func init() {
	// Ensure http_server starts after the controllers it routes to.
	registry.ExtendRuntimeDependencies(infraConsts.COMPONENT_HTTP_SERVER,
		bizConsts.COMP_CTRL_TASK, bizConsts.COMP_CTRL_USER)

	registry.RegisterAuto(func(cfg *infraConfig.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, controller.NewTaskController(), nil
	})
	registry.RegisterAuto(func(cfg *infraConfig.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, controller.NewUserController(), nil
	})
}
