package registry_ext

import (
	infraConfig "github.com/radelytskyi20/TaskManagement/internal/infra/config"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
	"github.com/radelytskyi20/TaskManagement/internal/infra/registry"

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	"github.com/radelytskyi20/TaskManagement/internal/service"
)

func init() {
	registry.RegisterAuto(func(cfg *infraConfig.AppConfig, c *core.Container) (bool, core.Component, error) {
		return true, service.NewTaskService(), nil
	})
	registry.RegisterAuto(func(cfg *infraConfig.AppConfig, c *core.Container) (bool, core.Component, error) {
		validator := auth.NewPasswordValidator(bizConfigOf(cfg).Auth.Password)
		return true, service.NewUserService(validator), nil
	})
}
