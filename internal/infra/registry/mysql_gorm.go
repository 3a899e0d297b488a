package registry

import (
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/mysqlgorm"
	"github.com/radelytskyi20/TaskManagement/internal/infra/config"
	"github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
)

func init() {
	Register(consts.COMPONENT_MYSQL_GORM, func(cfg *config.AppConfig, c *core.Container) (bool, core.Component, error) {
		if cfg.MySQLGORM == nil || !cfg.MySQLGORM.Enabled {
			return false, nil, nil
		}
		factory := mysqlgorm.NewFactory()
		comp, err := factory.Create(cfg.MySQLGORM)
		if err != nil {
			return true, nil, err
		}
		return true, comp, nil
	})
}
