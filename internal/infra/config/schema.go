// config/schema.go
package config

import (
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/http_server"
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/logging"
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/mysqlgorm"
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/prometheus"
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/redis"
	"github.com/radelytskyi20/TaskManagement/internal/infra/components/telemetry"
)

// AppConfig 应用程序配置结构
type AppConfig struct {
	APPInfo    *APPInfo                      `yaml:"app_info" json:"app_info"`
	Logging    *logging.LoggingConfig        `yaml:"logging" json:"logging"`
	MySQLGORM  *mysqlgorm.Config             `yaml:"mysql_gorm" json:"mysql_gorm"`
	Redis      *redis.Config                 `yaml:"redis" json:"redis"`
	HTTPServer *http_server.HTTPServerConfig `yaml:"http_server" json:"http_server"`
	Prometheus *prometheus.Config            `yaml:"prometheus" json:"prometheus"`
	Telemetry  *telemetry.Config             `yaml:"telemetry" json:"telemetry"`

	// BizConfig: 业务方自定义配置 (biz_config 小节), 通过 SetBizConfig 注入指针后二次解码
	BizConfig any `yaml:"biz_config" json:"biz_config"`
}

type APPInfo struct {
	APPName string `yaml:"app_name" json:"app_name"`
	ENV     string `yaml:"env" json:"env"`
}
