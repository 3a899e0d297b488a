package main

import (
	"flag"
	"log"

	"github.com/radelytskyi20/TaskManagement/internal/infra"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"

	bizConfig "github.com/radelytskyi20/TaskManagement/internal/config"

	// 路由与组件注册通过 init() 完成
	_ "github.com/radelytskyi20/TaskManagement/internal/api"
	_ "github.com/radelytskyi20/TaskManagement/internal/registry_ext"
)

func main() {
	cfgPath := flag.String("config", infraConsts.DEFAULT_CONFIG_PATH, "config file path")
	env := flag.String("env", infraConsts.ENV_DEVELOPMENT, "runtime environment")
	flag.Parse()

	app := infra.NewApp(*env, *cfgPath)
	app.SetBizConfig(bizConfig.Default())

	if err := app.Run(); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
