package consts

// Component names for the task management service.
const (
	COMP_DAO_TASK = "dao_task"
	COMP_DAO_USER = "dao_user"

	COMP_SVC_TASK = "task_service"
	COMP_SVC_USER = "user_service"

	COMP_JWT_PROVIDER = "jwt_provider"
	COMP_TOKEN_STORE  = "token_store"

	COMP_CTRL_TASK = "task_ctrl"
	COMP_CTRL_USER = "user_ctrl"
)

// Datasource name under mysql_gorm.data_sources in config.yaml.
const DS_TASKS = "tasks"
