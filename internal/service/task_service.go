package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/radelytskyi20/TaskManagement/internal/infra/components/logging"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/dao"
	"github.com/radelytskyi20/TaskManagement/internal/model"
	"github.com/radelytskyi20/TaskManagement/internal/query"
)

// TaskWrite 是创建任务的入参
type TaskWrite struct {
	Name        string
	Description string
	DueDate     *time.Time
	Status      int
	Priority    int
}

// TaskPatch 是部分更新任务的入参, nil 字段保留原值
type TaskPatch struct {
	Name        *string
	Description *string
	DueDate     *time.Time
	Status      *int
	Priority    *int
}

// TaskPage 是分页列表的出参
type TaskPage struct {
	Items    []model.TaskDTO `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// TaskService 封装任务的增删改查.
// 单条记录操作先做归属校验: 记录不存在返回失败, 归属他人返回 Forbidden;
// 列表查询不走该校验, 归属约束由查询条件强制携带.
type TaskService interface {
	core.Component

	Create(ctx context.Context, userID string, in TaskWrite) (model.Result, error)
	Get(ctx context.Context, userID, id string) (model.PayloadResult[model.TaskDTO], error)
	Update(ctx context.Context, userID, id string, in TaskPatch) (model.Result, error)
	Delete(ctx context.Context, userID, id string) (model.Result, error)
	GetAll(ctx context.Context, userID string, p query.ListParams) (model.PayloadResult[TaskPage], error)
}

type taskServiceImpl struct {
	*core.BaseComponent

	TaskDao dao.TaskDao `infra:"dep:dao_task"`
}

func NewTaskService() TaskService {
	return &taskServiceImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_TASK,
			bizConsts.COMP_DAO_TASK, infraConsts.COMPONENT_LOGGING),
	}
}

func (s *taskServiceImpl) Start(ctx context.Context) error {
	return s.BaseComponent.Start(ctx)
}

func (s *taskServiceImpl) Stop(ctx context.Context) error {
	return s.BaseComponent.Stop(ctx)
}

// validateWrite 校验状态与优先级编码, 聚合全部错误
func validateWrite(in TaskWrite) (model.TaskStatus, model.TaskPriority, []string) {
	var errs []string
	st, err := model.ParseTaskStatus(in.Status)
	if err != nil {
		errs = append(errs, err.Error())
	}
	pr, err := model.ParseTaskPriority(in.Priority)
	if err != nil {
		errs = append(errs, err.Error())
	}
	if in.Name == "" {
		errs = append(errs, "Task name is required.")
	}
	return st, pr, errs
}

func (s *taskServiceImpl) Create(ctx context.Context, userID string, in TaskWrite) (model.Result, error) {
	st, pr, errs := validateWrite(in)
	if len(errs) > 0 {
		return model.FailResult(errs...), nil
	}

	t := &model.Task{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      st,
		Priority:    pr,
		UserID:      userID,
	}
	if err := s.TaskDao.Create(ctx, t); err != nil {
		logging.Error(ctx, "create task failed", zap.Error(err))
		return model.FailResult(), err
	}
	return model.OkResult(), nil
}

// authorize 加载记录并执行归属门禁.
// 返回 (task, result, err): task 非 nil 表示放行; result 为 not-found/forbidden
// 的出参; err 为意外的存储错误.
func (s *taskServiceImpl) authorize(ctx context.Context, userID, id string) (*model.Task, model.Result, error) {
	t, err := s.TaskDao.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.FailResult(bizConsts.ErrTaskNotFound), nil
		}
		return nil, model.FailResult(), err
	}
	if t.UserID != userID {
		return nil, model.ForbiddenResult(), nil
	}
	return t, model.Result{}, nil
}

func (s *taskServiceImpl) Get(ctx context.Context, userID, id string) (model.PayloadResult[model.TaskDTO], error) {
	t, res, err := s.authorize(ctx, userID, id)
	if err != nil {
		return model.FailPayload[model.TaskDTO](), err
	}
	if t == nil {
		return model.PayloadResult[model.TaskDTO]{Result: res}, nil
	}
	return model.OkPayload(t.ToDTO()), nil
}

// applyPatch 将非 nil 字段合并到已加载记录上, 返回聚合后的校验错误
func applyPatch(t *model.Task, in TaskPatch) []string {
	var errs []string
	st, pr := t.Status, t.Priority
	if in.Status != nil {
		v, err := model.ParseTaskStatus(*in.Status)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			st = v
		}
	}
	if in.Priority != nil {
		v, err := model.ParseTaskPriority(*in.Priority)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			pr = v
		}
	}
	if in.Name != nil && *in.Name == "" {
		errs = append(errs, "Task name is required.")
	}
	if len(errs) > 0 {
		return errs
	}

	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	t.Status = st
	t.Priority = pr
	return nil
}

func (s *taskServiceImpl) Update(ctx context.Context, userID, id string, in TaskPatch) (model.Result, error) {
	t, res, err := s.authorize(ctx, userID, id)
	if err != nil {
		return model.FailResult(), err
	}
	if t == nil {
		return res, nil
	}

	if errs := applyPatch(t, in); len(errs) > 0 {
		return model.FailResult(errs...), nil
	}
	if err := s.TaskDao.Update(ctx, t); err != nil {
		logging.Error(ctx, "update task failed", zap.String("id", id), zap.Error(err))
		return model.FailResult(), err
	}
	return model.OkResult(), nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, userID, id string) (model.Result, error) {
	t, res, err := s.authorize(ctx, userID, id)
	if err != nil {
		return model.FailResult(), err
	}
	if t == nil {
		return res, nil
	}

	if err := s.TaskDao.Delete(ctx, t.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.FailResult(bizConsts.ErrTaskNotFound), nil
		}
		logging.Error(ctx, "delete task failed", zap.String("id", id), zap.Error(err))
		return model.FailResult(), err
	}
	return model.OkResult(), nil
}

func (s *taskServiceImpl) GetAll(ctx context.Context, userID string, p query.ListParams) (model.PayloadResult[TaskPage], error) {
	opts := query.NewTaskQueryOptions(userID, p)
	// 先行校验过滤编码, 非法取值按业务失败返回而不是 500
	if _, err := query.BuildTaskFilter(opts); err != nil {
		return model.FailPayload[TaskPage](err.Error()), nil
	}

	tasks, err := s.TaskDao.GetAll(ctx, opts)
	if err != nil {
		logging.Error(ctx, "list tasks failed", zap.Error(err))
		return model.FailPayload[TaskPage](), err
	}
	total, err := s.TaskDao.Count(ctx, opts)
	if err != nil {
		logging.Error(ctx, "count tasks failed", zap.Error(err))
		return model.FailPayload[TaskPage](), err
	}
	return model.OkPayload(TaskPage{
		Items:    model.ToDTOs(tasks),
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}), nil
}
