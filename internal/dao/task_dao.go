package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	mg "github.com/radelytskyi20/TaskManagement/internal/infra/components/mysqlgorm"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/model"
	"github.com/radelytskyi20/TaskManagement/internal/query"
)

type TaskDao interface {
	// Embed component so registry builders can return it where core.Component is required.
	core.Component

	Create(ctx context.Context, t *model.Task) error
	// Get looks a task up by identifier without owner pre-filtering; ownership
	// for single-record paths is enforced by the service-layer gate.
	Get(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id string) error
	// GetAll composes filter, range filter, ordering and pagination into one
	// lazy query pushed down to the store.
	GetAll(ctx context.Context, opts *query.TaskQueryOptions) ([]*model.Task, error)
	Count(ctx context.Context, opts *query.TaskQueryOptions) (int64, error)
}

type taskDaoImpl struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	db       *gorm.DB
	dsName   string
}

func NewTaskDao(dsName string) TaskDao {
	return &taskDaoImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_DAO_TASK, infraConsts.COMPONENT_LOGGING),
		dsName:        dsName,
	}
}

func (d *taskDaoImpl) Start(ctx context.Context) error {
	if err := d.BaseComponent.Start(ctx); err != nil {
		return err
	}
	db, err := d.GormComp.GetDB(d.dsName)
	if err != nil {
		return fmt.Errorf("get gorm db %s failed: %w", d.dsName, err)
	}
	d.db = db
	return nil
}

func (d *taskDaoImpl) Stop(ctx context.Context) error {
	return d.BaseComponent.Stop(ctx)
}

func (d *taskDaoImpl) Create(ctx context.Context, t *model.Task) error {
	return d.db.WithContext(ctx).Create(t).Error
}

func (d *taskDaoImpl) Get(ctx context.Context, id string) (*model.Task, error) {
	var t model.Task
	if err := d.db.WithContext(ctx).Where("id=?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *taskDaoImpl) Update(ctx context.Context, t *model.Task) error {
	if t.ID == "" {
		return fmt.Errorf("update requires id")
	}
	return d.db.WithContext(ctx).Save(t).Error
}

func (d *taskDaoImpl) Delete(ctx context.Context, id string) error {
	res := d.db.WithContext(ctx).Where("id=?", id).Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *taskDaoImpl) GetAll(ctx context.Context, opts *query.TaskQueryOptions) ([]*model.Task, error) {
	q, err := d.applyFilters(d.db.WithContext(ctx).Model(&model.Task{}), opts)
	if err != nil {
		return nil, err
	}
	for _, col := range query.TaskOrderBy(opts.Sort) {
		q = q.Order(col)
	}
	q = q.Scopes(query.Paginate(opts.Page, opts.PageSize))

	var list []*model.Task
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (d *taskDaoImpl) Count(ctx context.Context, opts *query.TaskQueryOptions) (int64, error) {
	q, err := d.applyFilters(d.db.WithContext(ctx).Model(&model.Task{}), opts)
	if err != nil {
		return 0, err
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// applyFilters attaches the value and range predicates without materializing
// anything; the store evaluates the whole composition in one statement.
func (d *taskDaoImpl) applyFilters(q *gorm.DB, opts *query.TaskQueryOptions) (*gorm.DB, error) {
	expr, err := query.BuildTaskFilter(opts)
	if err != nil {
		return nil, err
	}
	if expr != nil {
		q = q.Where(expr)
	}
	rangeExpr, err := query.BuildTaskRangeFilter(opts)
	if err != nil {
		return nil, err
	}
	if rangeExpr != nil {
		q = q.Where(rangeExpr)
	}
	return q, nil
}
