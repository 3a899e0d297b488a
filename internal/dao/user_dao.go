package dao

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	mg "github.com/radelytskyi20/TaskManagement/internal/infra/components/mysqlgorm"
	infraConsts "github.com/radelytskyi20/TaskManagement/internal/infra/consts"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/model"
)

type UserDao interface {
	core.Component

	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id string) (*model.User, error)
	GetByUserName(ctx context.Context, name string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type userDaoImpl struct {
	*core.BaseComponent
	GormComp *mg.GormComponent `infra:"dep:mysql_gorm"`
	db       *gorm.DB
	dsName   string
}

func NewUserDao(dsName string) UserDao {
	return &userDaoImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_DAO_USER, infraConsts.COMPONENT_LOGGING),
		dsName:        dsName,
	}
}

func (d *userDaoImpl) Start(ctx context.Context) error {
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

func (d *userDaoImpl) Stop(ctx context.Context) error {
	return d.BaseComponent.Stop(ctx)
}

func (d *userDaoImpl) Create(ctx context.Context, u *model.User) error {
	u.UserName = strings.TrimSpace(u.UserName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return d.db.WithContext(ctx).Create(u).Error
}

func (d *userDaoImpl) Get(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := d.db.WithContext(ctx).Where("id=?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *userDaoImpl) GetByUserName(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	if err := d.db.WithContext(ctx).Where("username=?", strings.TrimSpace(name)).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *userDaoImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := d.db.WithContext(ctx).Where("email=?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
