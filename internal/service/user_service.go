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

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/dao"
	"github.com/radelytskyi20/TaskManagement/internal/model"
)

// RegisterInput 是注册入参
type RegisterInput struct {
	UserName string
	Email    string
	Password string
}

// LoginInput 是登录入参, Identifier 可以是用户名或邮箱
type LoginInput struct {
	Identifier string
	Password   string
}

// LoginPayload 是登录成功的出参
type LoginPayload struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      model.UserDTO `json:"user"`
}

// UserService 封装注册, 登录与登出
type UserService interface {
	core.Component

	Register(ctx context.Context, in RegisterInput) (model.Result, error)
	Login(ctx context.Context, in LoginInput) (model.PayloadResult[LoginPayload], error)
	Logout(ctx context.Context, id auth.Identity) (model.Result, error)
}

type userServiceImpl struct {
	*core.BaseComponent

	UserDao dao.UserDao       `infra:"dep:dao_user"`
	JWT     *auth.JwtProvider `infra:"dep:jwt_provider"`
	Tokens  auth.TokenStore   `infra:"dep:token_store?"`

	validator *auth.PasswordValidator
}

func NewUserService(validator *auth.PasswordValidator) UserService {
	return &userServiceImpl{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_SVC_USER,
			bizConsts.COMP_DAO_USER, bizConsts.COMP_JWT_PROVIDER, infraConsts.COMPONENT_LOGGING),
		validator: validator,
	}
}

func (s *userServiceImpl) Start(ctx context.Context) error {
	return s.BaseComponent.Start(ctx)
}

func (s *userServiceImpl) Stop(ctx context.Context) error {
	return s.BaseComponent.Stop(ctx)
}

func (s *userServiceImpl) Register(ctx context.Context, in RegisterInput) (model.Result, error) {
	if _, err := s.UserDao.GetByUserName(ctx, in.UserName); err == nil {
		return model.FailResult(bizConsts.ErrUsernameTaken), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FailResult(), err
	}

	if _, err := s.UserDao.GetByEmail(ctx, in.Email); err == nil {
		return model.FailResult(bizConsts.ErrEmailTaken), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FailResult(), err
	}

	if res := s.validator.Validate(in.Password); !res.Succeeded() {
		return res, nil
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return model.FailResult(), err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.UserDao.Create(ctx, u); err != nil {
		logging.Error(ctx, "create user failed", zap.Error(err))
		return model.FailResult(), err
	}

	logging.Info(ctx, "user registered", zap.String("user_id", u.ID))
	return model.OkResult(), nil
}

func (s *userServiceImpl) Login(ctx context.Context, in LoginInput) (model.PayloadResult[LoginPayload], error) {
	u, err := s.UserDao.GetByUserName(ctx, in.Identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.UserDao.GetByEmail(ctx, in.Identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.FailPayload[LoginPayload](bizConsts.ErrUserNotFound), nil
		}
		return model.FailPayload[LoginPayload](), err
	}

	if !auth.VerifyPassword(u.PasswordHash, in.Password) {
		return model.FailPayload[LoginPayload](bizConsts.ErrBadPassword), nil
	}

	token, _, expiresAt, err := s.JWT.Issue(u)
	if err != nil {
		logging.Error(ctx, "issue token failed", zap.Error(err))
		return model.FailPayload[LoginPayload](), err
	}

	return model.OkPayload(LoginPayload{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      u.ToDTO(),
	}), nil
}

func (s *userServiceImpl) Logout(ctx context.Context, id auth.Identity) (model.Result, error) {
	if s.Tokens == nil {
		// 无吊销存储时登出即为空操作, 令牌自然过期
		return model.OkResult(), nil
	}
	if err := s.Tokens.Revoke(ctx, id.JTI, time.Until(id.ExpiresAt)); err != nil {
		logging.Error(ctx, "revoke token failed", zap.Error(err))
		return model.FailResult(), err
	}
	return model.OkResult(), nil
}
