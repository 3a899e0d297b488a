package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/service"
)

type UserController struct {
	*core.BaseComponent
	Svc service.UserService `infra:"dep:user_service"`
}

func NewUserController() *UserController {
	return &UserController{BaseComponent: core.NewBaseComponent(bizConsts.COMP_CTRL_USER)}
}

func (c *UserController) Start(ctx context.Context) error { return c.BaseComponent.Start(ctx) }
func (c *UserController) Stop(ctx context.Context) error  { return c.BaseComponent.Stop(ctx) }

type registerRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// identifier 兼容用户名或邮箱
type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// ---- handlers ----

// POST /api/v1/users/register
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Errors: []string{"invalid json"}})
		return
	}

	res, err := c.Svc.Register(ctx, service.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Errors: []string{err.Error()}})
		return
	}
	if !res.Succeeded() {
		writeJSON(w, http.StatusBadRequest, apiError{Errors: res.Errors})
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// POST /api/v1/users/login
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Errors: []string{"invalid json"}})
		return
	}

	res, err := c.Svc.Login(ctx, service.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Errors: []string{err.Error()}})
		return
	}
	if !res.Succeeded() {
		writeJSON(w, http.StatusUnauthorized, apiError{Errors: res.Errors})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse[any]{Data: res.Payload})
}

// POST /api/v1/users/logout
func (c *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Errors: []string{"unauthorized"}})
		return
	}

	res, err := c.Svc.Logout(ctx, id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Errors: []string{err.Error()}})
		return
	}
	if !res.Succeeded() {
		writeJSON(w, http.StatusBadRequest, apiError{Errors: res.Errors})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
