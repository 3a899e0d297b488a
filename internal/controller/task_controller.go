package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/query"
	"github.com/radelytskyi20/TaskManagement/internal/service"
)

type TaskController struct {
	*core.BaseComponent
	Svc service.TaskService `infra:"dep:task_service"`
}

func NewTaskController() *TaskController {
	return &TaskController{BaseComponent: core.NewBaseComponent(bizConsts.COMP_CTRL_TASK)}
}

func (c *TaskController) Start(ctx context.Context) error { return c.BaseComponent.Start(ctx) }
func (c *TaskController) Stop(ctx context.Context) error  { return c.BaseComponent.Stop(ctx) }

type taskRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Status      int     `json:"status"`
	Priority    int     `json:"priority"`
}

func (req taskRequest) toWrite() service.TaskWrite {
	var due *time.Time
	if req.DueDate != nil {
		due = parseTimeParam(*req.DueDate)
	}
	return service.TaskWrite{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     due,
		Status:      req.Status,
		Priority:    req.Priority,
	}
}

// taskPatchRequest 的字段全部可缺省, 缺省字段保留原值
type taskPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Status      *int    `json:"status"`
	Priority    *int    `json:"priority"`
}

func (req taskPatchRequest) toPatch() service.TaskPatch {
	var due *time.Time
	if req.DueDate != nil {
		due = parseTimeParam(*req.DueDate)
	}
	return service.TaskPatch{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     due,
		Status:      req.Status,
		Priority:    req.Priority,
	}
}

// ---- handlers ----

// GET /api/v1/tasks
func (c *TaskController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Errors: []string{"unauthorized"}})
		return
	}

	q := r.URL.Query()
	page, pageSize := parsePagePageSize(r)
	p := query.ListParams{
		Sort:         q.Get("sort"),
		Statuses:     q["status"],
		Priorities:   q["priority"],
		DueDateStart: parseTimeParam(q.Get("dueDateStart")),
		DueDateEnd:   parseTimeParam(q.Get("dueDateEnd")),
		Page:         page,
		PageSize:     pageSize,
	}

	res, err := c.Svc.GetAll(ctx, id.UserID, p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Errors: []string{err.Error()}})
		return
	}
	if !res.Succeeded() {
		writeJSON(w, http.StatusBadRequest, apiError{Errors: res.Errors})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse[any]{Data: res.Payload})
}

// GET /api/v1/tasks/{id}
func (c *TaskController) Get(w http.ResponseWriter, r *http.Request, taskID string) {
	ctx := r.Context()
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Errors: []string{"unauthorized"}})
		return
	}

	res, err := c.Svc.Get(ctx, id.UserID, taskID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Errors: []string{err.Error()}})
		return
	}
	if res.Forbidden {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if !res.Succeeded() {
		writeJSON(w, http.StatusNotFound, apiError{Errors: res.Errors})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse[any]{Data: res.Payload})
}

// POST /api/v1/tasks
func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Errors: []string{"unauthorized"}})
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Errors: []string{"invalid json"}})
		return
	}

	res, err := c.Svc.Create(ctx, id.UserID, req.toWrite())
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

// PUT /api/v1/tasks/{id}
func (c *TaskController) Update(w http.ResponseWriter, r *http.Request, taskID string) {
	ctx := r.Context()
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Errors: []string{"unauthorized"}})
		return
	}

	var req taskPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Errors: []string{"invalid json"}})
		return
	}

	res, err := c.Svc.Update(ctx, id.UserID, taskID, req.toPatch())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Errors: []string{err.Error()}})
		return
	}
	if res.Forbidden {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if !res.Succeeded() {
		if containsError(res.Errors, bizConsts.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, apiError{Errors: res.Errors})
			return
		}
		writeJSON(w, http.StatusBadRequest, apiError{Errors: res.Errors})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/v1/tasks/{id}
func (c *TaskController) Delete(w http.ResponseWriter, r *http.Request, taskID string) {
	ctx := r.Context()
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiError{Errors: []string{"unauthorized"}})
		return
	}

	res, err := c.Svc.Delete(ctx, id.UserID, taskID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Errors: []string{err.Error()}})
		return
	}
	if res.Forbidden {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if !res.Succeeded() {
		writeJSON(w, http.StatusNotFound, apiError{Errors: res.Errors})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func containsError(errs []string, target string) bool {
	for _, e := range errs {
		if e == target {
			return true
		}
	}
	return false
}
