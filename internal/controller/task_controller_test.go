package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/model"
	"github.com/radelytskyi20/TaskManagement/internal/query"
	"github.com/radelytskyi20/TaskManagement/internal/service"
)

// stubTaskService returns canned outcomes per call
type stubTaskService struct {
	*core.BaseComponent
	getRes    model.PayloadResult[model.TaskDTO]
	mutRes    model.Result
	listRes   model.PayloadResult[service.TaskPage]
	lastOwner string
	lastPatch service.TaskPatch
}

func newStubTaskService() *stubTaskService {
	return &stubTaskService{BaseComponent: core.NewBaseComponent("task_service_stub")}
}

func (s *stubTaskService) Create(ctx context.Context, userID string, in service.TaskWrite) (model.Result, error) {
	s.lastOwner = userID
	return s.mutRes, nil
}

func (s *stubTaskService) Get(ctx context.Context, userID, id string) (model.PayloadResult[model.TaskDTO], error) {
	s.lastOwner = userID
	return s.getRes, nil
}

func (s *stubTaskService) Update(ctx context.Context, userID, id string, in service.TaskPatch) (model.Result, error) {
	s.lastOwner = userID
	s.lastPatch = in
	return s.mutRes, nil
}

func (s *stubTaskService) Delete(ctx context.Context, userID, id string) (model.Result, error) {
	s.lastOwner = userID
	return s.mutRes, nil
}

func (s *stubTaskService) GetAll(ctx context.Context, userID string, p query.ListParams) (model.PayloadResult[service.TaskPage], error) {
	s.lastOwner = userID
	return s.listRes, nil
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := auth.WithIdentity(req.Context(), auth.Identity{UserID: "u1", UserName: "alice"})
	return req.WithContext(ctx)
}

func TestTaskControllerGetStatusMapping(t *testing.T) {
	svc := newStubTaskService()
	ctrl := NewTaskController()
	ctrl.Svc = svc

	// success
	svc.getRes = model.OkPayload(model.TaskDTO{ID: "t1", Name: "x"})
	rec := httptest.NewRecorder()
	ctrl.Get(rec, authedRequest(http.MethodGet, "/api/v1/tasks/t1", ""), "t1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastOwner != "u1" {
		t.Fatalf("owner must come from identity, got %q", svc.lastOwner)
	}

	// not found
	svc.getRes = model.FailPayload[model.TaskDTO](bizConsts.ErrTaskNotFound)
	rec = httptest.NewRecorder()
	ctrl.Get(rec, authedRequest(http.MethodGet, "/api/v1/tasks/t1", ""), "t1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// forbidden: no body beyond the status
	svc.getRes = model.ForbiddenPayload[model.TaskDTO]()
	rec = httptest.NewRecorder()
	ctrl.Get(rec, authedRequest(http.MethodGet, "/api/v1/tasks/t1", ""), "t1")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("forbidden response must carry no payload, got %q", rec.Body.String())
	}
}

func TestTaskControllerCreateStatusMapping(t *testing.T) {
	svc := newStubTaskService()
	ctrl := NewTaskController()
	ctrl.Svc = svc
	body := `{"name":"x","status":0,"priority":1}`

	svc.mutRes = model.OkResult()
	rec := httptest.NewRecorder()
	ctrl.Create(rec, authedRequest(http.MethodPost, "/api/v1/tasks", body))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	svc.mutRes = model.FailResult("invalid task status code: 9")
	rec = httptest.NewRecorder()
	ctrl.Create(rec, authedRequest(http.MethodPost, "/api/v1/tasks", body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	ctrl.Create(rec, authedRequest(http.MethodPost, "/api/v1/tasks", "{not json"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestTaskControllerUpdateStatusMapping(t *testing.T) {
	svc := newStubTaskService()
	ctrl := NewTaskController()
	ctrl.Svc = svc
	body := `{"name":"x","status":0,"priority":1}`

	svc.mutRes = model.FailResult(bizConsts.ErrTaskNotFound)
	rec := httptest.NewRecorder()
	ctrl.Update(rec, authedRequest(http.MethodPut, "/api/v1/tasks/t1", body), "t1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	svc.mutRes = model.FailResult("invalid task priority code: -1")
	rec = httptest.NewRecorder()
	ctrl.Update(rec, authedRequest(http.MethodPut, "/api/v1/tasks/t1", body), "t1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for validation failure, got %d", rec.Code)
	}

	svc.mutRes = model.ForbiddenResult()
	rec = httptest.NewRecorder()
	ctrl.Update(rec, authedRequest(http.MethodPut, "/api/v1/tasks/t1", body), "t1")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestTaskControllerUpdateOmittedFieldsStayUnset(t *testing.T) {
	svc := newStubTaskService()
	ctrl := NewTaskController()
	ctrl.Svc = svc

	svc.mutRes = model.OkResult()
	rec := httptest.NewRecorder()
	ctrl.Update(rec, authedRequest(http.MethodPut, "/api/v1/tasks/t1", `{"name":"x"}`), "t1")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	p := svc.lastPatch
	if p.Name == nil || *p.Name != "x" {
		t.Fatalf("expected name to be set, got %+v", p)
	}
	if p.Description != nil || p.DueDate != nil || p.Status != nil || p.Priority != nil {
		t.Fatalf("omitted fields must stay unset, got %+v", p)
	}
}

func TestTaskControllerRequiresIdentity(t *testing.T) {
	ctrl := NewTaskController()
	ctrl.Svc = newStubTaskService()

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", rec.Code)
	}
}
