package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/model"
	"github.com/radelytskyi20/TaskManagement/internal/query"
)

// stubTaskDao implements dao.TaskDao over an in-memory map
type stubTaskDao struct {
	*core.BaseComponent
	tasks    map[string]*model.Task
	lastOpts *query.TaskQueryOptions
}

func newStubTaskDao(seed ...*model.Task) *stubTaskDao {
	s := &stubTaskDao{
		BaseComponent: core.NewBaseComponent("dao_task_stub"),
		tasks:         map[string]*model.Task{},
	}
	for _, t := range seed {
		s.tasks[t.ID] = t
	}
	return s
}

func (s *stubTaskDao) Create(ctx context.Context, t *model.Task) error {
	s.tasks[t.ID] = t
	return nil
}

func (s *stubTaskDao) Get(ctx context.Context, id string) (*model.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *stubTaskDao) Update(ctx context.Context, t *model.Task) error {
	if _, ok := s.tasks[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.tasks[t.ID] = t
	return nil
}

func (s *stubTaskDao) Delete(ctx context.Context, id string) error {
	if _, ok := s.tasks[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *stubTaskDao) GetAll(ctx context.Context, opts *query.TaskQueryOptions) ([]*model.Task, error) {
	s.lastOpts = opts
	owner := opts.Filters[query.FilterByUserID][0]
	var out []*model.Task
	for _, t := range s.tasks {
		if t.UserID == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTaskDao) Count(ctx context.Context, opts *query.TaskQueryOptions) (int64, error) {
	list, err := s.GetAll(ctx, opts)
	return int64(len(list)), err
}

func newTaskServiceWith(da *stubTaskDao) *taskServiceImpl {
	svc := NewTaskService().(*taskServiceImpl)
	svc.TaskDao = da
	return svc
}

func strp(s string) *string { return &s }
func intp(i int) *int { return &i }

func TestTaskServiceGetNotFound(t *testing.T) {
	svc := newTaskServiceWith(newStubTaskDao())
	res, err := svc.Get(context.Background(), "u1", "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Forbidden {
		t.Fatal("missing record must not report forbidden")
	}
	if res.Succeeded() || len(res.Errors) != 1 || res.Errors[0] != bizConsts.ErrTaskNotFound {
		t.Fatalf("expected not-found failure, got %+v", res.Result)
	}
}

func TestTaskServiceGetForbidden(t *testing.T) {
	da := newStubTaskDao(&model.Task{ID: "t1", Name: "a", UserID: "owner"})
	svc := newTaskServiceWith(da)

	res, err := svc.Get(context.Background(), "intruder", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Forbidden {
		t.Fatal("expected forbidden for foreign record")
	}
	if len(res.Errors) != 0 {
		t.Fatalf("forbidden outcome must carry no errors, got %v", res.Errors)
	}
	if res.Payload.ID != "" {
		t.Fatalf("forbidden outcome must carry no payload, got %+v", res.Payload)
	}
}

func TestTaskServiceGetOwn(t *testing.T) {
	due := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	da := newStubTaskDao(&model.Task{
		ID: "t1", Name: "write report", UserID: "owner",
		Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: &due,
	})
	svc := newTaskServiceWith(da)

	res, err := svc.Get(context.Background(), "owner", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Succeeded() || res.Forbidden {
		t.Fatalf("expected success, got %+v", res.Result)
	}
	if res.Payload.Name != "write report" || res.Payload.Status != "InProgress" {
		t.Fatalf("unexpected payload: %+v", res.Payload)
	}
}

func TestTaskServiceCreateValidatesCodes(t *testing.T) {
	svc := newTaskServiceWith(newStubTaskDao())
	res, err := svc.Create(context.Background(), "u1", TaskWrite{Name: "x", Status: 9, Priority: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() || len(res.Errors) != 2 {
		t.Fatalf("expected two code validation errors, got %+v", res)
	}
}

func TestTaskServiceCreateSetsOwner(t *testing.T) {
	da := newStubTaskDao()
	svc := newTaskServiceWith(da)
	res, err := svc.Create(context.Background(), "u1", TaskWrite{Name: "x", Status: 0, Priority: 1})
	if err != nil || !res.Succeeded() {
		t.Fatalf("expected success, got res=%+v err=%v", res, err)
	}
	if len(da.tasks) != 1 {
		t.Fatalf("expected one stored task, got %d", len(da.tasks))
	}
	for _, stored := range da.tasks {
		if stored.UserID != "u1" {
			t.Fatalf("owner must come from the caller identity, got %q", stored.UserID)
		}
		if stored.ID == "" {
			t.Fatal("expected generated id")
		}
	}
}

func TestTaskServiceUpdateForbiddenLeavesRecordUntouched(t *testing.T) {
	da := newStubTaskDao(&model.Task{ID: "t1", Name: "before", UserID: "owner"})
	svc := newTaskServiceWith(da)

	res, err := svc.Update(context.Background(), "intruder", "t1", TaskPatch{Name: strp("after")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Forbidden {
		t.Fatal("expected forbidden")
	}
	if da.tasks["t1"].Name != "before" {
		t.Fatalf("record mutated despite forbidden: %+v", da.tasks["t1"])
	}
}

func TestTaskServiceUpdateNotFound(t *testing.T) {
	svc := newTaskServiceWith(newStubTaskDao())
	res, err := svc.Update(context.Background(), "u1", "missing", TaskPatch{Name: strp("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() || res.Errors[0] != bizConsts.ErrTaskNotFound {
		t.Fatalf("expected not-found failure, got %+v", res)
	}
}

func TestTaskServiceUpdateKeepsUnsetFields(t *testing.T) {
	due := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	da := newStubTaskDao(&model.Task{
		ID: "t1", Name: "old name", Description: "keep me", UserID: "owner",
		Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: &due,
	})
	svc := newTaskServiceWith(da)

	res, err := svc.Update(context.Background(), "owner", "t1", TaskPatch{Name: strp("new name")})
	if err != nil || !res.Succeeded() {
		t.Fatalf("expected success, got res=%+v err=%v", res, err)
	}

	got := da.tasks["t1"]
	if got.Name != "new name" {
		t.Fatalf("name not updated: %q", got.Name)
	}
	if got.Status != model.StatusInProgress {
		t.Fatalf("status reset: got %v", got.Status)
	}
	if got.Priority != model.PriorityHigh {
		t.Fatalf("priority reset: got %v", got.Priority)
	}
	if got.Description != "keep me" {
		t.Fatalf("description cleared: %q", got.Description)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date cleared: %v", got.DueDate)
	}
}

func TestTaskServiceUpdateAppliesSetFields(t *testing.T) {
	da := newStubTaskDao(&model.Task{
		ID: "t1", Name: "n", UserID: "owner",
		Status: model.StatusPending, Priority: model.PriorityLow,
	})
	svc := newTaskServiceWith(da)

	due := time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC)
	res, err := svc.Update(context.Background(), "owner", "t1", TaskPatch{
		Description: strp("details"),
		DueDate:     &due,
		Status:      intp(int(model.StatusCompleted)),
		Priority:    intp(int(model.PriorityMedium)),
	})
	if err != nil || !res.Succeeded() {
		t.Fatalf("expected success, got res=%+v err=%v", res, err)
	}

	got := da.tasks["t1"]
	if got.Name != "n" {
		t.Fatalf("unset name must stay, got %q", got.Name)
	}
	if got.Status != model.StatusCompleted || got.Priority != model.PriorityMedium {
		t.Fatalf("set codes not applied: %+v", got)
	}
	if got.Description != "details" || got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("set fields not applied: %+v", got)
	}
}

func TestTaskServiceUpdateValidatesSetFields(t *testing.T) {
	da := newStubTaskDao(&model.Task{ID: "t1", Name: "n", UserID: "owner"})
	svc := newTaskServiceWith(da)

	res, err := svc.Update(context.Background(), "owner", "t1", TaskPatch{
		Name: strp(""), Status: intp(9),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() || len(res.Errors) != 2 {
		t.Fatalf("expected status code and name errors, got %+v", res)
	}
	if da.tasks["t1"].Name != "n" {
		t.Fatalf("record mutated despite validation failure: %+v", da.tasks["t1"])
	}
}

func TestTaskServiceDelete(t *testing.T) {
	da := newStubTaskDao(&model.Task{ID: "t1", UserID: "owner"})
	svc := newTaskServiceWith(da)

	// deleting someone else's record is forbidden and leaves it in place
	res, _ := svc.Delete(context.Background(), "intruder", "t1")
	if !res.Forbidden || len(da.tasks) != 1 {
		t.Fatalf("expected forbidden delete to be a no-op, res=%+v", res)
	}

	res, err := svc.Delete(context.Background(), "owner", "t1")
	if err != nil || !res.Succeeded() {
		t.Fatalf("expected success, got res=%+v err=%v", res, err)
	}
	if len(da.tasks) != 0 {
		t.Fatal("record not deleted")
	}

	res, _ = svc.Delete(context.Background(), "owner", "t1")
	if res.Succeeded() || res.Errors[0] != bizConsts.ErrTaskNotFound {
		t.Fatalf("expected not-found on second delete, got %+v", res)
	}
}

func TestTaskServiceGetAllScopesToCaller(t *testing.T) {
	da := newStubTaskDao(
		&model.Task{ID: "t1", Name: "mine", UserID: "u1"},
		&model.Task{ID: "t2", Name: "theirs", UserID: "u2"},
	)
	svc := newTaskServiceWith(da)

	res, err := svc.GetAll(context.Background(), "u1", query.ListParams{})
	if err != nil || !res.Succeeded() {
		t.Fatalf("expected success, got res=%+v err=%v", res, err)
	}
	if len(res.Payload.Items) != 1 || res.Payload.Items[0].Name != "mine" {
		t.Fatalf("expected only caller's tasks, got %+v", res.Payload)
	}
	if res.Payload.Total != 1 {
		t.Fatalf("expected total of 1, got %d", res.Payload.Total)
	}
	if res.Payload.Page != 1 || res.Payload.PageSize != 10 {
		t.Fatalf("expected default paging echoed back, got %+v", res.Payload)
	}
	if got := da.lastOpts.Filters[query.FilterByUserID]; len(got) != 1 || got[0] != "u1" {
		t.Fatalf("owner filter missing from pushed-down options: %v", got)
	}
}

func TestTaskServiceGetAllRejectsBadFilterCodes(t *testing.T) {
	svc := newTaskServiceWith(newStubTaskDao())
	res, err := svc.GetAll(context.Background(), "u1", query.ListParams{Statuses: []string{"7"}})
	if err != nil {
		t.Fatalf("bad filter code must not be an internal error: %v", err)
	}
	if res.Succeeded() {
		t.Fatalf("expected validation failure, got %+v", res)
	}
}
