package dao

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/radelytskyi20/TaskManagement/internal/query"
)

// dry-run db builds statements without touching a real datasource
func dryRunDao(t *testing.T) *taskDaoImpl {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	d := NewTaskDao("tasks").(*taskDaoImpl)
	d.db = db
	return d
}

func TestTaskDaoGetAllComposesOneStatement(t *testing.T) {
	d := dryRunDao(t)
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	opts := query.NewTaskQueryOptions("u1", query.ListParams{
		Sort:         query.SortDueDateDesc,
		Statuses:     []string{"0", "1"},
		DueDateStart: &start,
		DueDateEnd:   &end,
		Page:         2,
		PageSize:     5,
	})

	q, err := d.applyFilters(d.db.WithContext(context.Background()).Table("tasks"), opts)
	if err != nil {
		t.Fatalf("apply filters: %v", err)
	}
	for _, col := range query.TaskOrderBy(opts.Sort) {
		q = q.Order(col)
	}
	q = q.Scopes(query.Paginate(opts.Page, opts.PageSize))

	var out []map[string]any
	stmt := q.Find(&out).Statement
	sql := stmt.SQL.String()

	for _, frag := range []string{"status", "user_id", "due_date", "ORDER BY", "LIMIT"} {
		if !strings.Contains(sql, frag) {
			t.Fatalf("statement missing %q: %s", frag, sql)
		}
	}

	var ownerBound bool
	for _, v := range stmt.Vars {
		if v == "u1" {
			ownerBound = true
		}
	}
	if !ownerBound {
		t.Fatalf("owner id not bound in statement vars: %v", stmt.Vars)
	}
}

func TestTaskDaoGetAllRejectsBadCodes(t *testing.T) {
	d := dryRunDao(t)
	opts := query.NewTaskQueryOptions("u1", query.ListParams{Statuses: []string{"9"}})
	if _, err := d.GetAll(context.Background(), opts); err == nil {
		t.Fatal("expected error for out-of-range status code")
	}
}
