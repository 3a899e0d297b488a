package query

import (
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/utils/tests"

	"github.com/radelytskyi20/TaskManagement/internal/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func limitClauseOf(t *testing.T, db *gorm.DB, page, pageSize int) clause.Limit {
	t.Helper()
	var out []*model.Task
	stmt := db.Model(&model.Task{}).Scopes(Paginate(page, pageSize)).Find(&out).Statement
	c, ok := stmt.Clauses["LIMIT"]
	if !ok {
		t.Fatalf("no LIMIT clause for page=%d size=%d", page, pageSize)
	}
	limit, ok := c.Expression.(clause.Limit)
	if !ok {
		t.Fatalf("unexpected LIMIT expression type %T", c.Expression)
	}
	return limit
}

func TestPaginateFirstPageSkipsNothing(t *testing.T) {
	limit := limitClauseOf(t, dryRunDB(t), 1, 10)
	if limit.Limit == nil || *limit.Limit != 10 {
		t.Fatalf("expected limit 10, got %+v", limit.Limit)
	}
	if limit.Offset != 0 {
		t.Fatalf("expected offset 0 on first page, got %d", limit.Offset)
	}
}

func TestPaginateOffsetMath(t *testing.T) {
	limit := limitClauseOf(t, dryRunDB(t), 3, 25)
	if limit.Limit == nil || *limit.Limit != 25 {
		t.Fatalf("expected limit 25, got %+v", limit.Limit)
	}
	if limit.Offset != 50 {
		t.Fatalf("expected offset 50 for page 3, got %d", limit.Offset)
	}
}

func TestPaginatePanicsOnZeroPageSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero page size")
		}
	}()
	Paginate(1, 0)
}
