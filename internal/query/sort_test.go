package query

import (
	"testing"
)

func TestTaskOrderBy(t *testing.T) {
	cases := []struct {
		sort   string
		column string
		desc   bool
	}{
		{SortDueDate, "due_date", false},
		{SortDueDateDesc, "due_date", true},
		{SortPriority, "priority", false},
		{SortPriorityDesc, "priority", true},
		{"", "created_at", true},
		{"garbage", "created_at", true},
	}
	for _, tc := range cases {
		cols := TaskOrderBy(tc.sort)
		if len(cols) != 2 {
			t.Fatalf("sort %q: expected primary column plus id tie-breaker, got %d columns", tc.sort, len(cols))
		}
		if cols[0].Column.Name != tc.column || cols[0].Desc != tc.desc {
			t.Fatalf("sort %q: expected %s desc=%v, got %s desc=%v",
				tc.sort, tc.column, tc.desc, cols[0].Column.Name, cols[0].Desc)
		}
		if cols[1].Column.Name != "id" || cols[1].Desc != tc.desc {
			t.Fatalf("sort %q: tie-breaker must follow primary direction, got %+v", tc.sort, cols[1])
		}
	}
}
