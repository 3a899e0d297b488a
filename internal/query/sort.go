package query

import "gorm.io/gorm/clause"

// Sort keywords accepted on the list-query surface. Anything else (including
// absent) falls back to newest-first by creation timestamp.
const (
	SortDueDate      = "dueDate"
	SortDueDateDesc  = "dueDate_desc"
	SortPriority     = "priority"
	SortPriorityDesc = "priority_desc"
)

// TaskOrderBy maps the sort keyword to a total ordering. Every ordering gets
// an explicit id tie-breaker so pagination stays stable when many rows share
// a sort key (concurrent inserts would otherwise duplicate or skip rows
// across pages).
func TaskOrderBy(sort string) []clause.OrderByColumn {
	switch sort {
	case SortDueDate:
		return orderBy("due_date", false)
	case SortDueDateDesc:
		return orderBy("due_date", true)
	case SortPriority:
		return orderBy("priority", false)
	case SortPriorityDesc:
		return orderBy("priority", true)
	default:
		return orderBy("created_at", true)
	}
}

func orderBy(column string, desc bool) []clause.OrderByColumn {
	return []clause.OrderByColumn{
		{Column: clause.Column{Name: column}, Desc: desc},
		{Column: clause.Column{Name: "id"}, Desc: desc},
	}
}
