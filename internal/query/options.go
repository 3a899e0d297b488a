package query

import (
	"time"
)

// TaskFilterBy enumerates the value-filterable dimensions of a task.
type TaskFilterBy int

const (
	FilterByStatus TaskFilterBy = iota
	FilterByPriority
	FilterByUserID
)

func (f TaskFilterBy) String() string {
	switch f {
	case FilterByStatus:
		return "status"
	case FilterByPriority:
		return "priority"
	case FilterByUserID:
		return "userId"
	}
	return "unknown"
}

// TaskRangeFilterBy enumerates the range-filterable dimensions of a task.
type TaskRangeFilterBy int

const (
	RangeByDueDate TaskRangeFilterBy = iota
)

func (f TaskRangeFilterBy) String() string {
	switch f {
	case RangeByDueDate:
		return "dueDate"
	}
	return "unknown"
}

// DueRange is an inclusive [Start, End] pair.
type DueRange struct {
	Start time.Time
	End   time.Time
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// TaskQueryOptions is built once per list request and used to compose a single
// query. Filters maps a dimension to the set of acceptable raw values (opaque
// tokens, interpreted at predicate-build time). Ranges maps a dimension to
// inclusive bound pairs.
//
// The UserID dimension is always present and always derived from the
// authenticated caller: NewTaskQueryOptions is the only constructor and takes
// the caller identity as a mandatory argument.
type TaskQueryOptions struct {
	Sort     string
	Filters  map[TaskFilterBy][]string
	Ranges   map[TaskRangeFilterBy][]DueRange
	Page     int
	PageSize int
}

// ListParams is the raw, caller-supplied parameter surface of a list request.
// Status/priority codes stay opaque here; a due-date range needs both bounds
// or it is dropped entirely (no one-sided bounds).
type ListParams struct {
	Sort         string
	Statuses     []string
	Priorities   []string
	DueDateStart *time.Time
	DueDateEnd   *time.Time
	Page         int
	PageSize     int
}

// NewTaskQueryOptions normalizes raw list parameters into query options.
// userID comes from the authorization context, never from request input.
// Page <= 0 clamps to 1, page size <= 0 clamps to 10; unknown sort keywords
// are kept as-is and fall back to the default ordering at sort-build time.
func NewTaskQueryOptions(userID string, p ListParams) *TaskQueryOptions {
	opts := &TaskQueryOptions{
		Sort:     p.Sort,
		Filters:  make(map[TaskFilterBy][]string),
		Ranges:   make(map[TaskRangeFilterBy][]DueRange),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if opts.Page <= 0 {
		opts.Page = DefaultPage
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	if len(p.Statuses) > 0 {
		opts.Filters[FilterByStatus] = append([]string(nil), p.Statuses...)
	}
	if len(p.Priorities) > 0 {
		opts.Filters[FilterByPriority] = append([]string(nil), p.Priorities...)
	}
	// The security boundary of the whole subsystem: owner filter is
	// unconditional and not overridable by caller input.
	opts.Filters[FilterByUserID] = []string{userID}

	if p.DueDateStart != nil && p.DueDateEnd != nil {
		opts.Ranges[RangeByDueDate] = append(opts.Ranges[RangeByDueDate],
			DueRange{Start: *p.DueDateStart, End: *p.DueDateEnd})
	}
	return opts
}
