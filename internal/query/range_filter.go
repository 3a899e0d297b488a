package query

import (
	"fmt"

	"gorm.io/gorm/clause"
)

var rangeDimensionOrder = []TaskRangeFilterBy{RangeByDueDate}

// BuildTaskRangeFilter converts the range mapping into an inclusive-bounds
// predicate: field >= start AND field <= end. Multiple pairs within one
// dimension combine with OR, dimensions combine with AND. One-sided ranges
// never reach this point; NewTaskQueryOptions drops a pair unless both bounds
// are present. A dimension key outside the enumerated set panics.
func BuildTaskRangeFilter(opts *TaskQueryOptions) (clause.Expression, error) {
	for dim := range opts.Ranges {
		if !knownRangeDimension(dim) {
			panic(fmt.Sprintf("query: unsupported task range dimension %d", int(dim)))
		}
	}

	var conjuncts []clause.Expression
	for _, dim := range rangeDimensionOrder {
		pairs, ok := opts.Ranges[dim]
		if !ok || len(pairs) == 0 {
			continue
		}
		column := rangeColumn(dim)
		disjuncts := make([]clause.Expression, 0, len(pairs))
		for _, p := range pairs {
			disjuncts = append(disjuncts, clause.And(
				clause.Gte{Column: clause.Column{Name: column}, Value: p.Start},
				clause.Lte{Column: clause.Column{Name: column}, Value: p.End},
			))
		}
		if len(disjuncts) == 1 {
			conjuncts = append(conjuncts, disjuncts[0])
		} else {
			conjuncts = append(conjuncts, clause.Or(disjuncts...))
		}
	}

	switch len(conjuncts) {
	case 0:
		return nil, nil
	case 1:
		return conjuncts[0], nil
	default:
		return clause.And(conjuncts...), nil
	}
}

func knownRangeDimension(dim TaskRangeFilterBy) bool {
	return dim == RangeByDueDate
}

func rangeColumn(dim TaskRangeFilterBy) string {
	switch dim {
	case RangeByDueDate:
		return "due_date"
	}
	panic(fmt.Sprintf("query: no column for range dimension %d", int(dim)))
}
