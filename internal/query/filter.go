package query

import (
	"fmt"
	"strconv"

	"gorm.io/gorm/clause"

	"github.com/radelytskyi20/TaskManagement/internal/model"
)

// filterDimensionOrder fixes the evaluation order so generated predicates are
// deterministic across requests.
var filterDimensionOrder = []TaskFilterBy{FilterByStatus, FilterByPriority, FilterByUserID}

// BuildTaskFilter converts the dimension->values mapping into one boolean
// predicate over a task row: values within one dimension combine with OR,
// dimensions combine with AND. An absent dimension contributes nothing; an
// empty mapping yields a nil expression (no filter). A dimension key outside
// the enumerated set is a programming error and panics.
func BuildTaskFilter(opts *TaskQueryOptions) (clause.Expression, error) {
	for dim := range opts.Filters {
		if !knownFilterDimension(dim) {
			panic(fmt.Sprintf("query: unsupported task filter dimension %d", int(dim)))
		}
	}

	var conjuncts []clause.Expression
	for _, dim := range filterDimensionOrder {
		values, ok := opts.Filters[dim]
		if !ok || len(values) == 0 {
			continue
		}
		expr, err := dimensionPredicate(dim, values)
		if err != nil {
			return nil, err
		}
		conjuncts = append(conjuncts, expr)
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

func knownFilterDimension(dim TaskFilterBy) bool {
	switch dim {
	case FilterByStatus, FilterByPriority, FilterByUserID:
		return true
	}
	return false
}

// dimensionPredicate builds the OR-group for a single dimension. Status and
// priority tokens are parsed against the enumerated code sets here; a token
// outside the legal range fails predicate construction.
func dimensionPredicate(dim TaskFilterBy, values []string) (clause.Expression, error) {
	disjuncts := make([]clause.Expression, 0, len(values))
	for _, raw := range values {
		switch dim {
		case FilterByStatus:
			code, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("status filter value %q is not an integer code", raw)
			}
			st, err := model.ParseTaskStatus(code)
			if err != nil {
				return nil, err
			}
			disjuncts = append(disjuncts, clause.Eq{Column: clause.Column{Name: "status"}, Value: int(st)})
		case FilterByPriority:
			code, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("priority filter value %q is not an integer code", raw)
			}
			pr, err := model.ParseTaskPriority(code)
			if err != nil {
				return nil, err
			}
			disjuncts = append(disjuncts, clause.Eq{Column: clause.Column{Name: "priority"}, Value: int(pr)})
		case FilterByUserID:
			disjuncts = append(disjuncts, clause.Eq{Column: clause.Column{Name: "user_id"}, Value: raw})
		}
	}
	if len(disjuncts) == 1 {
		return disjuncts[0], nil
	}
	return clause.Or(disjuncts...), nil
}
