package query

import (
	"fmt"

	"gorm.io/gorm"
)

// Paginate returns a scope applying offset/limit over a filtered, sorted
// query: page 1 skips nothing, page N skips (N-1)*pageSize rows. Upstream
// normalization guarantees pageSize > 0; a zero page size reaching this layer
// is an invariant violation and panics rather than being silently corrected.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	if pageSize == 0 {
		panic(fmt.Sprintf("query: pagination with zero page size (page=%d)", page))
	}
	offset := 0
	if page > 1 {
		offset = (page - 1) * pageSize
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(pageSize)
	}
}
