package database

import "gorm.io/gorm"

// ListOptions controls ordering and truncation of list queries. Ordering is an
// explicit argument of each list call rather than a property of the record
// type; the Default*Order constants reproduce each entity's documented
// listing order.
type ListOptions struct {
	Order string // SQL ORDER BY clause; empty means database order
	Limit int    // 0 means no limit
}

const (
	// DefaultContactOrder lists the most recent messages first.
	DefaultContactOrder = `created_at DESC`

	// DefaultProjectOrder promotes featured projects, then sorts by most
	// recently completed, then by most recently created.
	DefaultProjectOrder = `featured DESC, completion_date DESC, created_at DESC`

	// DefaultSkillOrder groups skills by category and ranks them by their
	// manual order within each category.
	DefaultSkillOrder = `category ASC, "order" ASC`
)

func (o ListOptions) apply(tx *gorm.DB) *gorm.DB {
	if o.Order != "" {
		tx = tx.Order(o.Order)
	}
	if o.Limit > 0 {
		tx = tx.Limit(o.Limit)
	}
	return tx
}
