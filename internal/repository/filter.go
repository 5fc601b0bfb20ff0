package repository

import (
	"time"

	"gorm.io/gorm"
)

// RecordFilter bounds a transaction query. Nil bounds mean no date
// filtering; an empty CustomerCode means no customer filtering. Bounds are
// inclusive and expected to be pre-normalized to day boundaries.
type RecordFilter struct {
	From         *time.Time
	To           *time.Time
	CustomerCode string
}

func applyRecordFilter(q *gorm.DB, f RecordFilter) *gorm.DB {
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	if f.CustomerCode != "" {
		q = q.Where("customer_code = ?", f.CustomerCode)
	}
	return q
}
