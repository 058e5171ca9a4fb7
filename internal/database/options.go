package database

import (
	"github.com/punchlabs/punchup/domain/repository"
	"gorm.io/gorm"
)

// ApplyOptions applies the full query vocabulary (conditions, ordering,
// pagination) to a GORM session.
func ApplyOptions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	q := repository.Build(options...)
	db = applyWhere(db, q)

	for _, ord := range q.Orders() {
		db = db.Order(ord.Field() + " " + direction(ord))
	}
	if n := q.LimitValue(); n > 0 {
		db = db.Limit(n)
	}
	if n := q.OffsetValue(); n > 0 {
		db = db.Offset(n)
	}
	return db
}

// ApplyConditions applies only the WHERE conditions. Count queries use this
// so pagination options never distort the count.
func ApplyConditions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	return applyWhere(db, repository.Build(options...))
}

func applyWhere(db *gorm.DB, q repository.Query) *gorm.DB {
	for _, cond := range q.Conditions() {
		if cond.In() {
			db = db.Where(cond.Field()+" IN ?", cond.Value())
		} else {
			db = db.Where(cond.Field()+" = ?", cond.Value())
		}
	}
	return db
}

func direction(o repository.Order) string {
	if o.Ascending() {
		return "ASC"
	}
	return "DESC"
}
