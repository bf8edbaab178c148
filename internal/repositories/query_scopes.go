package repositories

import (
	"dipadubank/internal/query"
	"dipadubank/internal/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func filterScope(q query.Query) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.ID != nil {
			db = db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: *q.ID})
		}
		for _, f := range q.Filters {
			db = db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: f.Field}, Value: f.Value})
		}
		return db
	}
}

// orderScope applies the requested ordering, newest first when none is given. The id column
// is always the final tie breaker so pages are stable.
func orderScope(q query.Query) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		orders := q.Order
		if len(orders) == 0 {
			orders = []query.Order{{Field: "created_at", Desc: true}}
		}
		for _, o := range orders {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: o.Field}, Desc: o.Desc})
		}
		return db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
	}
}

func relationScope(q query.Query, s *schema.Schema) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, name := range q.Relations {
			if relation, ok := s.Relation(name); ok {
				db = db.Preload(relation.Association)
			}
		}
		return db
	}
}

func pageScope(q query.Query) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		limit := q.Limit
		if limit <= 0 {
			limit = query.DefaultLimit
		}
		return db.Offset(q.Offset).Limit(limit)
	}
}
