// Package query converts between the flat URL query of the collection endpoints and a typed Query
// the persistence layer understands.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Filter is an equality condition on a filterable field.
type Filter struct {
	Field string
	Value interface{}
}

type Order struct {
	Field string
	Desc  bool
}

type Query struct {
	ID        *uuid.UUID
	Filters   []Filter
	Order     []Order
	Relations []string
	Offset    int
	Limit     int
}

func New() Query {
	return Query{Limit: DefaultLimit}
}

func (q Query) Where(field string, value interface{}) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

func (q Query) OrderBy(field string, desc bool) Query {
	q.Order = append(append([]Order(nil), q.Order...), Order{Field: field, Desc: desc})
	return q
}

func (q Query) With(relations ...string) Query {
	q.Relations = append(append([]string(nil), q.Relations...), relations...)
	return q
}

func (q Query) Paginate(offset, limit int) Query {
	q.Offset = offset
	q.Limit = limit
	return q
}

func (q Query) WithID(id uuid.UUID) Query {
	q.ID = &id
	return q
}

// IsByIDOnly reports whether the query selects a single record by id and nothing else.
func (q Query) IsByIDOnly() bool {
	return q.ID != nil && len(q.Filters) == 0 && len(q.Relations) == 0
}

// Encode renders q as URL query values. Parse(Encode(q)) yields q again for schema valid queries.
func (q Query) Encode() url.Values {
	values := url.Values{}

	if q.ID != nil {
		values.Set("id", q.ID.String())
	}
	for _, f := range q.Filters {
		values.Add(f.Field, formatValue(f.Value))
	}
	if len(q.Order) > 0 {
		parts := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			if o.Desc {
				parts = append(parts, "-"+o.Field)
			} else {
				parts = append(parts, o.Field)
			}
		}
		values.Set("order", strings.Join(parts, ","))
	}
	if len(q.Relations) > 0 {
		values.Set("relations", strings.Join(q.Relations, ","))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	return values
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
