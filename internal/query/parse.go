package query

import (
	"net/url"
	"strconv"
	"strings"

	"dipadubank/internal/schema"

	"github.com/google/uuid"
)

// Parse builds a Query for s from URL values. Keys that are neither controls nor filterable
// fields are ignored. Bad paging values, unknown order fields and unknown relations are
// reported as a *schema.ValidationError keyed by parameter name.
func Parse(values url.Values, s *schema.Schema) (Query, error) {
	q := New()
	problems := make(map[string]string)

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil || limit < 1:
			problems["limit"] = "must be a positive integer"
		case limit > MaxLimit:
			q.Limit = MaxLimit
		default:
			q.Limit = limit
		}
	}

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			problems["offset"] = "must be a non-negative integer"
		} else {
			q.Offset = offset
		}
	}

	if raw := values.Get("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			problems["id"] = "must be a valid UUID"
		} else {
			q.ID = &id
		}
	}

	for _, item := range splitList(values["order"]) {
		order, ok := parseOrder(item)
		if !ok || !s.IsSortable(order.Field) {
			problems["order"] = "cannot order by " + item
			continue
		}
		q.Order = append(q.Order, order)
	}

	for _, name := range splitList(values["relations"]) {
		if _, ok := s.Relation(name); !ok {
			problems["relations"] = "unknown relation " + name
			continue
		}
		q.Relations = append(q.Relations, name)
	}

	for _, field := range s.Fields {
		if !field.Filterable {
			continue
		}
		raw, ok := values[field.Name]
		if !ok || len(raw) == 0 {
			continue
		}
		value, err := field.CoerceFilter(raw[0])
		if err != nil {
			problems[field.Name] = err.Error()
			continue
		}
		q.Filters = append(q.Filters, Filter{Field: field.Name, Value: value})
	}

	if len(problems) > 0 {
		return Query{}, schema.NewValidationError(problems)
	}
	return q, nil
}

func parseOrder(item string) (Order, bool) {
	if strings.HasPrefix(item, "-") {
		return Order{Field: item[1:], Desc: true}, item != "-"
	}

	field, direction, found := strings.Cut(item, ":")
	if !found {
		return Order{Field: field}, field != ""
	}
	switch strings.ToLower(direction) {
	case "asc":
		return Order{Field: field}, true
	case "desc":
		return Order{Field: field, Desc: true}, true
	default:
		return Order{}, false
	}
}

// splitList flattens repeated and comma separated values.
func splitList(raw []string) []string {
	var items []string
	for _, value := range raw {
		for _, item := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				items = append(items, trimmed)
			}
		}
	}
	return items
}
