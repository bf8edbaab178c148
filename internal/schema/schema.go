// Package schema declares the per-resource field rules and the one validation routine that
// enforces them for API payloads and HTML forms.
package schema

import (
	"strings"
)

type FieldType string

const (
	TypeString    FieldType = "string"
	TypeNumber    FieldType = "number"
	TypeUUID      FieldType = "uuid"
	TypeTimestamp FieldType = "timestamp"
)

// Field describes one client writable attribute. Optional fields are nullable.
type Field struct {
	Name       string
	Type       FieldType
	Required   bool
	Filterable bool
	// Rules is a go-playground validator tag applied to non-null values.
	Rules string
	// Precision and Scale bound number fields to their DECIMAL column. Zero precision means unbounded.
	Precision int
	Scale     int
}

func (f Field) Nullable() bool {
	return !f.Required
}

// Label renders the field name for humans, account_balance -> Account Balance.
func (f Field) Label() string {
	return Humanize(f.Name)
}

// Relation is an association that may be loaded alongside a record.
type Relation struct {
	Name        string
	Association string
}

type Schema struct {
	Entity    string
	Fields    []Field
	Relations []Relation
}

// Mode selects how absent fields are treated.
type Mode int

const (
	// Full requires every required field to be present (create, PUT).
	Full Mode = iota
	// Partial only checks the fields present in the payload (PATCH).
	Partial
)

var systemFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"_count":     true,
}

// IsSystemField reports whether name is managed by persistence and never client writable.
func IsSystemField(name string) bool {
	return systemFields[name]
}

func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s *Schema) Relation(name string) (Relation, bool) {
	for _, r := range s.Relations {
		if r.Name == name {
			return r, true
		}
	}
	return Relation{}, false
}

// IsSortable reports whether records may be ordered by name.
func (s *Schema) IsSortable(name string) bool {
	if name == "id" || name == "created_at" || name == "updated_at" {
		return true
	}
	_, ok := s.Field(name)
	return ok
}

// Humanize turns a snake_case identifier into title cased words.
func Humanize(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
