package forms

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dipadubank/internal/routes"
	"dipadubank/internal/schema"
)

const dateTimeLocal = "2006-01-02T15:04"

type navLink struct {
	Label string
	URL   string
}

type page struct {
	Title   string
	Heading string
	Error   string
	Nav     []navLink
}

type fieldView struct {
	Name      string
	Label     string
	InputType string
	Value     string
	Error     string
	Required  bool
}

type formPage struct {
	page
	Action  string
	ListURL string
	Submit  string
	Fields  []fieldView
}

type rowView struct {
	EditURL string
	Cells   []string
}

type listPage struct {
	page
	Singular   string
	CreateURL  string
	Columns    []string
	Rows       []rowView
	TotalCount int64
	PrevURL    string
	NextURL    string
}

func navigation(prefix string) []navLink {
	links := make([]navLink, 0, len(routes.Routes()))
	for _, route := range routes.Routes() {
		links = append(links, navLink{Label: plural(route), URL: prefix + "/" + route})
	}
	return links
}

// plural renders a route segment as a heading, bank-accounts -> Bank Accounts
func plural(route string) string {
	return schema.Humanize(strings.ReplaceAll(route, "-", "_"))
}

func inputType(f schema.Field) string {
	switch f.Type {
	case schema.TypeNumber:
		return "number"
	case schema.TypeTimestamp:
		return "datetime-local"
	case schema.TypeString:
		if strings.Contains(f.Rules, "email") {
			return "email"
		}
		return "text"
	default:
		return "text"
	}
}

// fieldViews lays out s's fields with values taken from record and per-field errors
func fieldViews(s *schema.Schema, values map[string]string, fieldErrors map[string]string) []fieldView {
	views := make([]fieldView, 0, len(s.Fields))
	for _, f := range s.Fields {
		views = append(views, fieldView{
			Name:      f.Name,
			Label:     f.Label(),
			InputType: inputType(f),
			Value:     values[f.Name],
			Error:     fieldErrors[f.Name],
			Required:  f.Required,
		})
	}
	return views
}

// emptyValues are the initial create form values: numbers start at 0, everything else blank
func emptyValues(s *schema.Schema) map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.Type == schema.TypeNumber {
			values[f.Name] = "0"
		}
	}
	return values
}

// recordValues formats a fetched record for the form inputs
func recordValues(s *schema.Schema, record map[string]interface{}) map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Name] = formatValue(f, record[f.Name])
	}
	return values
}

// submittedValues echoes the posted form back after a failed submission
func submittedValues(s *schema.Schema, form url.Values) map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Name] = form.Get(f.Name)
	}
	return values
}

func formatValue(f schema.Field, value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if f.Type == schema.TypeTimestamp {
			if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
				return t.UTC().Format(dateTimeLocal)
			}
		}
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func cell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
