// Package forms validates submitted HTML form values against an explicit
// field schema and binds them to records.
package forms

import "net/url"

type Kind uint8

const (
	KindText        Kind = iota // free text
	KindOptionalRef             // blank or the ID of an existing record
)

type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Label    string
	Help     string
}

// Choice is one option of a reference field
type Choice struct {
	Value string
	Label string
}

const (
	MsgRequired      = "This field is required."
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
)

// Errors holds validation messages keyed by field name
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Get(field string) []string {
	return e[field]
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// raw returns the submitted value and whether the field was submitted at all
func raw(data url.Values, name string) (string, bool) {
	values, ok := data[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
