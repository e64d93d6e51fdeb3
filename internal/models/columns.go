package models

import (
	"errors"
	"fmt"
)

// Column identifies a searchable text column of the grid
type Column string

const (
	ColumnNone  Column = ""
	ColumnTitle Column = "title"
	ColumnFirst Column = "first"
	ColumnLast  Column = "last"
	ColumnEmail Column = "email"
	ColumnPhone Column = "phone"
)

// PictureHeader is the header of the display-only picture column
const PictureHeader = "Picture"

var ErrUnknownColumn = errors.New("unknown column")

type columnDef struct {
	header string
	value  func(UserRow) string
}

var columnDefs = map[Column]columnDef{
	ColumnTitle: {"Title", func(r UserRow) string { return r.Title }},
	ColumnFirst: {"First Name", func(r UserRow) string { return r.First }},
	ColumnLast:  {"Last Name", func(r UserRow) string { return r.Last }},
	ColumnEmail: {"Email", func(r UserRow) string { return r.Email }},
	ColumnPhone: {"Phone", func(r UserRow) string { return r.Phone }},
}

// Columns returns the searchable columns in display order
func Columns() []Column {
	return []Column{
		ColumnTitle,
		ColumnFirst,
		ColumnLast,
		ColumnEmail,
		ColumnPhone,
	}
}

func ParseColumn(name string) (Column, error) {
	col := Column(name)
	if _, ok := columnDefs[col]; !ok {
		return ColumnNone, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return col, nil
}

func (c Column) Valid() bool {
	_, ok := columnDefs[c]
	return ok
}

// Header returns the display name, or the raw identifier for unknown columns
func (c Column) Header() string {
	if def, ok := columnDefs[c]; ok {
		return def.header
	}
	return string(c)
}

// Value returns the row's text for this column. Unknown columns yield "".
func (c Column) Value(r UserRow) string {
	if def, ok := columnDefs[c]; ok {
		return def.value(r)
	}
	return ""
}
