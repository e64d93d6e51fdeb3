package grid

import (
	"errors"
	"fmt"
	"strings"

	"randomuser-bot/internal/models"
)

var (
	ErrNoGrid        = errors.New("grid not found")
	ErrRowNotVisible = errors.New("row not visible")
)

// SearchState maps a column to its current search term.
// Missing key or empty term means the column is unconstrained.
type SearchState map[models.Column]string

// SelectFunc receives the full record of a selected row
type SelectFunc func(row models.UserRow)

// Grid is the state of one user grid: the loaded rows, the rows that
// pass the current search and the presentation flags.
type Grid struct {
	Rows    []models.UserRow `json:"rows"`
	Visible []models.UserRow `json:"visible"`
	Search  SearchState      `json:"search"`
	Active  models.Column    `json:"active,omitempty"`
	Loading bool             `json:"loading"`
	LoadErr string           `json:"load_err,omitempty"`
}

// New returns an empty grid waiting for its first load
func New() *Grid {
	return &Grid{
		Search:  SearchState{},
		Loading: true,
	}
}

// Publish installs a freshly loaded row set and clears the loading flag
func (g *Grid) Publish(rows []models.UserRow) {
	g.Rows = rows
	g.LoadErr = ""
	g.Loading = false
	g.refresh()
}

// SetSearch merges a single column's term into the search state and
// recomputes the visible rows from the full row set.
func (g *Grid) SetSearch(col models.Column, term string) error {
	if !col.Valid() {
		return fmt.Errorf("set search: %w: %q", models.ErrUnknownColumn, col)
	}

	if g.Search == nil {
		g.Search = SearchState{}
	}
	if term == "" {
		delete(g.Search, col)
	} else {
		g.Search[col] = term
	}

	g.refresh()
	return nil
}

// ToggleColumn shows the search input of col, or hides it when col is
// already active. Search terms are kept.
func (g *Grid) ToggleColumn(col models.Column) error {
	if !col.Valid() {
		return fmt.Errorf("toggle column: %w: %q", models.ErrUnknownColumn, col)
	}

	if g.Active == col {
		g.Active = models.ColumnNone
	} else {
		g.Active = col
	}
	return nil
}

// Select calls fn once with the visible row identified by id
func (g *Grid) Select(id int, fn SelectFunc) error {
	for _, row := range g.Visible {
		if row.ID == id {
			fn(row)
			return nil
		}
	}
	return fmt.Errorf("select row %d: %w", id, ErrRowNotVisible)
}

// Terms returns the non-empty search terms in column display order
func (g *Grid) Terms() []Term {
	var terms []Term
	for _, col := range models.Columns() {
		if term := g.Search[col]; term != "" {
			terms = append(terms, Term{Column: col, Value: term})
		}
	}
	return terms
}

type Term struct {
	Column models.Column
	Value  string
}

func (g *Grid) refresh() {
	g.Visible = Filter(g.Rows, g.Search)
}

// Filter returns the rows whose fields contain every non-empty term of
// search, case-insensitively. The result keeps the order of rows and
// never aliases it.
func Filter(rows []models.UserRow, search SearchState) []models.UserRow {
	needles := make(map[models.Column]string, len(search))
	for col, term := range search {
		if term != "" {
			needles[col] = strings.ToLower(term)
		}
	}

	visible := make([]models.UserRow, 0, len(rows))
	for _, row := range rows {
		if matches(row, needles) {
			visible = append(visible, row)
		}
	}
	return visible
}

func matches(row models.UserRow, needles map[models.Column]string) bool {
	for col, needle := range needles {
		if !strings.Contains(strings.ToLower(col.Value(row)), needle) {
			return false
		}
	}
	return true
}
