// Package view derives display-ready data from a transaction snapshot and the
// current UI state. Every function here is pure: inputs are never mutated.
package view

import (
	"fmt"
	"strings"
)

// AllMonths disables the month filter.
const AllMonths = "00"

// Column identifies a sortable table column.
type Column int

const (
	ColumnDate Column = iota
	ColumnDescription
	ColumnCategory
	ColumnAmount
)

var columnNames = map[string]Column{
	"date":        ColumnDate,
	"description": ColumnDescription,
	"category":    ColumnCategory,
	"amount":      ColumnAmount,
}

// ParseColumn maps a column name, in any case, to its Column.
func ParseColumn(name string) (Column, error) {
	column, ok := columnNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColumnDate, fmt.Errorf("unknown column %q", name)
	}
	return column, nil
}

// Direction is the tri-state sort toggle.
type Direction int

const (
	// DirectionReset restores ascending date order.
	DirectionReset Direction = iota
	DirectionDescending
	DirectionAscending
)

// NextDirection advances the toggle: reset, descending, ascending, reset, ...
func NextDirection(d Direction) Direction {
	return (d + 1) % 3
}

// State is the UI input to every derivation.
type State struct {
	Month         string
	Query         string
	SortColumn    Column
	SortDirection Direction
}

// DefaultState shows all months, unsearched, in date order.
func DefaultState() State {
	return State{Month: AllMonths}
}
