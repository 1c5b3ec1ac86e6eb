package iopopulate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

// DumpReadError is returned when a dump cannot be read or decoded.
func DumpReadError(path string, err error) error {
	msg := "Cannot read dataset dump <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PopulateDumpReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read dump %s: %w", path, err),
	}
}

// NoSchemaError is returned when tables were not created yet.
func NoSchemaError(target string) error {
	msg := `Storage <em>%s</em> has no dataset tables

Run <em>gndex create</em> first.`
	vars := []any{target}

	return &gn.Error{
		Code: errcode.StoreNotReadyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no tables in %s", target),
	}
}

// InsertError is returned when rows cannot be written.
func InsertError(table string, err error) error {
	msg := "Cannot import rows into <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.PopulateInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to insert into %s: %w", table, err),
	}
}

// CancelledError is returned when population is interrupted.
func CancelledError(err error) error {
	msg := "Population was cancelled"

	return &gn.Error{
		Code: errcode.PopulateInsertError,
		Msg:  msg,
		Err:  fmt.Errorf("population cancelled: %w", err),
	}
}
