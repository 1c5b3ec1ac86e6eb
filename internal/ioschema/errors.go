package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

// GORMConnectionError is returned when GORM cannot use the connection.
func GORMConnectionError(err error) error {
	msg := "Cannot prepare schema migration"

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to open GORM connection: %w", err),
	}
}

// CreateSchemaError is returned when a table or index cannot be
// created. The table is empty when the failing table is unknown.
func CreateSchemaError(table string, err error) error {
	msg := "Cannot create dataset schema"
	var vars []any
	if table != "" {
		msg = "Cannot create table <em>%s</em>"
		vars = []any{table}
	}

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create schema %s: %w", table, err),
	}
}

// TablesExistError is returned when create would overwrite data.
func TablesExistError(target string, num int) error {
	msg := `Storage <em>%s</em> already has %d tables

Use <em>gndex create --force</em> to drop them and start over.`
	vars := []any{target, num}

	return &gn.Error{
		Code: errcode.SchemaTablesExistError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s has %d tables", target, num),
	}
}
