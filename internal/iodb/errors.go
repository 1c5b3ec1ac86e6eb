package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

// ConnectionError is returned when the storage cannot be opened.
func ConnectionError(backend, target string, err error) error {
	msg := `Cannot connect to <em>%s</em> storage at <em>%s</em>

<em>How to fix:</em>
  1. For sqlite check that the data directory is writable
  2. For postgres check that the server is running:
     <em>pg_isready</em>
  3. Review store settings in <em>~/.config/gndex/config.yaml</em>`
	vars := []any{backend, target}

	return &gn.Error{
		Code: errcode.StoreConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to connect to %s %s: %w", backend, target, err),
	}
}

// BackendError is returned for an unsupported storage backend.
func BackendError(backend string) error {
	msg := "Unknown store backend <em>%s</em>, use 'sqlite' or 'postgres'"
	vars := []any{backend}

	return &gn.Error{
		Code: errcode.StoreBackendError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown store backend %q", backend),
	}
}

// NotConnectedError is returned when Connect was not called.
func NotConnectedError() error {
	msg := "Storage operation attempted without connection"

	return &gn.Error{
		Code: errcode.StoreConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to storage"),
	}
}

// TableCheckError is returned when listing tables fails.
func TableCheckError(err error) error {
	msg := "Cannot list storage tables"

	return &gn.Error{
		Code: errcode.StoreReadError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to list tables: %w", err),
	}
}

// DropTableError is returned when a table cannot be dropped.
func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
