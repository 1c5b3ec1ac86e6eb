package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

// NotReadyError is returned when the dataset is not populated.
func NotReadyError(target string) error {
	msg := `Dataset at <em>%s</em> is empty

<em>How to fix:</em>
  1. Create tables: <em>gndex create</em>
  2. Load a dump: <em>gndex populate path/to/dump.yaml</em>`
	vars := []any{target}

	return &gn.Error{
		Code: errcode.StoreNotReadyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("dataset at %s is not populated", target),
	}
}

// VersionError is returned when the dataset was made for an
// incompatible version of the app.
func VersionError(have, want string) error {
	msg := "Dataset version <em>%s</em> is not compatible with gndex " +
		"<em>%s</em>, populate the dataset again"
	vars := []any{have, want}

	return &gn.Error{
		Code: errcode.StoreVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("dataset version %q, app version %q", have, want),
	}
}

// ReadError is returned when a query fails.
func ReadError(table string, err error) error {
	msg := "Cannot read <em>%s</em> from the dataset"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.StoreReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read %s: %w", table, err),
	}
}

// ResourceError is returned for a resource that cannot be listed.
func ResourceError(res string) error {
	msg := "Unknown resource <em>%s</em>"
	vars := []any{res}

	return &gn.Error{
		Code: errcode.InvalidInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown resource %q", res),
	}
}
