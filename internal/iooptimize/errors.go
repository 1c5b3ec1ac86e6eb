package iooptimize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

func OrphansError(table string, err error) error {
	return &gn.Error{
		Code: errcode.OptimizeOrphansError,
		Msg:  "Failed to remove orphan rows of <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("delete orphans from %s: %w", table, err),
	}
}

func VacuumError(stmt string, err error) error {
	return &gn.Error{
		Code: errcode.OptimizeVacuumError,
		Msg:  "Failed to run <em>%s</em>",
		Vars: []any{stmt},
		Err:  fmt.Errorf("%s: %w", stmt, err),
	}
}
