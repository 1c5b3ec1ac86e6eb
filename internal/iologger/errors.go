package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

// CreateLogFileError is returned when destination is 'file' and
// gndex.log cannot be opened.
func CreateLogFileError(path string, err error) error {
	msg := "Cannot open log file <em>%s</em>, " +
		"set <em>log.destination</em> to stderr or stdout"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open log %s: %w", fn.Name(), path, err),
	}
}
