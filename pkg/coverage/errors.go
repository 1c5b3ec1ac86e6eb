package coverage

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

func EmptyRosterError() error {
	msg := "Coverage needs at least one pokemon"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidInputError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: empty roster", fn.Name()),
	}
}
