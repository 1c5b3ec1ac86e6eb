package changelog

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

func UnknownGenerationError(gen int) error {
	msg := "Generation <em>%d</em> does not exist"
	vars := []any{gen}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownGenerationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown generation %d", fn.Name(), gen),
	}
}
