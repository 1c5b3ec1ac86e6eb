package game

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/gnames/gndex/pkg/suggest"
)

func UnknownGenerationError(arg string, games []string) error {
	msg := "Game or generation <em>%s</em> does not exist"
	vars := []any{arg}
	if games != nil {
		msg += ", %s"
		vars = append(vars, suggest.Format(suggest.Matches(arg, games)))
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownGenerationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown game or generation %q", fn.Name(), arg),
	}
}

func NoGamesError() error {
	msg := "The dataset has no games, run <em>gndex populate</em> first"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreNotReadyError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: games table is empty", fn.Name()),
	}
}
