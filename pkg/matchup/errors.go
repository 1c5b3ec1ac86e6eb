package matchup

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

func DefendersNumberError(n int) error {
	msg := "Matchup needs from 1 to %d defenders, got <em>%d</em>"
	vars := []any{MaxDefenders, n}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: wrong number of defenders: %d", fn.Name(), n),
	}
}

func NoAttackerError() error {
	msg := "Matchup needs an attacker"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidInputError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: attacker is empty", fn.Name()),
	}
}
