package dex

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/gnames/gndex/pkg/suggest"
)

// NotFoundError is returned when a name or id is absent from the dataset.
func NotFoundError(kind, ref string, candidates []string) error {
	msg := "%s <em>%s</em> not found, %s"
	vars := []any{kind, ref, suggest.Format(suggest.Matches(ref, candidates))}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s %q not found", fn.Name(), kind, ref),
	}
}

// AbsentError is returned when a record exists, but not yet in the
// requested generation.
func AbsentError(kind, name string, gen, first int) error {
	msg := "%s <em>%s</em> does not exist in generation %d, " +
		"it first appears in generation %d"
	vars := []any{kind, name, gen, first}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s %q absent in generation %d",
			fn.Name(), kind, name, gen),
	}
}

func EvolutionDecodeError(id int, err error) error {
	msg := "Cannot read evolution chain <em>%d</em>"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.EvolutionDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode evolution chain: %w", fn.Name(), err),
	}
}

// CustomBaseError is returned when a custom pokemon refers to a base
// pokemon missing from the dataset.
func CustomBaseError(nickname, base string) error {
	msg := "Custom pokemon <em>%s</em> uses unknown base pokemon <em>%s</em>"
	vars := []any{nickname, base}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: base %q of custom pokemon %q not found",
			fn.Name(), base, nickname),
	}
}

func CustomTypingError(nickname string, types []string) error {
	msg := "Custom pokemon <em>%s</em> has invalid types %v"
	vars := []any{nickname, types}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidInputError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid types of custom pokemon %q: %v",
			fn.Name(), nickname, types),
	}
}
