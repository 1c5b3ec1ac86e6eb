package ioview

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
)

func EncodeError(err error) error {
	return &gn.Error{
		Code: errcode.RenderError,
		Msg:  "Cannot encode output to JSON",
		Err:  fmt.Errorf("ioview: json encode: %w", err),
	}
}

func WriteError(err error) error {
	return &gn.Error{
		Code: errcode.RenderError,
		Msg:  "Cannot write output",
		Err:  fmt.Errorf("ioview: write: %w", err),
	}
}
