// Package ioview renders resolved data for the terminal, as plain text
// or as JSON.
package ioview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gnames/gndex/pkg/config"
	"github.com/gnames/gnfmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Output formats.
const (
	Text = "text"
	JSON = "json"
)

// View writes rendered output to a writer.
type View struct {
	w      io.Writer
	format string
	title  cases.Caser

	header *color.Color
	accent *color.Color
	strong *color.Color
	weak   *color.Color
	immune *color.Color
}

// New creates a View that follows format and color settings of the
// configuration.
func New(w io.Writer, cfg *config.Config) *View {
	res := View{
		w:      w,
		format: cfg.Format,
		title:  cases.Title(language.English),
		header: color.New(color.FgCyan, color.Bold),
		accent: color.New(color.FgYellow),
		strong: color.New(color.FgRed),
		weak:   color.New(color.FgGreen),
		immune: color.New(color.FgHiBlack),
	}
	if res.format != JSON {
		res.format = Text
	}
	for _, c := range res.colors() {
		if cfg.WithColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &res
}

func (v *View) colors() []*color.Color {
	return []*color.Color{
		v.header, v.accent, v.strong, v.weak, v.immune,
	}
}

// IsJSON reports whether the view renders JSON.
func (v *View) IsJSON() bool {
	return v.format == JSON
}

// Names writes names of a resource joined by delimiter.
func (v *View) Names(names []string, delim string) error {
	if v.IsJSON() {
		return v.json(names)
	}
	if delim == "" {
		delim = "\n"
	}
	return v.print(strings.Join(names, delim))
}

func (v *View) json(obj any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(obj)
	if err != nil {
		return EncodeError(err)
	}
	return v.print(string(bs))
}

func (v *View) print(s string) error {
	if _, err := fmt.Fprintln(v.w, s); err != nil {
		return WriteError(err)
	}
	return nil
}

// name converts a dataset name like 'sky-uppercut' to 'Sky Uppercut'.
func (v *View) name(s string) string {
	return v.title.String(strings.ReplaceAll(s, "-", " "))
}

// multiplier formats a damage multiplier colored by its strength.
func (v *View) multiplier(m float64) string {
	s := formatMultiplier(m)
	switch {
	case m == 0:
		return v.immune.Sprint(s)
	case m >= 2:
		return v.strong.Sprint(s)
	case m < 1:
		return v.weak.Sprint(s)
	default:
		return s
	}
}

func formatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64) + "x"
}

func optional(i *int) string {
	if i == nil {
		return "-"
	}
	return strconv.Itoa(*i)
}
