package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/signadot/yaml-format/go-yamlfmt/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Write  bool `cli:"name=w desc='write result back to source files'"`
	List   bool `cli:"name=l desc='list files whose formatting differs'"`
	Diff   bool `cli:"name=d desc='display diffs instead of rewriting files'"`
	Verify bool `cli:"name=verify desc='check the output decodes to the same data as the input'"`
	Color  bool `cli:"name=color desc='color diff output'"`

	Style *format.Style

	Main *cli.Command
}

func (cfg *MainConfig) indentOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: invalid indent width %q", cli.ErrUsage, a)
	}
	cfg.Style = &format.Style{IndentWidth: n}
	return n, nil
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
