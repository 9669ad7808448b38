package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/signadot/yaml-format/go-yamlfmt/check"
	"github.com/signadot/yaml-format/go-yamlfmt/format"
	"github.com/signadot/yaml-format/go-yamlfmt/textdiff"

	"github.com/scott-cotton/cli"
)

func yamlfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		if err := formatArg(cfg, cc, arg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func formatArg(cfg *MainConfig, cc *cli.Context, arg string) error {
	src, mode, err := readArg(arg)
	if err != nil {
		return err
	}
	out, err := format.Source(src, cfg.Style)
	if err != nil {
		return fmt.Errorf("%s: %w", arg, err)
	}
	if cfg.Verify {
		if err := check.Equivalent(src, out); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	changed := !bytes.Equal(src, out)
	switch {
	case cfg.List:
		if changed {
			fmt.Fprintln(cc.Out, arg)
		}
	case cfg.Diff:
		if changed {
			fmt.Fprint(cc.Out, textdiff.Lines(string(src), string(out), cfg.colored(cc.Out)))
		}
	case cfg.Write && arg != "-":
		if changed {
			if err := os.WriteFile(arg, out, mode); err != nil {
				return fmt.Errorf("error writing %s: %w", arg, err)
			}
		}
	default:
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func readArg(arg string) ([]byte, fs.FileMode, error) {
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		return d, 0644, err
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, 0, fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	d, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, st.Mode().Perm(), nil
}
