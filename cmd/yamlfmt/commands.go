package main

import (
	"github.com/signadot/yaml-format/go-yamlfmt/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Style: format.DefaultStyle()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "indent",
		Description: "indent width in spaces (default 2)",
		Type:        cli.NamedFuncOpt(cfg.indentOpt, "(width)"),
	})

	return cli.NewCommandAt(&cfg.Main, "yamlfmt").
		WithSynopsis("yamlfmt [opts] [files]").
		WithDescription("yamlfmt normalizes the indentation of YAML files.\n\n" +
			"Without arguments, or with \"-\", yamlfmt reads standard input. " +
			"Comments are re-aligned with the content they annotate and " +
			"everything else is preserved verbatim.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlfmtMain(cfg, cc, args)
		})
}
