package main

import (
	"github.com/scott-cotton/cli"
)

const name = "toml-sort"

var version = "0.1.0"

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Aliases:     []string{"output"},
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, name).
		WithSynopsis("toml-sort [opts] [files]").
		WithDescription("toml-sort sorts and formats toml files. With no files or '-' it reads stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tomlSort(cfg, cc, args)
		})
}
