package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "pdxmul").
		WithSynopsis("pdxmul [opts] command [opts]").
		WithDescription("pdxmul builds and applies multiplier tables for Paradox script.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pdxmulMain(cfg, cc, args)
		}).
		WithSubs(
			GenModifiersCommand(cfg),
			MultiplyCommand(cfg),
			ViewCommand(cfg))
}

func pdxmulMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func GenModifiersCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenModifiersConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("gen-modifiers").
		WithAliases("gen", "g").
		WithSynopsis("gen-modifiers [-i names] [-o table] [-p patch]").
		WithDescription("Build a multiplier table from a raw modifier name list.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return genModifiers(cfg, cc, args)
		})
	cfg.GenModifiers = cmd
	return cmd
}

func MultiplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MultiplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("multiply").
		WithAliases("mul", "m").
		WithSynopsis("multiply [-t table] [-diff] [-k]").
		WithDescription("Apply a multiplier table to the configured game data trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return multiply(cfg, cc, args)
		})
	cfg.Multiply = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("Parse script files and reprint them canonically.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
