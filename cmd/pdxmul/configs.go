package main

import (
	"io"
	"os"

	"github.com/eu4tools/pdxmul/config"
	"github.com/eu4tools/pdxmul/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config string `cli:"name=c aliases=config desc='configuration file (default ./config.yaml)'"`

	Main *cli.Command
}

func (cfg *MainConfig) loadConfig() (*config.Config, error) {
	path := cfg.Config
	if path == "" {
		path = "config.yaml"
	}
	return config.Load(path)
}

type GenModifiersConfig struct {
	*MainConfig

	Input  string `cli:"name=i aliases=input desc='raw modifier name list (default ./modifiers.txt)'"`
	Output string `cli:"name=o aliases=output desc='modifier table output (default ./modifiers.json)'"`
	Patch  string `cli:"name=p aliases=patch desc='JSON merge patch applied to the built table'"`

	GenModifiers *cli.Command
}

func (cfg *GenModifiersConfig) input() string {
	if cfg.Input == "" {
		return "modifiers.txt"
	}
	return cfg.Input
}

func (cfg *GenModifiersConfig) output() string {
	if cfg.Output == "" {
		return "modifiers.json"
	}
	return cfg.Output
}

type MultiplyConfig struct {
	*MainConfig

	Table     string `cli:"name=t aliases=table desc='modifier table (default ./modifiers.json)'"`
	Diff      bool   `cli:"name=diff desc='print a change report for every written file'"`
	KeepGoing bool   `cli:"name=k aliases=keep-going desc='continue past per-file parse failures'"`

	Multiply *cli.Command
}

func (cfg *MultiplyConfig) table() string {
	if cfg.Table == "" {
		return "modifiers.json"
	}
	return cfg.Table
}

type ViewConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='encode with color'"`

	View *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.View.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}
