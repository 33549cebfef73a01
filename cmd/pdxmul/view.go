package main

import (
	"fmt"
	"io"
	"os"

	"github.com/eu4tools/pdxmul/encode"
	"github.com/eu4tools/pdxmul/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := viewArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func viewArg(cfg *ViewConfig, w io.Writer, arg string) error {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	root, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	return encode.Encode(root, w, cfg.encOpts(w)...)
}
