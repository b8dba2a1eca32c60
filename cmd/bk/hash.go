package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/otaforge/bundlekit/integrity"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Check != "" && !integrity.IsValidHashFormat(cfg.Check) {
		return fmt.Errorf("%w: invalid hash format %q", cli.ErrUsage, cfg.Check)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if cfg.Check != "" {
			if integrity.Verify(string(d), cfg.Check) {
				fmt.Fprintf(cc.Out, "%s: OK\n", file)
			} else {
				fmt.Fprintf(cc.Out, "%s: FAILED\n", file)
				failed = true
			}
			continue
		}
		fmt.Fprintf(cc.Out, "%s  %s\n", integrity.HashBundle(string(d)), file)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
