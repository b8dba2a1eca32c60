package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/otaforge/bundlekit/integrity"
)

func inspect(cfg *InspectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inspect.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := inspectFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func inspectFile(cfg *InspectConfig, cc *cli.Context, w io.Writer, file string) error {
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	b, err := loadBundleBytes(cfg.MainConfig, d, file)
	if err != nil {
		return err
	}
	head := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	if !cfg.colorize(w) {
		head.DisableColor()
		dim.DisableColor()
	}
	head.Fprintf(w, "%s\n", file)
	fmt.Fprintf(w, "  hash      %s\n", integrity.HashBundle(string(d)))
	fmt.Fprintf(w, "  prelude   %d bytes\n", len(b.Prelude))
	fmt.Fprintf(w, "  postlude  %d bytes\n", len(b.Postlude))
	fmt.Fprintf(w, "  modules   %d\n", len(b.Modules))
	for _, id := range b.IDs() {
		m := b.Modules[id]
		dim.Fprintf(w, "  %6d  %s  %7d bytes  deps %v\n", m.ID, m.Hash, len(m.Code), m.Dependencies)
	}
	return nil
}
