package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/otaforge/bundlekit/libpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := loadBundle(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadBundle(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	p := libpatch.Diff(from, to)
	if cfg.Stat {
		fmt.Fprintf(cc.Out, "%d operations, %d bytes\n", len(p.Ops), libpatch.Size(p))
		return nil
	}
	if cfg.Text {
		return textDiff(cfg, cc, from, p)
	}
	d, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if cfg.YAML {
		d, err = yaml.JSONToYAML(d)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	d = append(d, '\n')
	_, err = cc.Out.Write(d)
	return err
}
