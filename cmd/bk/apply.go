package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/otaforge/bundlekit/bundle"
	"github.com/otaforge/bundlekit/integrity"
	"github.com/otaforge/bundlekit/libpatch"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply requires <bundle> <patch>, got %v", cli.ErrUsage, args)
	}
	base, err := loadBundle(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	p, err := loadPatch(cc, args[1])
	if err != nil {
		return err
	}
	var res *bundle.Bundle
	if cfg.Check != "" {
		if !integrity.IsValidHashFormat(cfg.Check) {
			return fmt.Errorf("%w: invalid hash format %q", cli.ErrUsage, cfg.Check)
		}
		res, err = libpatch.ApplyVerified(base, p, cfg.Check)
	} else {
		res, err = libpatch.Apply(base, p)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, bundle.Assemble(res))
	return err
}

func reverse(cfg *ReverseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reverse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: reverse requires <base> <patch>, got %v", cli.ErrUsage, args)
	}
	base, err := loadBundle(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	p, err := loadPatch(cc, args[1])
	if err != nil {
		return err
	}
	rev, err := libpatch.Reverse(base, p)
	if err != nil {
		return err
	}
	d, err := json.MarshalIndent(rev, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = cc.Out.Write(d)
	return err
}

func loadPatch(cc *cli.Context, file string) (*libpatch.Patch, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	p := &libpatch.Patch{}
	if err := json.Unmarshal(d, p); err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", file, err)
	}
	return p, nil
}
