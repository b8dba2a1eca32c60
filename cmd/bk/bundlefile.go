package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/otaforge/bundlekit/bundle"
)

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

func loadBundle(cfg *MainConfig, cc *cli.Context, file string) (*bundle.Bundle, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	return loadBundleBytes(cfg, d, file)
}

func loadBundleBytes(cfg *MainConfig, d []byte, file string) (*bundle.Bundle, error) {
	b, err := bundle.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return b, nil
}
