package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/otaforge/bundlekit/bundle"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	MaxSize int  `cli:"name=maxSize desc='maximum bundle size in bytes (0 for unlimited)'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []bundle.ParseOption {
	if cfg.MaxSize > 0 {
		return []bundle.ParseOption{bundle.MaxSize(cfg.MaxSize)}
	}
	return nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type InspectConfig struct {
	*MainConfig

	Inspect *cli.Command
}

type DiffConfig struct {
	*MainConfig
	YAML bool `cli:"name=y desc='output the patch as yaml'"`
	Stat bool `cli:"name=stat desc='print operation count and wire size only'"`
	Text bool `cli:"name=text desc='show per-module code diffs'"`

	Diff *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	Check string `cli:"name=check desc='verify the result against this bundle hash'"`

	Apply *cli.Command
}

type ReverseConfig struct {
	*MainConfig

	Reverse *cli.Command
}

type HashConfig struct {
	*MainConfig
	Check string `cli:"name=c desc='check files against this hash'"`

	Hash *cli.Command
}

type EligibleConfig struct {
	*MainConfig
	ReleaseFile string `cli:"name=release desc='release config file (yaml)'"`
	DeviceFile  string `cli:"name=device desc='device attributes file (yaml)'"`
	ID          string `cli:"name=id desc='device identifier'"`

	Eligible *cli.Command
}

type ReleaseConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='RFC 6902 json patch file'"`

	Release *cli.Command
}
