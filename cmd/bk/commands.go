package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxSize: 256 << 20}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "bk").
		WithSynopsis("bk [opts] command [opts]").
		WithDescription("bk is a tool for working with OTA code bundles and patches.").
		WithOpts(opts...).
		WithSubs(
			InspectCommand(cfg),
			DiffCommand(cfg),
			ApplyCommand(cfg),
			ReverseCommand(cfg),
			HashCommand(cfg),
			EligibleCommand(cfg),
			ReleaseCommand(cfg))
}

func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InspectConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("inspect").
		WithAliases("i", "in").
		WithSynopsis("inspect [files]").
		WithDescription("parse bundles and summarize their modules").
		WithRun(func(cc *cli.Context, args []string) error {
			return inspect(cfg, cc, args)
		})
	cfg.Inspect = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff <old> <new>").
		WithDescription("diff two bundles into a patch").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithOpts(opts...).
		WithSynopsis("apply [-check hash] <bundle> <patch>").
		WithDescription("apply a patch to a bundle").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func ReverseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReverseConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("reverse").
		WithAliases("r", "rev").
		WithSynopsis("reverse <base> <patch>").
		WithDescription("compute the inverse patch for rollback").
		WithRun(func(cc *cli.Context, args []string) error {
			return reverse(cfg, cc, args)
		})
	cfg.Reverse = cmd
	return cmd
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("hash").
		WithAliases("h", "ha").
		WithOpts(opts...).
		WithSynopsis("hash [-c hash] [files]").
		WithDescription("print or check bundle integrity hashes").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
	cfg.Hash = cmd
	return cmd
}

func EligibleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EligibleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eligible").
		WithAliases("e", "el").
		WithOpts(opts...).
		WithSynopsis("eligible -release <file> -id <device-id> [-device <file>]").
		WithDescription("decide whether a device receives a release").
		WithRun(func(cc *cli.Context, args []string) error {
			return eligible(cfg, cc, args)
		})
	cfg.Eligible = cmd
	return cmd
}

func ReleaseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReleaseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("release").
		WithAliases("rel").
		WithOpts(opts...).
		WithSynopsis("release -p <json-patch> <release-file>").
		WithDescription("edit a release config with an RFC 6902 patch").
		WithRun(func(cc *cli.Context, args []string) error {
			return release(cfg, cc, args)
		})
	cfg.Release = cmd
	return cmd
}
