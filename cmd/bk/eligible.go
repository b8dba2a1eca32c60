package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/otaforge/bundlekit/rollout"
)

func eligible(cfg *EligibleConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Eligible.Parse(cc, args)
	if err != nil {
		cfg.Eligible.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.ReleaseFile == "" {
		return fmt.Errorf("%w: eligible requires -release", cli.ErrUsage)
	}
	if cfg.ID == "" {
		return fmt.Errorf("%w: eligible requires -id", cli.ErrUsage)
	}
	rd, err := os.ReadFile(cfg.ReleaseFile)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", cfg.ReleaseFile, err)
	}
	rel := &rollout.Release{}
	if err := yaml.Unmarshal(rd, rel); err != nil {
		return fmt.Errorf("error decoding release config %s: %w", cfg.ReleaseFile, err)
	}
	dev := &rollout.DeviceAttributes{}
	if cfg.DeviceFile != "" {
		dd, err := os.ReadFile(cfg.DeviceFile)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", cfg.DeviceFile, err)
		}
		if err := yaml.Unmarshal(dd, dev); err != nil {
			return fmt.Errorf("error decoding device attributes %s: %w", cfg.DeviceFile, err)
		}
	}
	bucket := rollout.Bucket(cfg.ID)
	if rollout.Eligible(cfg.ID, dev, rel) {
		fmt.Fprintf(cc.Out, "eligible (bucket %d, rollout %d%%)\n", bucket, rel.RolloutPercentage)
		return nil
	}
	fmt.Fprintf(cc.Out, "not eligible (bucket %d, rollout %d%%)\n", bucket, rel.RolloutPercentage)
	return cli.ExitCodeErr(1)
}
