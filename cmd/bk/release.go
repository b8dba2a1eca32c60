package main

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/otaforge/bundlekit/rollout"
)

// release edits a YAML release config with an RFC 6902 patch, for
// pipeline-driven rollout changes.  The patched config must still
// decode as a release; otherwise nothing is written.
func release(cfg *ReleaseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Release.Parse(cc, args)
	if err != nil {
		cfg.Release.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" || len(args) != 1 {
		return fmt.Errorf("%w: release -p <json-patch> <release-file>", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", cfg.PatchFile, err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", cfg.PatchFile, err)
	}
	rd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	rj, err := yaml.YAMLToJSON(rd)
	if err != nil {
		return fmt.Errorf("error decoding release config %s: %w", args[0], err)
	}
	out, err := ops.Apply(rj)
	if err != nil {
		return fmt.Errorf("error patching release config: %w", err)
	}
	rel := &rollout.Release{}
	if err := json.Unmarshal(out, rel); err != nil {
		return fmt.Errorf("patched release config is invalid: %w", err)
	}
	yd, err := yaml.JSONToYAML(out)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(yd)
	return err
}
