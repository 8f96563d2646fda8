package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/scenekit/gd-format/encode"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patch.json>", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", cfg.PatchFile, err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", cfg.PatchFile, err)
	}
	for _, arg := range orStdin(args) {
		f, err := getSceneFile(cc, cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		doc, err := encode.MarshalJSON(f)
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		out, err := ops.Apply(doc)
		if err != nil {
			return fmt.Errorf("error applying patch to %s: %w", arg, err)
		}
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, out, "", "  "); err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		buf.WriteByte('\n')
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
