package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/scenekit/gd-format/encode"
	"github.com/scenekit/gd-format/ir"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		f, err := getSceneFile(cc, cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := dumpFile(cfg, cc.Out, f); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, f *ir.File) error {
	if cfg.Y {
		return encode.EncodeYAML(f, w)
	}
	return encode.EncodeJSON(f, w)
}
