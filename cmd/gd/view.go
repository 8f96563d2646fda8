package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/scenekit/gd-format/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		f, err := getSceneFile(cc, cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := encode.Tree(f, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
