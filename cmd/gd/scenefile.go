package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/scenekit/gd-format/ir"
	"github.com/scenekit/gd-format/parse"
)

func getSceneFile(cc *cli.Context, cfg *MainConfig, path string) (*ir.File, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// orStdin turns an empty argument list into a read of standard input.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
