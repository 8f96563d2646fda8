package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scenekit/gd-format/encode"
	"github.com/scenekit/gd-format/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	f1, err := getSceneFile(cc, cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	f2, err := getSceneFile(cc, cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(f1, f2) {
		return nil
	}
	a, err := canonical(f1)
	if err != nil {
		return err
	}
	b, err := canonical(f2)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, true)
	if len(cfg.encOpts(cc.Out)) > 0 {
		// terminal or -color: inline colored diff
		_, err = fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		for _, p := range diffCfg.PatchMake(a, diffs) {
			_, err = fmt.Fprint(cc.Out, p.String())
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// canonical renders a file to its indented json projection, the text the
// diff is computed over.
func canonical(f *ir.File) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.EncodeJSON(f, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
