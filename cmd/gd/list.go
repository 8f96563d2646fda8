package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/scenekit/gd-format/encode"
	"github.com/scenekit/gd-format/ir"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.AllowUndefinedVariables())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range orStdin(args) {
		f, err := getSceneFile(cc, cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := listTags(cfg, cc, f, prg); err != nil {
			return err
		}
	}
	return nil
}

func listTags(cfg *ListConfig, cc *cli.Context, f *ir.File, prg *vm.Program) error {
	for i := range f.Tags {
		tag := &f.Tags[i]
		if prg != nil {
			res, err := expr.Run(prg, tagEnv(tag, i))
			if err != nil {
				return fmt.Errorf("error evaluating -where on tag %d: %w", i, err)
			}
			keep, ok := res.(bool)
			if !ok {
				return fmt.Errorf("%w: -where expression must be boolean, got %T", cli.ErrUsage, res)
			}
			if !keep {
				continue
			}
		}
		_, err := fmt.Fprintf(cc.Out, "%d\t%s\tfields=%d assignments=%d\n",
			i, tag.Identifier, len(tag.Fields), len(tag.Assignments))
		if err != nil {
			return err
		}
	}
	return nil
}

// tagEnv exposes one tag to a -where expression. Duplicate field names
// collapse to the last occurrence, which is fine for filtering.
func tagEnv(tag *ir.Tag, index int) map[string]any {
	return map[string]any{
		"tag":         tag.Identifier,
		"index":       index,
		"fields":      fieldsEnv(tag.Fields),
		"assignments": fieldsEnv(tag.Assignments),
	}
}

func fieldsEnv(fields []ir.Field) map[string]any {
	res := make(map[string]any, len(fields))
	for i := range fields {
		res[fields[i].Name] = encode.ValueToAny(fields[i].Value)
	}
	return res
}
