package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/scenekit/gd-format/encode"
	"github.com/scenekit/gd-format/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a <tag>[.<field>] argument", cli.ErrUsage)
	}
	tagSel, fieldSel, _ := strings.Cut(args[0], ".")
	if tagSel == "" {
		return fmt.Errorf("%w: empty tag selector", cli.ErrUsage)
	}
	for _, arg := range orStdin(args[1:]) {
		f, err := getSceneFile(cc, cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := getFrom(cfg, cc, f, tagSel, fieldSel); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return nil
}

func getFrom(cfg *GetConfig, cc *cli.Context, f *ir.File, tagSel, fieldSel string) error {
	tags := f.TagsNamed(tagSel)
	if len(tags) == 0 {
		return fmt.Errorf("no tag %q", tagSel)
	}
	for _, tag := range tags {
		if fieldSel == "" {
			if err := emitAny(cc, encode.ToAny(&ir.File{Tags: []ir.Tag{*tag}})); err != nil {
				return err
			}
			continue
		}
		// assignments shadow header fields of the same name
		v := ir.FieldNamed(tag.Assignments, fieldSel)
		if v == nil {
			v = ir.FieldNamed(tag.Fields, fieldSel)
		}
		if v == nil {
			return fmt.Errorf("tag %q has no field %q", tagSel, fieldSel)
		}
		if err := emitAny(cc, encode.ValueToAny(v)); err != nil {
			return err
		}
	}
	return nil
}

func emitAny(cc *cli.Context, v any) error {
	enc := json.NewEncoder(cc.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
