package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/scenekit/gd-format/encode"
	"github.com/scenekit/gd-format/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colorized output'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts(label string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseLabel(label),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type ListConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='filter tags with an expression over {tag, index, fields, assignments}'"`

	List *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	PatchFile string `cli:"name=p desc='rfc 6902 json patch file'"`

	Patch *cli.Command
}
