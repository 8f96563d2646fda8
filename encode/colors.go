package encode

import (
	"github.com/fatih/color"

	"github.com/scenekit/gd-format/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	FieldColor
	ValueColor
	TypeColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: TagColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = TypeColor
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.StringType
	colors.Map[able] = color.GreenString

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.ConstructType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	return colors
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}

func (c *Colors) sprintf(able Colorable, format string, args ...any) string {
	f, ok := c.Map[able]
	if !ok {
		f = c.Default
	}
	return f(format, args...)
}
