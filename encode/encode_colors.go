package encode

import (
	"strings"

	"github.com/signadot/tomlsort/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
	HeaderColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string

	// Kinds overrides ValueColor for scalars by kind.
	Kinds map[ir.ScalarKind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		Kinds:   map[ir.ScalarKind]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: CommentColor,
		}
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	colors.Map[Colorable{Type: ir.CommentType, Attr: ValueColor}] = color.BlueString

	able := Colorable{Type: ir.TableType, Attr: HeaderColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Type = ir.AoTType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able = Colorable{Type: ir.InlineTableType, Attr: KeyColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	colors.Kinds[ir.StringKind] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Kinds[ir.IntegerKind] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Kinds[ir.FloatKind] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Kinds[ir.BoolKind] = color.CyanString
	colors.Kinds[ir.DatetimeKind] = color.RGB(198, 198, 46).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = escaped(f)
	}
	for k, f := range colors.Kinds {
		colors.Kinds[k] = escaped(f)
	}
	return colors
}

func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(n *ir.Node, a ColorAttr, s string) string {
	if n.Type == ir.ScalarType && a == ValueColor {
		if f := c.Kinds[n.Kind]; f != nil {
			return f(s)
		}
	}
	return c.Get(n.Type, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
