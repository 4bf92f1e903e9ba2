// Package renderer turns grids and messages into terminal text.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeonforge/pkg/engine/world"
)

// Icon constants for cells that hold no template
const (
	IconPermanent = "▓"
	IconEmpty     = "·"
)

// Glyph tables are indexed by the opening bits N=1 E=2 S=4 W=8.
var (
	heavyGlyphs = [16]string{
		"■", "╹", "╺", "┗", "╻", "┃", "┏", "┣",
		"╸", "┛", "━", "┻", "┓", "┫", "┳", "╋",
	}
	lightGlyphs = [16]string{
		"□", "╵", "╶", "└", "╷", "│", "┌", "├",
		"╴", "┘", "─", "┴", "┐", "┤", "┬", "┼",
	}
)

var (
	ColorRoom        color.Style
	ColorPassage     color.Style
	ColorPermanent   color.Style
	ColorEmpty       color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorSubtle      color.Style

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.\-/]+)}`)
)

// InitColors initializes the color styles
func InitColors() {
	ColorRoom = color.Style{color.FgYellow, color.OpBold}
	ColorPassage = color.Style{color.FgCyan}
	ColorPermanent = color.Style{color.FgGray}
	ColorEmpty = color.Style{color.FgGray}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
}

// openingBits packs a cell's openings into a glyph table index
func openingBits(c *world.Cell) int {
	bits := 0
	for i, dir := range world.AllDirections() {
		if c.IsOpen(dir) {
			bits |= 1 << i
		}
	}
	return bits
}

// Glyph returns the symbol for a cell: heavy box-drawing for rooms, light
// for passages.
func Glyph(c *world.Cell) string {
	switch {
	case c == nil || c.Permanent && c.IsEmpty():
		return IconPermanent
	case c.IsEmpty():
		return IconEmpty
	case c.IsPassage():
		return lightGlyphs[openingBits(c)]
	default:
		return heavyGlyphs[openingBits(c)]
	}
}

// RenderCell returns the glyph for a cell, styled when colored is set
func RenderCell(c *world.Cell, colored bool) string {
	g := Glyph(c)
	if !colored {
		return g
	}
	switch {
	case c == nil || c.Permanent && c.IsEmpty():
		return ColorPermanent.Sprint(g)
	case c.IsEmpty():
		return ColorEmpty.Sprint(g)
	case c.IsPassage():
		return ColorPassage.Sprint(g)
	default:
		return ColorRoom.Sprint(g)
	}
}

// FormatString formats a string with special markup: GT{KEY} is
// translated, ACTION{word} and DENIED{text} are highlighted.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = gotext.Get(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		case "DENIED":
			val = ColorDenied.Sprint(operand)
		case "SUBTLE":
			val = ColorSubtle.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}
