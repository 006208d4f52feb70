package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Palette used by the terminal and the game screen.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorAccent // brand purple, used for the prompt and banner
	ColorPink
	ColorGray
	ColorWhite
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBrightGreen:
		return "bright-green"
	case ColorYellow:
		return "yellow"
	case ColorAccent:
		return "accent"
	case ColorPink:
		return "pink"
	case ColorGray:
		return "gray"
	case ColorWhite:
		return "white"
	default:
		return "default"
	}
}
