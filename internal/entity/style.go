package entity

const (
	ColorDefault     = "black"
	ColorNavy        = "navy"
	ColorGreenYellow = "greenyellow"
	ColorGray        = "gray"
	ColorOrange      = "orange"
	ColorSalmon      = "salmon"
)

// Style is the visual treatment a presentation layer applies to a cell.
type Style struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

var (
	DefaultStyle = Style{Foreground: ColorDefault, Background: ColorGray}
	DrawStyle    = Style{Foreground: ColorDefault, Background: ColorOrange}
	WinStyle     = Style{Foreground: ColorDefault, Background: ColorSalmon}
)

func StyleFor(mark Mark) Style {
	switch mark {
	case MarkPlayerOne:
		return Style{Foreground: ColorNavy, Background: ColorGray}
	case MarkPlayerTwo:
		return Style{Foreground: ColorGreenYellow, Background: ColorGray}
	default:
		return DefaultStyle
	}
}
