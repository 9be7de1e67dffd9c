package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

var ErrThemeNotFound = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name    string      `json:"name"`
	Blue    tcell.Color `json:"blue"`
	Green   tcell.Color `json:"green"`
	Orange  tcell.Color `json:"orange"`
	Red     tcell.Color `json:"red"`
	Purple  tcell.Color `json:"purple"`
	Yellow  tcell.Color `json:"yellow"`
	Border  tcell.Color `json:"border"`
	Label   tcell.Color `json:"label"`
	Score   tcell.Color `json:"score"`
	Message tcell.Color `json:"message"`
}

// ThemeHex is the JSON form of a Theme
type ThemeHex struct {
	Name    string `json:"name"`
	Blue    string `json:"blue"`
	Green   string `json:"green"`
	Orange  string `json:"orange"`
	Red     string `json:"red"`
	Purple  string `json:"purple"`
	Yellow  string `json:"yellow"`
	Border  string `json:"border"`
	Label   string `json:"label"`
	Score   string `json:"score"`
	Message string `json:"message"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Blue.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Orange.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Purple.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Score.Hex()),
		fmtHex(t.Message.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.Green),
		tcell.GetColor(t.Orange),
		tcell.GetColor(t.Red),
		tcell.GetColor(t.Purple),
		tcell.GetColor(t.Yellow),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Score),
		tcell.GetColor(t.Message),
	}
}

// Block returns the color a cell is drawn in. Cells of the falling piece take
// the piece's color.
func (t Theme) Block(b mino.Block, piece mino.Block) tcell.Color {
	if b.Active() {
		b = piece
	}

	switch b {
	case mino.BlockBlue:
		return t.Blue
	case mino.BlockGreen:
		return t.Green
	case mino.BlockOrange:
		return t.Orange
	case mino.BlockRed:
		return t.Red
	case mino.BlockPurple:
		return t.Purple
	case mino.BlockYellow:
		return t.Yellow
	default:
		return tcell.ColorDefault
	}
}

// LoadThemes decodes a JSON list of themes
func LoadThemes(r io.Reader) ([]ThemeHex, error) {
	var themes []ThemeHex
	if err := json.NewDecoder(r).Decode(&themes); err != nil {
		return nil, fmt.Errorf("failed to decode themes: %w", err)
	}

	return themes, nil
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%q: %w", want, ErrThemeNotFound)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color33,      // Blue
	tcell.Color40,      // Green
	tcell.Color208,     // Orange
	tcell.Color160,     // Red
	tcell.Color128,     // Purple
	tcell.Color184,     // Yellow
	tcell.Color247,     // Border
	tcell.Color247,     // Label
	tcell.ColorDefault, // Score
	tcell.Color160,     // Message
}

// ThemeMono draws every block in the terminal's default color
var ThemeMono = Theme{
	"mono",
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
}

// Themes are the built-in themes
var Themes = []Theme{ThemeBasic, ThemeMono}
