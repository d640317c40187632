package gui

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetroterm/pkg/tetromino"
	"gopkg.in/yaml.v3"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string
	Box      tcell.Color // empty squares of a piece's bounding box
	Label    tcell.Color
	Selected tcell.Color
	Msg      tcell.Color
	Hint     tcell.Color
}

// ThemeHex is the serialized form of a Theme
type ThemeHex struct {
	Name     string `yaml:"name"`
	Box      string `yaml:"box"`
	Label    string `yaml:"label"`
	Selected string `yaml:"selected"`
	Msg      string `yaml:"msg"`
	Hint     string `yaml:"hint"`
}

type themeFile struct {
	Themes []ThemeHex `yaml:"themes"`
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
		fmtHex(t.Box.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Selected.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Hint.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Box),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Selected),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Hint),
	}
}

var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// LoadThemes reads a YAML file holding a list under the themes key.
func LoadThemes(path string) ([]ThemeHex, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f themeFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", path, err)
	}

	return f.Themes, nil
}

// PieceColor converts a piece color to a true color terminal color.
func PieceColor(c tetromino.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color236,     // Box
	tcell.Color247,     // Label
	tcell.Color226,     // Selected
	tcell.Color160,     // Msg
	tcell.ColorDefault, // Hint
}

var ThemeLight = Theme{
	"light",        // Name
	tcell.Color254, // Box
	tcell.Color240, // Label
	tcell.Color25,  // Selected
	tcell.Color160, // Msg
	tcell.Color245, // Hint
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeLight}
