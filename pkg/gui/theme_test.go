package gui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testThemes = `
themes:
  - name: mono
    box: "#202020"
    label: "#c0c0c0"
    selected: "#ffffff"
    msg: "#ff0000"
    hint: "#0"
`

func TestLoadThemes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testThemes), 0644))

	themes, err := LoadThemes(path)
	require.NoError(t, err)
	require.Len(t, themes, 1)

	theme, err := ImportThemes("mono", themes)
	require.NoError(t, err)
	assert.Equal(t, "mono", theme.Name)
	assert.Equal(t, tcell.NewHexColor(0x202020), theme.Box)
	assert.Equal(t, tcell.ColorDefault, theme.Hint)

	_, err = LoadThemes(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestImportThemes(t *testing.T) {
	theme, err := ImportThemes("light", nil)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	// Themes from a file shadow the builtin of the same name.
	custom := ThemeHex{Name: "basic", Box: "#000000"}
	theme, err = ImportThemes("basic", []ThemeHex{custom})
	require.NoError(t, err)
	assert.Equal(t, int32(0), theme.Box.Hex())

	_, err = ImportThemes("neon", nil)
	assert.True(t, errors.Is(err, ErrNoTheme))
}

func TestThemeHex(t *testing.T) {
	hex := ThemeBasic.Hex()
	assert.Equal(t, "#303030", hex.Box)
	assert.Equal(t, "#0", hex.Hint)
	assert.Equal(t, hex, hex.Theme().Hex())
}
