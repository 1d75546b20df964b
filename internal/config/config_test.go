package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 16, cfg.Cols)
	assert.Len(t, cfg.Palette, 10)
}

func TestDefaultPaletteNotShared(t *testing.T) {
	cfg := Default()
	cfg.Palette[0] = "white"
	assert.Equal(t, "black", DefaultPalette[0])
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
rows: 8
cols: 12
ink: Red
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Rows)
	assert.Equal(t, 12, cfg.Cols)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Equal(t, "red", cfg.Ink, "ink is normalised")
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("rows: 4\ncolumns: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero rows", "rows: 0"},
		{"too many cols", "cols: 257"},
		{"fps too high", "fps: 500"},
		{"empty palette", "palette: []"},
		{"long glyph", "on_glyph: \"###\""},
		{"empty glyph", "off_glyph: \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "got %v", err)
		})
	}
}

func TestParseInkMustBeInPalette(t *testing.T) {
	_, err := Parse([]byte("palette: [red, blue]\nink: green\n"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), `ink "green" is not in the palette`)
}

func TestParseDuplicatePalette(t *testing.T) {
	_, err := Parse([]byte("palette: [Red, red]\nink: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listed twice")
}

func TestNormalizeNFC(t *testing.T) {
	// A decomposed "e" + combining grave accent normalises to the precomposed form.
	cfg := Config{Palette: []string{" CRE\u0300ME "}, Ink: "cre\u0300me"}
	cfg.Normalize()

	assert.Equal(t, "cr\u00e8me", cfg.Palette[0])
	assert.Equal(t, cfg.Palette[0], cfg.Ink)
}

func TestNextInk(t *testing.T) {
	cfg := Config{Palette: []string{"red", "green", "blue"}}

	assert.Equal(t, "green", cfg.NextInk("red"))
	assert.Equal(t, "red", cfg.NextInk("blue"))
	assert.Equal(t, "red", cfg.NextInk("unknown"))
}
