// Package config loads the paint configuration: board size, frame rate,
// palette and cell glyphs.
//
// Files are YAML. Decoding is strict (unknown keys are rejected) and the
// decoded value is unified with an embedded CUE schema, so range and shape
// errors are reported with CUE's diagnostics.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Defaults. The board size is fixed per process; there is no resize.
const (
	DefaultRows     = 16
	DefaultCols     = 16
	DefaultFPS      = 30
	DefaultInk      = "black"
	DefaultOnGlyph  = "██"
	DefaultOffGlyph = "··"
)

// DefaultPalette is the colour palette offered by the canvas.
var DefaultPalette = []string{
	"black", "red", "yellow", "purple", "blue",
	"green", "cyan", "magenta", "orange", "grey",
}

// Config is the paint configuration.
type Config struct {
	Rows     int      `yaml:"rows" json:"rows"`
	Cols     int      `yaml:"cols" json:"cols"`
	FPS      int      `yaml:"fps" json:"fps"`
	Palette  []string `yaml:"palette" json:"palette"`
	Ink      string   `yaml:"ink" json:"ink"`
	OnGlyph  string   `yaml:"on_glyph" json:"on_glyph"`
	OffGlyph string   `yaml:"off_glyph" json:"off_glyph"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		FPS:      DefaultFPS,
		Palette:  slices.Clone(DefaultPalette),
		Ink:      DefaultInk,
		OnGlyph:  DefaultOnGlyph,
		OffGlyph: DefaultOffGlyph,
	}
}

// ValidationError reports a configuration that does not satisfy the schema.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + e.Message
}

// IsValidationError returns true if err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Load reads a YAML config file. Keys absent from the file keep their
// default values. The result is normalised and validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data. See Load.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize canonicalises palette and ink names: trimmed, lower-cased and
// NFC-normalised, so "Grey" and a decomposed "grey" name the same colour.
func (c *Config) Normalize() {
	for i, name := range c.Palette {
		c.Palette[i] = normalizeColor(name)
	}
	c.Ink = normalizeColor(c.Ink)
}

func normalizeColor(name string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(name)))
}

// Validate checks c against the embedded CUE schema and checks that the ink
// is one of the palette colours.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Message: strings.TrimSpace(cueerrors.Details(err, nil))}
	}

	if !slices.Contains(c.Palette, c.Ink) {
		return &ValidationError{Message: fmt.Sprintf("ink %q is not in the palette", c.Ink)}
	}

	seen := make(map[string]bool, len(c.Palette))
	for _, name := range c.Palette {
		if seen[name] {
			return &ValidationError{Message: fmt.Sprintf("palette colour %q listed twice", name)}
		}
		seen[name] = true
	}
	return nil
}

// NextInk returns the palette colour after the current ink, wrapping.
func (c Config) NextInk(ink string) string {
	if len(c.Palette) == 0 {
		return ink
	}
	i := slices.Index(c.Palette, ink)
	return c.Palette[(i+1)%len(c.Palette)]
}
