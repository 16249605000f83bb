package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/kit/pkg/errors"
	"github.com/go-drift/kit/pkg/graphics"
)

// SchemaVersion is the theme file version written by Encode.
const SchemaVersion = "v1.0.0"

// Format is a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat returns the format named s ("yaml", "yml" or "toml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, s)
}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// File is the on-disk theme schema. Every field other than Version is an
// optional override on top of the Base preset.
type File struct {
	Version  string          `yaml:"version" toml:"version"`
	Base     string          `yaml:"base,omitempty" toml:"base,omitempty"`
	Colors   ColorOverrides  `yaml:"colors,omitempty" toml:"colors,omitempty"`
	Spacing  ScaleOverrides  `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Radius   RadiusOverrides `yaml:"radius,omitempty" toml:"radius,omitempty"`
	FontID   FontIDOverrides `yaml:"font_id,omitempty" toml:"font_id,omitempty"`
	FontSize ScaleOverrides  `yaml:"font_size,omitempty" toml:"font_size,omitempty"`
}

// ColorOverrides holds optional palette colors.
type ColorOverrides struct {
	Primary   *graphics.Color `yaml:"primary,omitempty" toml:"primary,omitempty"`
	Secondary *graphics.Color `yaml:"secondary,omitempty" toml:"secondary,omitempty"`
	Success   *graphics.Color `yaml:"success,omitempty" toml:"success,omitempty"`
	Warning   *graphics.Color `yaml:"warning,omitempty" toml:"warning,omitempty"`
	Error     *graphics.Color `yaml:"error,omitempty" toml:"error,omitempty"`
	Bg        *graphics.Color `yaml:"bg,omitempty" toml:"bg,omitempty"`
	Fg        *graphics.Color `yaml:"fg,omitempty" toml:"fg,omitempty"`
	Border    *graphics.Color `yaml:"border,omitempty" toml:"border,omitempty"`
	Muted     *graphics.Color `yaml:"muted,omitempty" toml:"muted,omitempty"`
}

// ScaleOverrides holds optional steps of a five-step scale.
type ScaleOverrides struct {
	XS *uint16 `yaml:"xs,omitempty" toml:"xs,omitempty"`
	SM *uint16 `yaml:"sm,omitempty" toml:"sm,omitempty"`
	MD *uint16 `yaml:"md,omitempty" toml:"md,omitempty"`
	LG *uint16 `yaml:"lg,omitempty" toml:"lg,omitempty"`
	XL *uint16 `yaml:"xl,omitempty" toml:"xl,omitempty"`
}

// RadiusOverrides holds optional corner radii.
type RadiusOverrides struct {
	SM   *uint16 `yaml:"sm,omitempty" toml:"sm,omitempty"`
	MD   *uint16 `yaml:"md,omitempty" toml:"md,omitempty"`
	LG   *uint16 `yaml:"lg,omitempty" toml:"lg,omitempty"`
	Full *uint16 `yaml:"full,omitempty" toml:"full,omitempty"`
}

// FontIDOverrides holds optional font ids.
type FontIDOverrides struct {
	Body    *uint16 `yaml:"body,omitempty" toml:"body,omitempty"`
	Heading *uint16 `yaml:"heading,omitempty" toml:"heading,omitempty"`
}

// LoadFile reads a theme file, choosing the decoder by extension.
func LoadFile(path string) (*Theme, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, &errors.KitError{Op: "theme.LoadFile", Kind: errors.KindConfig, Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.KitError{Op: "theme.LoadFile", Kind: errors.KindConfig, Path: path, Err: err}
	}
	t, err := Decode(data, format)
	if err != nil {
		var ke *errors.KitError
		if errors.As(err, &ke) {
			ke.Path = path
			return nil, ke
		}
		return nil, &errors.KitError{Op: "theme.LoadFile", Kind: errors.KindConfig, Path: path, Err: err}
	}
	return t, nil
}

// Decode parses a theme file. Unknown keys are rejected.
func Decode(data []byte, format Format) (*Theme, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			if err == io.EOF {
				err = fmt.Errorf("empty theme file")
			}
			return nil, errors.New("theme.Decode", errors.KindConfig, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.New("theme.Decode", errors.KindConfig, err)
		}
	default:
		return nil, errors.New("theme.Decode", errors.KindConfig, errors.ErrUnsupportedFormat)
	}
	t, err := f.Resolve()
	if err != nil {
		return nil, errors.New("theme.Decode", errors.KindConfig, err)
	}
	return t, nil
}

// Encode writes t as a complete theme file.
func Encode(w io.Writer, t *Theme, format Format) error {
	f := FileOf(t)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return errors.New("theme.Encode", errors.KindConfig, err)
		}
		if err := enc.Close(); err != nil {
			return errors.New("theme.Encode", errors.KindConfig, err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(f); err != nil {
			return errors.New("theme.Encode", errors.KindConfig, err)
		}
	default:
		return errors.New("theme.Encode", errors.KindConfig, errors.ErrUnsupportedFormat)
	}
	return nil
}

// Resolve validates the version and applies the overrides to the base
// preset.
func (f *File) Resolve() (*Theme, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	var t *Theme
	switch strings.ToLower(strings.TrimSpace(f.Base)) {
	case "", "light":
		t = Light()
	case "dark":
		t = Dark()
	default:
		return nil, fmt.Errorf("unknown base theme %q (want light or dark)", f.Base)
	}

	c := f.Colors
	setColor(&t.Primary, c.Primary)
	setColor(&t.Secondary, c.Secondary)
	setColor(&t.Success, c.Success)
	setColor(&t.Warning, c.Warning)
	setColor(&t.Error, c.Error)
	setColor(&t.Bg, c.Bg)
	setColor(&t.Fg, c.Fg)
	setColor(&t.Border, c.Border)
	setColor(&t.Muted, c.Muted)

	f.Spacing.apply(&t.Spacing)
	f.FontSize.apply((*SpacingScale)(&t.FontSize))

	setSize(&t.Radius.SM, f.Radius.SM)
	setSize(&t.Radius.MD, f.Radius.MD)
	setSize(&t.Radius.LG, f.Radius.LG)
	setSize(&t.Radius.Full, f.Radius.Full)

	setSize(&t.FontID.Body, f.FontID.Body)
	setSize(&t.FontID.Heading, f.FontID.Heading)
	return t, nil
}

// FileOf returns a file that fully describes t.
func FileOf(t *Theme) *File {
	return &File{
		Version: SchemaVersion,
		Colors: ColorOverrides{
			Primary:   ptr(t.Primary),
			Secondary: ptr(t.Secondary),
			Success:   ptr(t.Success),
			Warning:   ptr(t.Warning),
			Error:     ptr(t.Error),
			Bg:        ptr(t.Bg),
			Fg:        ptr(t.Fg),
			Border:    ptr(t.Border),
			Muted:     ptr(t.Muted),
		},
		Spacing:  scaleOf(t.Spacing),
		Radius:   RadiusOverrides{SM: ptr(t.Radius.SM), MD: ptr(t.Radius.MD), LG: ptr(t.Radius.LG), Full: ptr(t.Radius.Full)},
		FontID:   FontIDOverrides{Body: ptr(t.FontID.Body), Heading: ptr(t.FontID.Heading)},
		FontSize: scaleOf(SpacingScale(t.FontSize)),
	}
}

// checkVersion accepts v1.x.y, with or without the leading "v".
func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("%w: missing version", errors.ErrVersion)
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", errors.ErrVersion, v)
	}
	if major := semver.Major(v); major != semver.Major(SchemaVersion) {
		return fmt.Errorf("%w: %s (this build reads %s)", errors.ErrVersion, major, semver.Major(SchemaVersion))
	}
	return nil
}

func (s ScaleOverrides) apply(dst *SpacingScale) {
	setSize(&dst.XS, s.XS)
	setSize(&dst.SM, s.SM)
	setSize(&dst.MD, s.MD)
	setSize(&dst.LG, s.LG)
	setSize(&dst.XL, s.XL)
}

func scaleOf(s SpacingScale) ScaleOverrides {
	return ScaleOverrides{XS: ptr(s.XS), SM: ptr(s.SM), MD: ptr(s.MD), LG: ptr(s.LG), XL: ptr(s.XL)}
}

func setColor(dst *graphics.Color, v *graphics.Color) {
	if v != nil {
		*dst = *v
	}
}

func setSize(dst *uint16, v *uint16) {
	if v != nil {
		*dst = *v
	}
}

func ptr[T any](v T) *T {
	return &v
}
