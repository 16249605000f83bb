// Package theme defines the color palette and size scales that widgets
// read when building their visuals, plus light and dark presets.
package theme

import "github.com/go-drift/kit/pkg/graphics"

// Size selects a step on a size scale.
type Size int

const (
	SizeXS Size = iota
	SizeSM
	SizeMD
	SizeLG
	SizeXL
)

func (s Size) String() string {
	switch s {
	case SizeXS:
		return "xs"
	case SizeSM:
		return "sm"
	case SizeMD:
		return "md"
	case SizeLG:
		return "lg"
	case SizeXL:
		return "xl"
	default:
		return "unknown"
	}
}

// Scheme selects one of the palette's accent colors.
type Scheme int

const (
	SchemePrimary Scheme = iota
	SchemeSecondary
	SchemeSuccess
	SchemeWarning
	SchemeError
)

func (s Scheme) String() string {
	switch s {
	case SchemePrimary:
		return "primary"
	case SchemeSecondary:
		return "secondary"
	case SchemeSuccess:
		return "success"
	case SchemeWarning:
		return "warning"
	case SchemeError:
		return "error"
	default:
		return "unknown"
	}
}

// SpacingScale holds padding and gap sizes in pixels.
type SpacingScale struct {
	XS, SM, MD, LG, XL uint16
}

// RadiusScale holds corner radii in pixels. Full is large enough to make
// pills and circles.
type RadiusScale struct {
	SM, MD, LG, Full uint16
}

// FontIDs holds host font ids. The host assigns the actual fonts.
type FontIDs struct {
	Body, Heading uint16
}

// FontSizeScale holds font sizes in pixels.
type FontSizeScale struct {
	XS, SM, MD, LG, XL uint16
}

// Theme contains the palette and scales shared by all widgets.
type Theme struct {
	// Accent colors, selected by Scheme.
	Primary   graphics.Color
	Secondary graphics.Color
	Success   graphics.Color
	Warning   graphics.Color
	Error     graphics.Color

	// Semantic colors.
	Bg     graphics.Color
	Fg     graphics.Color
	Border graphics.Color
	Muted  graphics.Color

	Spacing  SpacingScale
	Radius   RadiusScale
	FontID   FontIDs
	FontSize FontSizeScale
}

var (
	defaultSpacing  = SpacingScale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32}
	defaultRadius   = RadiusScale{SM: 4, MD: 8, LG: 12, Full: 9999}
	defaultFontSize = FontSizeScale{XS: 12, SM: 14, MD: 16, LG: 18, XL: 24}
)

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{
		Primary:   graphics.RGB(66, 133, 244),  // Blue
		Secondary: graphics.RGB(156, 163, 175), // Gray
		Success:   graphics.RGB(34, 197, 94),   // Green
		Warning:   graphics.RGB(251, 191, 36),  // Amber
		Error:     graphics.RGB(239, 68, 68),   // Red

		Bg:     graphics.RGB(255, 255, 255), // White
		Fg:     graphics.RGB(17, 24, 39),    // Gray-900
		Border: graphics.RGB(229, 231, 235), // Gray-200
		Muted:  graphics.RGB(107, 114, 128), // Gray-500

		Spacing:  defaultSpacing,
		Radius:   defaultRadius,
		FontSize: defaultFontSize,
	}
}

// Dark returns the default dark theme.
func Dark() *Theme {
	return &Theme{
		Primary:   graphics.RGB(96, 165, 250),  // Blue-400
		Secondary: graphics.RGB(156, 163, 175), // Gray-400
		Success:   graphics.RGB(74, 222, 128),  // Green-400
		Warning:   graphics.RGB(251, 191, 36),  // Amber-400
		Error:     graphics.RGB(248, 113, 113), // Red-400

		Bg:     graphics.RGB(17, 24, 39),    // Gray-900
		Fg:     graphics.RGB(249, 250, 251), // Gray-50
		Border: graphics.RGB(55, 65, 81),    // Gray-700
		Muted:  graphics.RGB(156, 163, 175), // Gray-400

		Spacing:  defaultSpacing,
		Radius:   defaultRadius,
		FontSize: defaultFontSize,
	}
}

// Copy returns an independent copy of the theme.
func (t *Theme) Copy() *Theme {
	c := *t
	return &c
}

// SchemeColor returns the accent color for scheme. Unknown schemes fall
// back to Primary.
func (t *Theme) SchemeColor(scheme Scheme) graphics.Color {
	switch scheme {
	case SchemeSecondary:
		return t.Secondary
	case SchemeSuccess:
		return t.Success
	case SchemeWarning:
		return t.Warning
	case SchemeError:
		return t.Error
	default:
		return t.Primary
	}
}

// SpacingOf returns the spacing for size. Unknown sizes fall back to MD.
func (t *Theme) SpacingOf(size Size) uint16 {
	return t.Spacing.of(size)
}

// FontSizeOf returns the font size for size. Unknown sizes fall back to MD.
func (t *Theme) FontSizeOf(size Size) uint16 {
	return SpacingScale(t.FontSize).of(size)
}

// RadiusOf returns the corner radius for size. The radius scale has three
// steps: XS and SM map to SM, LG and XL map to LG, anything else to MD.
func (t *Theme) RadiusOf(size Size) uint16 {
	switch size {
	case SizeXS, SizeSM:
		return t.Radius.SM
	case SizeLG, SizeXL:
		return t.Radius.LG
	default:
		return t.Radius.MD
	}
}

func (s SpacingScale) of(size Size) uint16 {
	switch size {
	case SizeXS:
		return s.XS
	case SizeSM:
		return s.SM
	case SizeLG:
		return s.LG
	case SizeXL:
		return s.XL
	default:
		return s.MD
	}
}
