package theme_test

import (
	"fmt"
	"os"

	"github.com/go-drift/kit/pkg/graphics"
	"github.com/go-drift/kit/pkg/theme"
)

// This example shows how widget code reads the theme for a badge.
func ExampleTheme_SchemeColor() {
	th := theme.Light()
	bg := th.SchemeColor(theme.SchemeSuccess)
	pad := th.SpacingOf(theme.SizeSM)
	radius := th.RadiusOf(theme.SizeXL)
	fmt.Println(bg, pad, radius)
	// Output: #22C55E 8 12
}

// This example shows how to customize a preset and save it as a theme file.
func ExampleEncode() {
	custom := theme.Dark()
	custom.Primary = graphics.RGB(0, 150, 136) // Teal

	if err := theme.Encode(os.Stdout, custom, theme.FormatTOML); err != nil {
		fmt.Println(err)
	}
}

// This example shows a partial theme file layered on the dark preset.
func ExampleDecode() {
	data := []byte(`version: v1.0.0
base: dark
spacing:
  md: 20
`)
	th, err := theme.Decode(data, theme.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(th.Bg, th.SpacingOf(theme.SizeMD))
	// Output: #111827 20
}
