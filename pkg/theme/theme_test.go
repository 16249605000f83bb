package theme

import (
	"testing"

	"github.com/go-drift/kit/pkg/graphics"
)

func TestSchemeColor(t *testing.T) {
	th := Light()
	tests := []struct {
		scheme Scheme
		want   graphics.Color
	}{
		{SchemePrimary, th.Primary},
		{SchemeSecondary, th.Secondary},
		{SchemeSuccess, th.Success},
		{SchemeWarning, th.Warning},
		{SchemeError, th.Error},
		{Scheme(99), th.Primary},
		{Scheme(-1), th.Primary},
	}
	for _, tt := range tests {
		if got := th.SchemeColor(tt.scheme); got != tt.want {
			t.Errorf("SchemeColor(%v) = %v, want %v", tt.scheme, got, tt.want)
		}
	}
}

func TestSpacingOf(t *testing.T) {
	th := Light()
	tests := []struct {
		size Size
		want uint16
	}{
		{SizeXS, 4},
		{SizeSM, 8},
		{SizeMD, 16},
		{SizeLG, 24},
		{SizeXL, 32},
		{Size(42), 16},
	}
	for _, tt := range tests {
		if got := th.SpacingOf(tt.size); got != tt.want {
			t.Errorf("SpacingOf(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestFontSizeOf(t *testing.T) {
	th := Dark()
	tests := []struct {
		size Size
		want uint16
	}{
		{SizeXS, 12},
		{SizeSM, 14},
		{SizeMD, 16},
		{SizeLG, 18},
		{SizeXL, 24},
		{Size(-3), 16},
	}
	for _, tt := range tests {
		if got := th.FontSizeOf(tt.size); got != tt.want {
			t.Errorf("FontSizeOf(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestRadiusOf(t *testing.T) {
	th := Light()
	tests := []struct {
		size Size
		want uint16
	}{
		{SizeXS, 4},
		{SizeSM, 4},
		{SizeMD, 8},
		{SizeLG, 12},
		{SizeXL, 12},
		{Size(7), 8},
	}
	for _, tt := range tests {
		if got := th.RadiusOf(tt.size); got != tt.want {
			t.Errorf("RadiusOf(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
	if th.Radius.Full != 9999 {
		t.Errorf("Radius.Full = %d, want 9999", th.Radius.Full)
	}
}

func TestPresetColors(t *testing.T) {
	light, dark := Light(), Dark()

	if light.Primary != graphics.RGB(66, 133, 244) {
		t.Errorf("Light().Primary = %v", light.Primary)
	}
	if light.Bg != graphics.ColorWhite {
		t.Errorf("Light().Bg = %v, want white", light.Bg)
	}
	if dark.Primary != graphics.RGB(96, 165, 250) {
		t.Errorf("Dark().Primary = %v", dark.Primary)
	}
	if dark.Bg != light.Fg {
		t.Errorf("Dark().Bg = %v, want Light().Fg %v", dark.Bg, light.Fg)
	}
	if light.FontID != (FontIDs{}) {
		t.Errorf("preset FontID = %+v, want zero ids", light.FontID)
	}
}

func TestPresetsAreIndependent(t *testing.T) {
	a := Light()
	a.Spacing.MD = 99
	if Light().Spacing.MD != 16 {
		t.Error("mutating one Light() result changed another")
	}

	b := a.Copy()
	b.Primary = graphics.ColorBlack
	if a.Primary == graphics.ColorBlack {
		t.Error("Copy shares state with the original")
	}
}

func TestEnumStrings(t *testing.T) {
	if SizeLG.String() != "lg" || Size(9).String() != "unknown" {
		t.Errorf("Size strings: %q %q", SizeLG.String(), Size(9).String())
	}
	if SchemeWarning.String() != "warning" || Scheme(9).String() != "unknown" {
		t.Errorf("Scheme strings: %q %q", SchemeWarning.String(), Scheme(9).String())
	}
}
