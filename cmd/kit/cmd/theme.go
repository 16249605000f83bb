package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/kit/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Print or check theme files",
		Long: `Print a preset theme as a theme file, or check an existing one.

Without arguments the light preset is written to stdout as YAML. The output
is a complete file that can be edited and loaded back.

"kit theme check <file>" loads the file (.yaml, .yml or .toml), applies its
overrides to the chosen base preset and prints the resolved palette.`,
		Usage: "kit theme [-dark] [-format yaml|toml]\n  kit theme check <file>",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	if len(args) > 0 && args[0] == "check" {
		return runThemeCheck(args[1:])
	}

	dark := false
	format := theme.FormatYAML
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-dark" || arg == "--dark":
			dark = true
		case arg == "-format" || arg == "--format":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires yaml or toml", arg)
			}
			f, err := theme.ParseFormat(args[i+1])
			if err != nil {
				return err
			}
			format = f
			i++
		case strings.HasPrefix(arg, "-format=") || strings.HasPrefix(arg, "--format="):
			f, err := theme.ParseFormat(arg[strings.IndexByte(arg, '=')+1:])
			if err != nil {
				return err
			}
			format = f
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}

	t := theme.Light()
	if dark {
		t = theme.Dark()
	}
	return theme.Encode(os.Stdout, t, format)
}

func runThemeCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("theme check requires exactly one file")
	}
	t, err := theme.LoadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: ok\n", args[0])
	fmt.Println()
	for s := theme.SchemePrimary; s <= theme.SchemeError; s++ {
		fmt.Printf("  %-10s %s\n", s, t.SchemeColor(s))
	}
	fmt.Printf("  %-10s %s\n", "bg", t.Bg)
	fmt.Printf("  %-10s %s\n", "fg", t.Fg)
	fmt.Printf("  %-10s %s\n", "border", t.Border)
	fmt.Printf("  %-10s %s\n", "muted", t.Muted)
	fmt.Println()
	for s := theme.SizeXS; s <= theme.SizeXL; s++ {
		fmt.Printf("  %-4s spacing=%-3d font=%-3d radius=%d\n", s, t.SpacingOf(s), t.FontSizeOf(s), t.RadiusOf(s))
	}
	return nil
}
