package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/kit/cmd/kit/internal/script"
	"github.com/go-drift/kit/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a scripted input session",
		Long: `Replay a YAML script of input events against a fresh context.

A script declares text fields (name, capacity, initial text, flags) and a
list of frames. Each frame lists host events applied in order:

  focus: <field>     give a field focus
  clear: true        remove focus
  next/prev: true    move focus through the fields in declaration order
  type: <text>       insert text into the focused field
  char: <codepoint>  insert one character
  key: <name>        backspace, delete, left, right, home, end, enter, tab
  mods: <mods>       modifiers for key, such as "ctrl+shift"
  click: <x>         place the cursor at pixel x
  toggle: <name>     flip a checkbox
  value: {control: <name>, to: <0..1>}

After every frame the focused field and each field's text, cursor,
anchor and caret position are printed. Password fields print masked.`,
		Usage: "kit replay [--theme FILE] <script.yaml>",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	var themePath, scriptPath string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--theme" || arg == "-theme":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			themePath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--theme="):
			themePath = strings.TrimPrefix(arg, "--theme=")
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q", arg)
		case scriptPath == "":
			scriptPath = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if scriptPath == "" {
		return fmt.Errorf("replay requires a script file")
	}

	s, err := script.LoadFile(scriptPath)
	if err != nil {
		return err
	}
	if themePath == "" {
		themePath = s.Theme
	}

	var th *theme.Theme
	if themePath != "" {
		if th, err = theme.LoadFile(themePath); err != nil {
			return err
		}
	}

	return script.NewRunner(s, th, os.Stdout).Run(s.Frames)
}
