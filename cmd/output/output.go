// Package output provides functions to print messages and reports with optional color formatting
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	Plain   = color.FgWhite
	Success = color.FgGreen
	Warning = color.FgYellow
	Error   = color.FgRed
)

var colorEnabled bool

// InitColors sets up color functions based on environment
func InitColors(isColorDisabled bool) {
	// color.NoColor is already true when stdout is not a terminal or NO_COLOR is set
	colorEnabled = !color.NoColor && !isColorDisabled
}

// ForceColors overrides terminal detection, used when output is captured
func ForceColors(enabled bool) {
	colorEnabled = enabled
}

// Colorize wraps s in the escape codes of kind when colors are enabled
func Colorize(kind color.Attribute, s string) string {
	if !colorEnabled || kind == Plain {
		return s
	}
	c := color.New(kind)
	c.EnableColor()
	return c.Sprint(s)
}

// PrintMessage formats a message with color (if enabled) and terminates it with a newline
func PrintMessage(kind color.Attribute, tmpl string, a ...any) string {
	return Colorize(kind, fmt.Sprintf(tmpl, a...)) + "\n"
}

// Fprint writes a colored message to w
func Fprint(w io.Writer, kind color.Attribute, tmpl string, a ...any) error {
	_, err := io.WriteString(w, PrintMessage(kind, tmpl, a...))
	return err
}

// PrintTable renders a borderless, left aligned table
func PrintTable(header []string, data [][]string) (string, error) {
	buf := strings.Builder{}

	table := tablewriter.NewTable(
		&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines: tw.Lines{
					ShowHeaderLine: tw.Off,
				},
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}))

	if len(header) > 0 {
		table.Header(header)
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("bulk adding data to table: %w", err)
	}

	if err := table.Render(); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}

	return buf.String(), nil
}

// NoColor is a flag that can be used to disable colored output in the CLI.
var NoColor = &noColorFlag{set: false}

type noColorFlag struct {
	set bool
}

func (f *noColorFlag) Set(value string) error {
	// This is a boolean flag, so we ignore the value and just mark it as set
	f.set = true
	return nil
}

func (f *noColorFlag) String() string {
	if f.set {
		return "true"
	}
	return "false"
}

func (f *noColorFlag) Type() string {
	return "bool"
}

// IsSet returns true if the --no-color flag was explicitly set
func (f *noColorFlag) IsSet() bool {
	return f.set
}

// IsBoolFlag tells pflag this is a boolean flag (no argument required)
func (f *noColorFlag) IsBoolFlag() bool {
	return true
}

// Reset clears the flag between command constructions
func (f *noColorFlag) Reset() {
	f.set = false
}
