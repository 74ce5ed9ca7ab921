package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		name          string
		colorsEnabled bool
		kind          color.Attribute
		want          string
	}{
		{name: "colors disabled", colorsEnabled: false, kind: Success, want: "message"},
		{name: "plain stays plain", colorsEnabled: true, kind: Plain, want: "message"},
		{name: "success is green", colorsEnabled: true, kind: Success, want: "\x1b[32mmessage\x1b[0m"},
		{name: "error is red", colorsEnabled: true, kind: Error, want: "\x1b[31mmessage\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ForceColors(tt.colorsEnabled)
			defer ForceColors(false)

			assert.Equal(t, tt.want, Colorize(tt.kind, "message"))
		})
	}
}

func TestInitColors_Disabled(t *testing.T) {
	InitColors(true)
	assert.Equal(t, "message", Colorize(Error, "message"))
}

func TestFprint(t *testing.T) {
	ForceColors(false)

	buf := &bytes.Buffer{}
	require.NoError(t, Fprint(buf, Warning, "%d projects", 3))
	assert.Equal(t, "3 projects\n", buf.String())
}

func TestPrintTable(t *testing.T) {
	out, err := PrintTable([]string{"Name", "Status"}, [][]string{
		{"api", "ok"},
		{"worker", "drift"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "api")
	assert.Contains(t, out, "worker")
	assert.Contains(t, out, "drift")
}

func TestNoColorFlag(t *testing.T) {
	f := &noColorFlag{}
	assert.Equal(t, "false", f.String())
	assert.Equal(t, "bool", f.Type())
	assert.True(t, f.IsBoolFlag())

	require.NoError(t, f.Set("anything"))
	assert.True(t, f.IsSet())
	assert.Equal(t, "true", f.String())

	f.Reset()
	assert.False(t, f.IsSet())
}
