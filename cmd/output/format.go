package output

import (
	"fmt"
	"slices"
	"strings"
)

// Format selects how the report is written to stdout
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ValidFormats returns the accepted --output values
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatTable), string(FormatYAML), string(FormatJSON)}
}

// Set implements pflag.Value
func (f *Format) Set(value string) error {
	if !slices.Contains(ValidFormats(), value) {
		return fmt.Errorf("invalid value '%s'. Allowed values: %s",
			value, strings.Join(ValidFormats(), ", "))
	}
	*f = Format(value)
	return nil
}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Type() string {
	return fmt.Sprintf("one of [%s]", strings.Join(ValidFormats(), "|"))
}
