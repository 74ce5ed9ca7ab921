package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gitlabctl/gitlabctl/domain"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// NothingToShow is printed when no environment has a deployed commit
const NothingToShow = "There is nothing to show"

const columnSeparator = "  "

// Headers of the drift table, in column order
var Headers = [5]string{"PROJECT", "ENVIRONMENT", "DEPLOYMENT", "COMMIT", "UPDATED"}

func cells(r domain.EnvironmentRow) [5]string {
	return [5]string{r.ProjectName, r.EnvironmentName, r.DeploymentLabel, r.CommitSHA, r.UpdatedLabel}
}

// ColumnWidths returns the display width of each column: the widest cell,
// never narrower than the column header.
func ColumnWidths(groups []domain.Classified) [5]int {
	var widths [5]int
	for i, h := range Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, g := range groups {
		for _, r := range g.Group.Rows {
			for i, c := range cells(r) {
				widths[i] = max(widths[i], runewidth.StringWidth(c))
			}
		}
	}
	return widths
}

func countRows(groups []domain.Classified) int {
	n := 0
	for _, g := range groups {
		n += len(g.Group.Rows)
	}
	return n
}

func formatLine(values [5]string, widths [5]int, kind color.Attribute) string {
	padded := make([]string, len(values))
	for i, v := range values {
		padded[i] = Colorize(kind, runewidth.FillRight(v, widths[i]))
	}
	return strings.Join(padded, columnSeparator)
}

// RenderDriftTable writes the aligned drift table: a header line, then one
// line per row, green for consistent projects and red for drifted ones.
func RenderDriftTable(w io.Writer, groups []domain.Classified) error {
	if countRows(groups) == 0 {
		_, err := fmt.Fprintln(w, NothingToShow)
		return err
	}

	widths := ColumnWidths(groups)

	var b strings.Builder
	b.WriteString(formatLine(Headers, widths, Plain))
	b.WriteString("\n")
	for _, g := range groups {
		kind := Success
		if g.Drifted() {
			kind = Error
		}
		for _, r := range g.Group.Rows {
			b.WriteString(formatLine(cells(r), widths, kind))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// PrintDriftTable renders the report through tablewriter with an extra DRIFT column
func PrintDriftTable(groups []domain.Classified) (string, error) {
	if countRows(groups) == 0 {
		return PrintMessage(Plain, NothingToShow), nil
	}

	header := append(Headers[:], "DRIFT")
	var data [][]string
	for _, g := range groups {
		state := "ok"
		if g.Drifted() {
			state = "drift"
		}
		for _, r := range g.Group.Rows {
			c := cells(r)
			data = append(data, append(c[:], state))
		}
	}

	table, err := PrintTable(header, data)
	if err != nil {
		return "", fmt.Errorf("printing drift table: %w", err)
	}
	return table, nil
}

// ProjectReport is the structured form of a classified project group
type ProjectReport struct {
	Project      string                  `json:"project" yaml:"project"`
	Drifted      bool                    `json:"drifted" yaml:"drifted"`
	Environments []domain.EnvironmentRow `json:"environments" yaml:"environments"`
}

// NewProjectReports converts classified groups into their structured form
func NewProjectReports(groups []domain.Classified) []ProjectReport {
	reports := make([]ProjectReport, 0, len(groups))
	for _, g := range groups {
		reports = append(reports, ProjectReport{
			Project:      g.Group.ProjectName,
			Drifted:      g.Drifted(),
			Environments: g.Group.Rows,
		})
	}
	return reports
}

// EncodeYAML writes the report as a YAML list
func EncodeYAML(w io.Writer, groups []domain.Classified) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewProjectReports(groups)); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// EncodeJSON writes the report as an indented JSON array
func EncodeJSON(w io.Writer, groups []domain.Classified) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewProjectReports(groups)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
