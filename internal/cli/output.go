package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: table, json, yaml)", s)
	}
}

// Property is one row of a key-value table.
type Property struct {
	Name  string
	Value string
}

// Tabular is implemented by results that know how to show themselves as a
// property table.
type Tabular interface {
	Properties(f Formatter) []Property
}

// Printer writes command results in the selected format.
type Printer struct {
	Out       io.Writer
	Format    OutputFormat
	Formatter Formatter
}

// Print writes v. JSON and YAML marshal v directly; the table format uses
// its Properties.
func (p Printer) Print(v Tabular) error {
	switch p.Format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.Out, string(data))
		return err
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format YAML: %w", err)
		}
		_, err = p.Out.Write(data)
		return err
	default:
		return p.table(v.Properties(p.Formatter))
	}
}

// table formats properties as key-value pairs
func (p Printer) table(props []Property) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	for _, prop := range props {
		t.AppendRow(table.Row{text.FgYellow.Sprint(prop.Name), prop.Value})
	}
	t.Render()
	return nil
}
