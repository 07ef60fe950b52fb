package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// Render renders the resolved configuration as a two-column table
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	fmt.Fprintln(r.out, "📋 Current config:")

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})

	notSet := color.New(color.Faint).Sprint("(not set)")
	for _, entry := range result.Entries {
		value := entry.Value
		if value == "" {
			value = notSet
		}
		t.AppendRow(table.Row{entry.Key, value})
	}
	fmt.Fprintln(r.out, t.Render())

	fmt.Fprintf(r.out, "\n📦 Config source: %s\n", result.Source)
	return nil
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
