package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/symcode"
	"github.com/npillmayer/symcode/tabfile"
	"github.com/spf13/cobra"
)

const guideColumns = 4

var (
	guideTitleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	guideSymbolStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c026d3"))
	guideCellStyle   = lipgloss.NewStyle().Width(12).PaddingRight(2)
)

func newGuideCmd(cfg *Config) *cobra.Command {
	var raw bool
	var prefix string
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print the code guide (all symbols and their codes)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := loadCodec(*cfg)
			if err != nil {
				return err
			}
			if raw {
				return tabfile.WriteTable(cmd.OutOrStdout(), codec.Table())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderGuide(codec.Table(), prefix))
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the table in table file format")
	cmd.Flags().StringVar(&prefix, "prefix", "", "only list codes starting with this prefix")
	return cmd
}

// renderGuide lays out the entries of table in a grid, sorted by symbol.
func renderGuide(table *symcode.Table, prefix string) string {
	selected := make(map[string]bool)
	for _, code := range table.CodesWithPrefix(prefix) {
		selected[code] = true
	}
	var cells []string
	for _, e := range table.Entries() {
		if !selected[e.Code] {
			continue
		}
		cell := guideSymbolStyle.Render(e.Symbol) + " " + e.Code
		cells = append(cells, guideCellStyle.Render(cell))
	}
	rows := make([]string, 0, len(cells)/guideColumns+1)
	for len(cells) > 0 {
		n := min(guideColumns, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[:n]...))
		cells = cells[n:]
	}
	title := guideTitleStyle.Render(fmt.Sprintf("Code Guide (%s)", strings.TrimPrefix(table.Identifier, "table: ")))
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n"))
}
