package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/backdrop/pkg/scene"
	"github.com/matzehuels/backdrop/pkg/styles"
)

// stylesCommand creates the styles command listing the registry.
func (c *CLI) stylesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List available styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := styles.Default()
			if plain {
				for _, key := range reg.Keys() {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), stylesTable(reg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print only the style keys, one per line")

	return cmd
}

// stylesTable renders the registry as a table of key, title and gradient.
func stylesTable(reg *styles.Registry) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(colorCyan)
	cellStyle := lipgloss.NewStyle().Foreground(colorWhite)

	rows := make([][]string, 0, reg.Len())
	for _, d := range reg.All() {
		rows = append(rows, []string{d.Key, d.Title, describeGradient(d.Background)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Title", "Background").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return keyStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

// describeGradient renders a gradient as its kind followed by colour
// swatches, e.g. "radial ■ #1a1a2e ■ #16213e".
func describeGradient(g scene.Gradient) string {
	parts := []string{g.Kind.String()}
	for _, st := range g.Stops {
		parts = append(parts, swatch(st.Color)+" "+hexColor(st.Color))
	}
	return strings.Join(parts, " ")
}
