package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/render"
	"github.com/matzehuels/backdrop/pkg/styles"
)

// toastDuration is how long a status message stays on screen.
const toastDuration = 3 * time.Second

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// studioCommand creates the interactive studio command.
func (c *CLI) studioCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Preview, regenerate and export styles interactively",
		Long: `Preview, regenerate and export styles interactively.

Moving the cursor renders the selected style. Press r to regenerate it with
a fresh seed and s (or enter) to export the current image.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)

			start := 0
			for i, key := range styles.Default().Keys() {
				if key == cfg.Style {
					start = i
				}
			}

			m := newStudioModel(cmd.Context(), c.newDispatcher(0), cfg.Width, cfg.Height, cfg.Output)
			m.Cursor = start
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			if fm, ok := finalModel.(studioModel); ok && len(fm.exported) > 0 {
				printSuccess("Exported %d image(s)", len(fm.exported))
				for _, path := range fm.exported {
					printFile(path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export file (default from config)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels (default from config)")

	return cmd
}

// =============================================================================
// studioModel - Interactive style preview
// =============================================================================

type (
	renderedMsg struct {
		res render.Result
		err error
	}
	exportedMsg struct {
		path string
		size int
		err  error
	}
	clearStatusMsg struct{ id int }
)

// studioModel is the bubbletea model for the studio. Renders and exports
// run as commands; while one is in flight (busy) the surface is not
// touched by any other.
type studioModel struct {
	ctx        context.Context
	dispatcher *render.Dispatcher
	surface    *render.Surface
	descs      []styles.Descriptor
	width      int
	height     int
	output     string

	Cursor   int
	current  *render.Result // last successful render
	busy     bool
	pending  bool // regenerate requested while busy
	exported []string

	status    string
	statusErr bool
	statusID  int
}

func newStudioModel(ctx context.Context, d *render.Dispatcher, width, height int, output string) studioModel {
	return studioModel{
		ctx:        ctx,
		dispatcher: d,
		surface:    &render.Surface{},
		descs:      d.Registry().All(),
		width:      width,
		height:     height,
		output:     output,
		busy:       true,
	}
}

func (m studioModel) Init() tea.Cmd {
	return m.renderCmd()
}

// selected returns the style under the cursor.
func (m studioModel) selected() styles.Descriptor {
	return m.descs[m.Cursor]
}

func (m studioModel) renderCmd() tea.Cmd {
	ctx, d, s := m.ctx, m.dispatcher, m.surface
	key, w, h := m.selected().Key, m.width, m.height
	return func() tea.Msg {
		res, err := d.Generate(ctx, s, key, w, h)
		return renderedMsg{res: res, err: err}
	}
}

func (m studioModel) exportCmd() tea.Cmd {
	ctx, s, path := m.ctx, m.surface, m.output
	return func() tea.Msg {
		n, err := render.Export(ctx, s, path)
		return exportedMsg{path: path, size: n, err: err}
	}
}

// flash shows msg on the status line until the toast expires or another
// message replaces it.
func (m *studioModel) flash(msg string, isErr bool) tea.Cmd {
	m.statusID++
	m.status, m.statusErr = msg, isErr
	id := m.statusID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			cmd = tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				cmd = m.startRender()
			}
		case "down", "j":
			if m.Cursor < len(m.descs)-1 {
				m.Cursor++
				cmd = m.startRender()
			}
		case "r", " ":
			if m.busy {
				m.pending = true
			} else {
				cmd = m.startRender()
			}
		case "s", "enter":
			if !m.busy && m.current != nil {
				m.busy = true
				cmd = m.exportCmd()
			}
		}

	case renderedMsg:
		m.busy = false
		if msg.err != nil {
			// Retrying would fail the same way.
			m.pending = false
			cmd = m.flash(errs.UserMessage(msg.err), true)
			break
		}
		res := msg.res
		m.current = &res
		cmd = m.catchUp()

	case exportedMsg:
		m.busy = false
		if msg.err != nil {
			cmd = m.flash("Export failed: "+errs.UserMessage(msg.err), true)
		} else {
			m.exported = append(m.exported, msg.path)
			cmd = m.flash(fmt.Sprintf("Saved %s (%s)", msg.path, formatBytes(msg.size)), false)
		}
		cmd = tea.Batch(cmd, m.catchUp())

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
	}
	return m, cmd
}

// startRender begins a render of the selected style unless one is already
// running; keys pressed meanwhile are honoured by catchUp.
func (m *studioModel) startRender() tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	return m.renderCmd()
}

// catchUp starts the render that keys pressed while busy asked for: the
// cursor moved off the rendered style, or a regenerate is pending.
func (m *studioModel) catchUp() tea.Cmd {
	stale := m.current != nil && m.current.Style != m.selected().Key
	if !stale && !m.pending {
		return nil
	}
	m.pending = false
	return m.startRender()
}

func (m studioModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Backdrop Studio"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ style  r regenerate  s export  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.descs))
	for i, d := range m.descs {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, d.Key, d.Title, describeGradient(d.Background)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Style", "Title", "Background").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			default:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	switch {
	case m.current != nil:
		b.WriteString("  " + StyleValue.Render(m.current.Title) + "  " +
			listDimStyle.Render(describeResult(*m.current)))
	case m.busy:
		b.WriteString(listDimStyle.Render("  Rendering..."))
	}
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(styleIconError.Render(iconError) + " " + StyleError.Render(m.status))
		} else {
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render(m.status))
		}
	}
	b.WriteString("\n")

	return b.String()
}
