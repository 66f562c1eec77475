package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/plan"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand lays out a plan and opens an interactive floor browser.
func (c *CLI) previewCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "preview [plan.json|plan.toml]",
		Short: "Browse a plan's floors and rooms in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], flags)
		},
	}

	flags.bind(cmd)

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, flags layoutFlags) error {
	p, err := plan.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := runner.Layout(ctx, p, c.options(&flags, nil))
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	_, err = tea.NewProgram(NewFloorBrowserModel(res, input), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// FloorBrowserModel - Interactive floor and room browser
// =============================================================================

// FloorBrowserModel is the bubbletea model behind the preview command. The
// left and right keys switch floors; up and down move through the rooms of
// the current floor.
type FloorBrowserModel struct {
	Result *plan.LayoutResult
	Title  string
	Floor  int
	Cursor int
	Height int
	Offset int
}

// NewFloorBrowserModel creates a browser positioned on the first floor.
func NewFloorBrowserModel(res *plan.LayoutResult, title string) FloorBrowserModel {
	return FloorBrowserModel{Result: res, Title: title, Height: 15}
}

func (m FloorBrowserModel) Init() tea.Cmd {
	return nil
}

func (m FloorBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "shift+tab":
			if m.Floor > 0 {
				m.Floor--
				m.Cursor, m.Offset = 0, 0
			}
		case "right", "l", "tab":
			if m.Floor < len(m.Result.Floors)-1 {
				m.Floor++
				m.Cursor, m.Offset = 0, 0
			}
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.rooms())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	return m, nil
}

func (m FloorBrowserModel) rooms() []plan.RoomLayout {
	if m.Floor >= len(m.Result.Floors) {
		return nil
	}
	return m.Result.Floors[m.Floor].Rooms
}

func (m FloorBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Floor plan: " + m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ floor  ↑/↓ room  q quit"))
	b.WriteString("\n\n")

	if len(m.Result.Floors) == 0 {
		b.WriteString(StyleWarning.Render("no floors"))
		b.WriteString("\n")
		return b.String()
	}

	tabs := make([]string, len(m.Result.Floors))
	for i, f := range m.Result.Floors {
		if i == m.Floor {
			tabs[i] = tabActiveStyle.Render(f.Level)
		} else {
			tabs[i] = tabInactiveStyle.Render(f.Level)
		}
	}
	b.WriteString(strings.Join(tabs, listDimStyle.Render("  │  ")))
	b.WriteString("\n")

	floor := m.Result.Floors[m.Floor]
	rooms := floor.Rooms
	end := min(m.Offset+m.Height, len(rooms))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := rooms[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			r.Name,
			r.Type,
			fmt.Sprintf("(%s, %s)", feet(r.X), feet(r.Y)),
			fmt.Sprintf("%s × %s", feet(r.Width), feet(r.Height)),
			feet(r.Area()),
			strconv.Itoa(len(r.Doors)),
			strconv.Itoa(len(r.Windows)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Room", "Type", "Position", "Size (ft)", "Area", "Doors", "Windows").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 3 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	summary := []string{
		fmt.Sprintf("%s × %s ft", feet(floor.BoundingBox.Width), feet(floor.BoundingBox.Height)),
		plural(len(floor.Walls), "wall"),
		plural(len(floor.Circulation.Corridors), "corridor"),
	}
	if floor.Circulation.Stairs != nil {
		summary = append(summary, "stairs")
	}
	if n := m.floorWarnings(floor.Level); n > 0 {
		summary = append(summary, StyleWarning.Render(plural(n, "warning")))
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  ", min(m.Cursor+1, len(rooms)), len(rooms))))
	b.WriteString(listDimStyle.Render(strings.Join(summary, " · ")))

	return b.String()
}

func (m FloorBrowserModel) floorWarnings(level string) int {
	n := 0
	for _, w := range m.Result.Warnings {
		if w.Floor == level || w.Floor == "" {
			n++
		}
	}
	return n
}

// feet formats a measurement with at most one decimal.
func feet(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
