package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// datasetExts is the set of file extensions the picker offers.
var datasetExts = map[string]bool{".csv": true, ".json": true, ".yaml": true, ".yml": true}

// DatasetEntry describes one candidate dataset in the picker.
type DatasetEntry struct {
	Path     string
	Name     string
	Format   string
	Size     int64
	Modified time.Time
}

// DatasetListModel is the bubbletea model for interactive dataset selection.
type DatasetListModel struct {
	Entries  []DatasetEntry
	Cursor   int
	Selected *DatasetEntry
	Height   int
	Offset   int
}

// NewDatasetListModel creates a new dataset list model.
func NewDatasetListModel(entries []DatasetEntry) DatasetListModel {
	return DatasetListModel{
		Entries: entries,
		Height:  15,
	}
}

func (m DatasetListModel) Init() tea.Cmd {
	return nil
}

func (m DatasetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			m.Selected = &entry
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DatasetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dataset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor, e.Name, e.Format, formatSize(e.Size), formatRelativeTime(e.Modified),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Dataset", "Format", "Size", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// pickCommand creates the pick command: an interactive dataset browser
// that renders the chosen file with default settings.
func (c *CLI) pickCommand() *cobra.Command {
	opts := renderOpts{}
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "pick [dir]",
		Short: "Interactively choose a dataset to render",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			entries, err := listDatasets(dir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printWarning("No datasets found in %s", dir)
				return nil
			}

			model := NewDatasetListModel(entries)
			finalModel, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}

			result := finalModel.(DatasetListModel)
			if result.Selected == nil {
				printInfo("No dataset selected")
				return nil
			}

			opts.formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), result.Selected.Path, &opts)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default), midnight")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the pipeline cache")

	return cmd
}

// listDatasets collects dataset files directly under dir, newest first.
func listDatasets(dir string) ([]DatasetEntry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []DatasetEntry
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(item.Name()))
		if !datasetExts[ext] {
			continue
		}
		info, err := item.Info()
		if err != nil {
			continue
		}
		out = append(out, DatasetEntry{
			Path:     filepath.Join(dir, item.Name()),
			Name:     item.Name(),
			Format:   strings.TrimPrefix(ext, "."),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Modified.After(out[j].Modified)
	})
	return out, nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
