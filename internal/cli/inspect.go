package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotdeck/pkg/chart/layout"
	"github.com/matzehuels/plotdeck/pkg/pipeline"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	kind      string
	width     int
	height    int
	nudge     int
	maxNudges int
	all       bool // list every label, not just nudged ones
}

// inspectCommand creates the inspect command. It runs the parse and layout
// stages only and reports what the label placement pass did: which labels
// moved, how far, and which grid cells ended up occupied.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOpts{}

	cmd := &cobra.Command{
		Use:   "inspect [dataset]",
		Short: "Show the label placement pass for a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "chart kind override: line, scatter, bar")
	cmd.Flags().IntVar(&opts.width, "width", 0, "frame width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "frame height")
	cmd.Flags().IntVar(&opts.nudge, "nudge", 0, "vertical label nudge in px")
	cmd.Flags().IntVar(&opts.maxNudges, "max-nudges", 0, "cap on nudge iterations per label")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "list all labels, not only nudged ones")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, opts *inspectOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	pOpts := pipeline.Options{
		Input:  input,
		Kind:   opts.kind,
		Width:  opts.width,
		Height: opts.height,
		Logger: logger,
	}
	pOpts.Engine.VerticalNudge = opts.nudge
	pOpts.Engine.MaxNudges = opts.maxNudges

	ch, err := runner.Parse(ctx, pOpts)
	if err != nil {
		return err
	}
	l, err := runner.ComputeLayout(ctx, ch, pOpts)
	if err != nil {
		return err
	}

	title := ch.Title
	if title == "" {
		title = input
	}
	fmt.Println(StyleTitle.Render(title))
	printDetail("%s chart, %d series, %d points", ch.Kind, len(ch.Series), ch.PointCount())
	printStats(ch.PointCount(), l.LabelCount(), l.NudgedLabels(), false)
	fmt.Println()

	printLabelTable(l, opts.all)
	fmt.Println()
	printOccupancyTable(l)
	return nil
}

// printLabelTable lists labels with their anchor and final positions.
func printLabelTable(l layout.Layout, all bool) {
	rows := [][]string{}
	for _, lb := range l.Labels {
		if !all && !lb.Nudged() {
			continue
		}
		state := styleComputed.Render("anchored")
		if lb.Nudged() {
			state = styleNudged.Render(fmt.Sprintf("nudged %+.0f", lb.Y-lb.AnchorY))
		}
		rows = append(rows, []string{
			lb.Text,
			fmt.Sprintf("(%.0f, %.0f)", lb.X, lb.AnchorY),
			fmt.Sprintf("(%.0f, %.0f)", lb.X, lb.Y),
			state,
		})
	}

	if len(rows) == 0 {
		printInfo("No labels were nudged")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Label", "Anchor", "Placed", "State").
		Rows(rows...)
	fmt.Println(t)
}

// printOccupancyTable shows the final occupancy grid of the placement pass,
// one row per occupied x-cell.
func printOccupancyTable(l layout.Layout) {
	if len(l.Occupancy) == 0 {
		printInfo("Occupancy grid is empty")
		return
	}

	xs := make([]int, 0, len(l.Occupancy))
	for x := range l.Occupancy {
		xs = append(xs, x)
	}
	sort.Ints(xs)

	rows := [][]string{}
	for _, x := range xs {
		ys := l.Occupancy[x]
		cells := make([]string, len(ys))
		for i, y := range ys {
			cells[i] = fmt.Sprintf("%d", y)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", x), strings.Join(cells, ", ")})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("X cell", "Occupied Y cells").
		Rows(rows...)
	fmt.Println(t)
}
