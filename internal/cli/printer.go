package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/input"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// DefaultStepLimit is how many steps run prints before summarizing the rest.
const DefaultStepLimit = 40

// stepPrinter renders a run as a numbered step listing. Styles come from a
// renderer bound to the output, so colors are dropped when w is not a
// terminal.
type stepPrinter struct {
	w     io.Writer
	limit int

	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	kinds map[trace.Kind]lipgloss.Style
}

func newStepPrinter(w io.Writer, limit int) *stepPrinter {
	r := lipgloss.NewRenderer(w)
	return &stepPrinter{
		w:     w,
		limit: limit,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label: r.NewStyle().Foreground(lipgloss.Color("241")),
		muted: r.NewStyle().Faint(true),
		kinds: map[trace.Kind]lipgloss.Style{
			trace.KindCompare: r.NewStyle().Foreground(lipgloss.Color("214")),
			trace.KindSwap:    r.NewStyle().Foreground(lipgloss.Color("196")),
			trace.KindSet:     r.NewStyle().Foreground(lipgloss.Color("42")),
			trace.KindDone:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		},
	}
}

// Print writes the header, up to limit steps and the outcome. A limit of
// zero or less prints every step.
func (p *stepPrinter) Print(res *engine.Result) {
	fmt.Fprintln(p.w, p.title.Render(fmt.Sprintf("%s (%s)", res.AlgorithmName, res.AlgorithmKey)))
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render("initial:"), input.Format(res.Initial))

	for i, ev := range res.Steps {
		if p.limit > 0 && i == p.limit {
			fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf("... (%d more events)", len(res.Steps)-p.limit)))
			break
		}
		fmt.Fprintf(p.w, "%4d  %s\n", i, p.kinds[ev.Kind()].Render(ev.String()))
	}

	fmt.Fprintf(p.w, "%s  %s\n", p.label.Render("sorted:"), input.Format(res.Sorted))
	fmt.Fprintf(p.w, "%s   compares=%d swaps=%d sets=%d steps=%d\n",
		p.label.Render("stats:"), res.Stats.Compares, res.Stats.Swaps, res.Stats.Sets, len(res.Steps))
}
