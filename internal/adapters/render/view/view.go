// Package view renders engine results for the terminal, or as LaTeX tabulars.
package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/iterrsa/internal/application"
	"github.com/bnema/iterrsa/internal/domain"
	"github.com/bnema/iterrsa/internal/rsa"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Format string

const (
	FormatText  Format = "text"
	FormatLaTeX Format = "latex"
)

const (
	defaultPrecision = 4
	barWidth         = 20
)

type RenderOptions struct {
	Format    Format
	Precision int
}

func (o RenderOptions) precision() int {
	if o.Precision <= 0 {
		return defaultPrecision
	}
	return o.Precision
}

func (o RenderOptions) prob(p float64) string {
	return fmt.Sprintf("%.*f", o.precision(), p)
}

func RenderTree(tree *domain.ReasoningTree, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render(fmt.Sprintf("S%d reasoning for world %s", tree.Depth, tree.World)),
			s.world.Render(tree.Root().Word),
		}
		lines = append(lines, treeLines(tree, 0, "", opts, s)...)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func treeLines(tree *domain.ReasoningTree, idx int, indent string, opts RenderOptions, s styles) []string {
	children := tree.Nodes[idx].Children
	lines := make([]string, 0, len(children))
	for i, child := range children {
		node := tree.Nodes[child]
		connector, nextIndent := "├── ", "│   "
		if i == len(children)-1 {
			connector, nextIndent = "└── ", "    "
		}

		label := s.word.Render(node.Word)
		if node.Leaf() {
			label = s.endMarker.Render(node.Word)
		}
		lines = append(lines, s.branch.Render(indent+connector)+label+" "+s.prob.Render(opts.prob(node.Prob)))
		lines = append(lines, treeLines(tree, child, indent+nextIndent, opts, s)...)
	}
	return lines
}

// RenderDistribution lists each outcome with a probability bar; the most
// probable outcome is highlighted.
func RenderDistribution(title string, dist domain.Distribution, opts RenderOptions) (string, error) {
	if opts.Format == FormatLaTeX {
		return render(func(styles) string {
			return latexTabular(title, []string{"", "Probability"}, distributionRows(dist, opts))
		})
	}

	return render(func(s styles) string {
		lines := []string{s.title.Render(title)}
		if len(dist) == 0 {
			return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.header.Render("empty distribution"))...)
		}

		best := dist.Max()
		width := 0
		for _, o := range dist {
			width = max(width, lipgloss.Width(o.Key))
		}
		for _, o := range dist {
			key := s.word
			if o.Key == best.Key {
				key = s.best
			}
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				key.Render(padRight(o.Key, width)),
				" ",
				renderProbabilityBar(o.Prob, barWidth, s),
				" ",
				s.prob.Render(opts.prob(o.Prob)),
			))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderTable(t application.DistributionTable, opts RenderOptions) (string, error) {
	title := tableTitle(t)
	header := append([]string{""}, t.Columns...)
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := []string{row.Label}
		for _, column := range t.Columns {
			p, _ := row.Distribution.Prob(column)
			cells = append(cells, opts.prob(p))
		}
		rows = append(rows, cells)
	}

	if opts.Format == FormatLaTeX {
		return render(func(styles) string {
			return latexTabular(title, header, rows)
		})
	}

	return render(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left, s.title.Render(title), textTable(header, rows, s))
	})
}

func RenderTrace(trace rsa.Trace, opts RenderOptions) (string, error) {
	title := fmt.Sprintf("Iterated utterance reasoning for L%d on %q", trace.Depth, trace.Utterance)
	words := make([]string, 0, len(trace.Steps))
	worlds := make([]string, 0, len(trace.Steps))
	probs := make([]string, 0, len(trace.Steps))
	for _, step := range trace.Steps {
		words = append(words, step.Word)
		worlds = append(worlds, step.World)
		probs = append(probs, opts.prob(step.Prob))
	}
	rows := [][]string{
		append([]string{"Inferred world"}, worlds...),
		append([]string{"Probability"}, probs...),
	}
	header := append([]string{"Utterance"}, words...)

	if opts.Format == FormatLaTeX {
		return render(func(styles) string {
			return latexTabular(title, header, rows)
		})
	}

	return render(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render(title),
			textTable(header, rows, s),
			s.best.Render(fmt.Sprintf("best: %s (%s)", trace.Best.Key, opts.prob(trace.Best.Prob))),
		)
	})
}

func RenderPosterior(posterior rsa.Posterior, opts RenderOptions) (string, error) {
	title := fmt.Sprintf("Whole utterance reasoning for L%d on %q", posterior.Depth, posterior.Utterance)
	if opts.Format == FormatLaTeX {
		header := append([]string{"World state"}, posterior.Distribution.Keys()...)
		probs := []string{"Probability"}
		for _, o := range posterior.Distribution {
			probs = append(probs, opts.prob(o.Prob))
		}
		return render(func(styles) string {
			return latexTabular(title, header, [][]string{probs})
		})
	}

	return RenderDistribution(title, posterior.Distribution, opts)
}

func tableTitle(t application.DistributionTable) string {
	if t.Kind == application.TableSpeaker {
		return fmt.Sprintf("S%d(wd=* | c=%s, w=*)", t.Depth, t.Prefix)
	}
	return fmt.Sprintf("L%d(w=* | c=%s, wd=*)", t.Depth, t.Prefix)
}

func distributionRows(dist domain.Distribution, opts RenderOptions) [][]string {
	rows := make([][]string, 0, len(dist))
	for _, o := range dist {
		rows = append(rows, []string{o.Key, opts.prob(o.Prob)})
	}
	return rows
}

func textTable(header []string, rows [][]string, s styles) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header.Inherit(s.cell)
			case col == 0:
				return s.word.Inherit(s.cell)
			default:
				return s.prob.Inherit(s.cell)
			}
		})

	return t.String()
}

func latexTabular(title string, header []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%% %s\n", title)
	fmt.Fprintf(&b, "\\begin{tabular}{%s}\n", "l"+strings.Repeat("r", max(len(header)-1, 0)))
	b.WriteString("\\hline\n")
	b.WriteString(latexRow(header))
	b.WriteString("\\hline\n")
	for _, row := range rows {
		b.WriteString(latexRow(row))
	}
	b.WriteString("\\hline\n")
	b.WriteString("\\end{tabular}")
	return b.String()
}

func latexRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = latexEscape(cell)
	}
	return strings.Join(escaped, " & ") + " \\\\\n"
}

var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"<", `\textless{}`,
	">", `\textgreater{}`,
)

func latexEscape(s string) string {
	return latexReplacer.Replace(s)
}

func renderProbabilityBar(prob float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampProb(prob)))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampProb(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
