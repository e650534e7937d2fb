// Package render writes reports to a terminal: the full pipe-delimited
// table, the renewal hostname list, and the problems-only view.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/certwatch-app/certprobe/internal/inspect"
)

const dateFormat = "2006-01-02"

var tableHeader = []string{"DOMAIN", "PORT", "ISSUED TO", "VALID UNTIL", "ISSUED BY", "PROBLEMS"}

// Renderer writes report views to an output stream
type Renderer struct {
	out io.Writer
}

// New creates a Renderer writing to out
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Table renders every verdict as an aligned pipe-delimited table.
func (r *Renderer) Table(report *inspect.Report) {
	r.rows(report.All())
}

// Problems renders only the verdicts carrying at least one problem flag,
// or a note when all endpoints are healthy.
func (r *Renderer) Problems(report *inspect.Report) {
	flagged := report.WithProblems()
	if len(flagged) == 0 {
		fmt.Fprintln(r.out, OKStyle.Render("no problems found"))
		return
	}
	r.rows(flagged)
}

// Renewals renders the hostnames due for renewal, one per line. The plain
// format is intended for piping into renewal tooling.
func (r *Renderer) Renewals(report *inspect.Report) {
	for _, d := range report.RenewalDomains() {
		fmt.Fprintln(r.out, d)
	}
}

func (r *Renderer) rows(verdicts []inspect.Verdict) {
	cells := make([][]string, 0, len(verdicts))
	for _, v := range verdicts {
		cells = append(cells, verdictCells(v))
	}

	widths := columnWidths(cells)

	fmt.Fprintln(r.out, HeaderStyle.Render(joinRow(tableHeader, widths)))
	for i, row := range cells {
		fmt.Fprintln(r.out, rowStyle(verdicts[i]).Render(joinRow(row, widths)))
	}
}

func verdictCells(v inspect.Verdict) []string {
	validUntil := "-"
	if !v.ValidUntil.IsZero() {
		validUntil = v.ValidUntil.Format(dateFormat)
	}

	problems := make([]string, 0, len(v.Problems))
	for _, p := range v.Problems {
		problems = append(problems, string(p))
	}

	return []string{
		v.Domain,
		fmt.Sprintf("%d", v.Port),
		v.IssuedTo,
		validUntil,
		v.IssuedBy,
		strings.Join(problems, ","),
	}
}

func rowStyle(v inspect.Verdict) lipgloss.Style {
	switch {
	case v.HasProblem(inspect.ProblemNoCertificate) || v.HasProblem(inspect.ProblemNameMismatch):
		return ErrorStyle
	case v.HasProblem(inspect.ProblemNearRenewal):
		return WarnStyle
	default:
		return lipgloss.NewStyle()
	}
}

// columnWidths computes the display width of each column over the header
// and all rows.
func columnWidths(rows [][]string) []int {
	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func joinRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, " | "), " ")
}
