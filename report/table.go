package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvquad/sweep"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errStyle    = cellStyle.Foreground(lipgloss.Color("#FF6B6B"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// Table renders curves as a terminal table, one row per point. The error
// column is highlighted on each curve's best point.
func Table(curves []sweep.Curve, opts Options) string {
	var (
		rows [][]string
		best = map[int]bool{}
	)
	for _, c := range curves {
		bp, ok := c.Best()
		for _, pt := range c.Points {
			if ok && pt == bp {
				best[len(rows)] = true
				ok = false
			}
			x := pt.Resolution
			if opts.UseEffective {
				x = pt.Used
			}
			rows = append(rows, []string{
				c.Method.String(),
				strconv.Itoa(x),
				strconv.Itoa(pt.Used),
				strconv.FormatFloat(pt.Estimate, 'g', 17, 64),
				strconv.FormatFloat(pt.AbsError, 'e', 3, 64),
			})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("METHOD", "RES", "USED", "ESTIMATE", "ABS ERROR").
		StyleFunc(func(row, col int) lipgloss.Style {
			// data rows follow HeaderRow
			switch idx := row - (table.HeaderRow + 1); {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4 && best[idx]:
				return errStyle
			default:
				return cellStyle
			}
		}).
		Rows(rows...)

	return t.Render()
}
