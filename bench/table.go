package bench

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// RenderTable renders reports as a bordered table with one row per size and
// the means formatted to two decimals. Reports are expected to share columns.
func RenderTable(reports []Report) string {
	if len(reports) == 0 {
		return ""
	}

	headers := []string{"Size"}
	for _, s := range reports[0].Strategies() {
		headers = append(headers, s.String()+" (ns)")
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		row := []string{strconv.Itoa(r.Size)}
		for _, res := range r.Results {
			row = append(row, strconv.FormatFloat(res.MeanNs, 'f', 2, 64))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}
