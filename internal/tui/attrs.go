package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/paulmach/orb/planar"
)

// refreshAttrs rebuilds the attribute table from the current scene: one row
// per solid with its joined value, mapped height and base area.
func (m *Model) refreshAttrs() {
	if m.sc == nil || len(m.sc.Solids) == 0 {
		m.showAttrs = false
		m.status = "no attributes: load a dataset first"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "region", Width: 20},
		{Title: "value", Width: 14},
		{Title: "height m", Width: 10},
		{Title: "area km²", Width: 10},
	}
	rows := make([]table.Row, 0, len(m.sc.Solids))
	for i, s := range m.sc.Solids {
		value := "—"
		if !s.Missing {
			value = fmt.Sprintf("%.0f", s.Value)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			s.Name,
			value,
			fmt.Sprintf("%.0f", s.Height),
			fmt.Sprintf("%.0f", planar.Area(s.Base)/1e6),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
