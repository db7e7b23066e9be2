package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"reliefmap/internal/scene"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				m.loadPasted(text)
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showAttrs {
			switch msg.String() {
			case "a", "esc", "q":
				m.showAttrs = false
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left":
			m.cam.YawDeg -= 5
			m.status = fmt.Sprintf("yaw: %.0f°", m.cam.YawDeg)
		case "right":
			m.cam.YawDeg += 5
			m.status = fmt.Sprintf("yaw: %.0f°", m.cam.YawDeg)
		case "up":
			if m.cam.PitchDeg < 90 {
				m.cam.PitchDeg += 5
			}
			m.status = fmt.Sprintf("tilt: %.0f°", m.cam.PitchDeg)
		case "down":
			if m.cam.PitchDeg > 10 {
				m.cam.PitchDeg -= 5
			}
			m.status = fmt.Sprintf("tilt: %.0f°", m.cam.PitchDeg)
		case "+", "=":
			if m.cam.Zoom < 64 {
				m.cam.Zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.cam.Zoom)
			}
		case "-", "_":
			if m.cam.Zoom > 0.05 {
				m.cam.Zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.cam.Zoom)
			}
		case "r":
			m.cam = scene.DefaultCamera()
			m.status = "camera reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			m.inspectPopup = m.describeSolid()
			if m.inspectPopup == "" {
				m.inspectPopup = "no region under cursor"
			}
			m.status = "inspect popup"
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPaths(it.path, "")
				}
			}
		}
	case tea.MouseMsg:
		// the popup stacks above the body and would shift the map rows
		m.inspectPopup = ""
		// compute map origin and size (must match View layout)
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			solid, geo, ok := m.solidAtCell(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight)
			m.hoverSolid = solid
			if ok {
				m.hoverGeo = true
				m.hoverLon = geo[0]
				m.hoverLat = geo[1]
			} else {
				m.hoverGeo = false
			}
		} else {
			m.hovering = false
			m.hoverSolid = nil
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// describeSolid builds the inspect popup for the hovered region:
// name, value, mapped height.
func (m Model) describeSolid() string {
	if m.sc == nil {
		return ""
	}
	s := m.hoverSolid
	if s == nil {
		return ""
	}
	value := "missing"
	if !s.Missing {
		value = fmt.Sprintf("%.0f", s.Value)
	}
	meta := []string{
		fmt.Sprintf("region: %s", s.Name),
		fmt.Sprintf("value: %s", value),
		fmt.Sprintf("height: %.0f m", s.Height),
		fmt.Sprintf("scale: %g..%g -> 0..%g m", m.sc.Scale.Min, m.sc.Scale.Max, m.sc.Scale.MaxHeight),
	}
	return strings.Join(meta, "\n")
}
