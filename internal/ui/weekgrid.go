package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/schedule"
)

// ContinuationMark fills the non-leading rows of a multi-slot block.
const ContinuationMark = "┆"

// WeekGrid renders one group's weekly schedule: a column per day, a row per
// 15-minute slot. Multi-slot items show their name on the first row and a
// continuation mark below, mirroring how blocks merge visually.
type WeekGrid struct {
	display *DisplayContext
	items   []model.ScheduleItem
}

// NewWeekGrid creates a WeekGrid over a group's placed items.
func NewWeekGrid(display *DisplayContext, items []model.ScheduleItem) *WeekGrid {
	return &WeekGrid{display: display, items: items}
}

// slotRange finds the rendered window: the occupied span widened to full
// hours. Returns false when nothing is placed.
func (g *WeekGrid) slotRange() (int, int, bool) {
	first, last := schedule.SlotsPerDay, -1
	for _, item := range g.items {
		start, err := schedule.SlotIndex(item.Time)
		if err != nil {
			continue
		}
		if start < first {
			first = start
		}
		end := start + item.Duration - 1
		if end >= schedule.SlotsPerDay {
			end = schedule.SlotsPerDay - 1
		}
		if end > last {
			last = end
		}
	}
	if last < 0 {
		return 0, 0, false
	}

	// Widen to hour boundaries so the left gutter reads naturally.
	first -= first % 4
	if rem := (last + 1) % 4; rem != 0 {
		last += 4 - rem
	}
	if last >= schedule.SlotsPerDay {
		last = schedule.SlotsPerDay - 1
	}
	return first, last, true
}

// Render generates the grid. Empty schedules produce a muted hint instead
// of an empty table.
func (g *WeekGrid) Render() string {
	first, last, ok := g.slotRange()
	if !ok {
		return Hint("nothing scheduled yet") + "\n"
	}

	colWidth := g.columnWidth()

	var rows [][]string
	for slot := first; slot <= last; slot++ {
		row := make([]string, len(model.Days)+1)
		if slot%4 == 0 {
			row[0] = schedule.SlotLabel(slot)
		}
		for d, day := range model.Days {
			occ, found := schedule.OccupantAt(g.items, day, slot)
			switch {
			case !found:
				row[d+1] = ""
			case occ.First:
				row[d+1] = TruncateWithEllipsis(occ.Item.ObjectName, colWidth)
			default:
				row[d+1] = ContinuationMark
			}
		}
		rows = append(rows, row)
	}

	headers := make([]string, len(model.Days)+1)
	for d, day := range model.Days {
		headers[d+1] = string(day)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(true).
		BorderStyle(Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return Muted.Width(5).Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				return Bold.Width(colWidth).Align(lipgloss.Center)
			}
			return lipgloss.NewStyle().Width(colWidth)
		}).
		Headers(headers...).
		Rows(rows...)

	return tbl.Render() + "\n"
}

// columnWidth divides the terminal width across the seven day columns,
// keeping room for the time gutter and column borders.
func (g *WeekGrid) columnWidth() int {
	const gutter = 5
	days := len(model.Days)
	available := g.display.TermWidth - gutter - (days + 1)
	width := available / days
	if width < 6 {
		width = 6
	}
	if width > 20 {
		width = 20
	}
	return width
}

// TruncateWithEllipsis truncates a string to maxLen, adding ellipsis if needed.
// It tries to break at word boundaries.
func TruncateWithEllipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}

	truncated := s[:maxLen-3]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
