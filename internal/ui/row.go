package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kyaoi/swipeview/internal/arbiter"
	"github.com/kyaoi/swipeview/internal/deck"
	"github.com/kyaoi/swipeview/internal/swipe"
)

var (
	rowTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")).Bold(true)
	rowSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#7aa2f7")).Bold(true)
	rowOpenMarker    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	leftPanelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#9ece6a")).Bold(true)
	rightPanelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#f7768e")).Bold(true)
	rowRuleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))
)

// rowView is one swipeable row: the deck row, its control, and the pointer
// plumbing that feeds it.
type rowView struct {
	row         deck.Row
	list        *scrollList
	placed      bool
	control     *swipe.Control
	sampler     *swipe.Sampler
	interceptor *arbiter.Interceptor
	delegate    *arbiter.Delegate

	renderedWidth int
	bodyLines     []string
}

// Parent implements arbiter.Node. A row only has a parent once it has been
// laid out inside the list.
func (r *rowView) Parent() arbiter.Node {
	if !r.placed {
		return nil
	}
	return r.list
}

func (r *rowView) panels() swipe.PanelSet {
	return swipe.PanelSet{HasLeft: r.row.HasLeft(), HasRight: r.row.HasRight()}
}

// detach releases every subscription the row holds on collaborators.
func (r *rowView) detach() {
	if r.delegate != nil {
		r.delegate.Detach()
	}
	if r.interceptor != nil {
		r.interceptor.PointerCancel()
	}
	r.sampler.Cancel()
	r.placed = false
}

func (r *rowView) lineZone(i int) string {
	return fmt.Sprintf("%s/%d", r.row.ID, i)
}

// hit reports whether the mouse event lands on one of the row's lines.
func (r *rowView) hit(msg tea.MouseMsg, height int) bool {
	for i := 0; i < height; i++ {
		if info := zone.Get(r.lineZone(i)); info != nil && info.InBounds(msg) {
			return true
		}
	}
	return false
}

func (r *rowView) renderBody(renderer *glamour.TermRenderer, width int) error {
	if renderer == nil || (r.renderedWidth == width && r.bodyLines != nil) {
		return nil
	}
	rendered, err := renderer.Render(r.row.Body)
	if err != nil {
		return err
	}
	var lines []string
	for _, line := range strings.Split(rendered, "\n") {
		if strings.TrimSpace(ansi.Strip(line)) == "" {
			continue
		}
		lines = append(lines, line)
	}
	r.bodyLines = lines
	r.renderedWidth = width
	return nil
}

// view renders the row at its current offset: the center panel moves by the
// offset and uncovers the side panel behind it.
func (r *rowView) view(width, height int, selected bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	center := r.centerLines(width, height, selected)
	offset := int(math.Round(r.control.Offset()))
	if offset > width {
		offset = width
	} else if offset < -width {
		offset = -width
	}

	out := make([]string, height)
	for i, line := range center {
		switch {
		case offset > 0 && r.control.LeftVisible():
			panel := sidePanel(leftPanelStyle, r.row.Left, offset, i, height)
			out[i] = panel + ansi.Truncate(line, width-offset, "")
		case offset < 0 && r.control.RightVisible():
			n := -offset
			shifted := pad(ansi.TruncateLeft(line, n, ""), width-n)
			out[i] = shifted + sidePanel(rightPanelStyle, r.row.Right, n, i, height)
		default:
			out[i] = line
		}
		out[i] = zone.Mark(r.lineZone(i), out[i])
	}
	return strings.Join(out, "\n")
}

func (r *rowView) centerLines(width, height int, selected bool) []string {
	title := r.row.Title
	if !r.control.IsClosed() {
		title = rowOpenMarker.Render("◆ ") + title
	}
	style := rowTitleStyle
	if selected {
		style = rowSelectedStyle
	}
	lines := []string{pad(ansi.Truncate(style.Render(" "+title+" "), width, "…"), width)}
	for _, line := range r.bodyLines {
		if len(lines) >= height-1 {
			break
		}
		lines = append(lines, pad(ansi.Truncate(line, width, "…"), width))
	}
	for len(lines) < height-1 {
		lines = append(lines, strings.Repeat(" ", width))
	}
	if height > 1 {
		lines = append(lines, rowRuleStyle.Render(strings.Repeat("─", width)))
	}
	return lines[:height]
}

// sidePanel renders one line of a side panel; the label sits on the middle
// line.
func sidePanel(style lipgloss.Style, label string, width, line, height int) string {
	text := ""
	if line == (height-1)/2 {
		text = ansi.Truncate(label, width, "")
	}
	return style.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
