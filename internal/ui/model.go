package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kyaoi/swipeview/internal/arbiter"
	"github.com/kyaoi/swipeview/internal/autoclose"
	"github.com/kyaoi/swipeview/internal/deck"
	"github.com/kyaoi/swipeview/internal/log"
	"github.com/kyaoi/swipeview/internal/motion"
	"github.com/kyaoi/swipeview/internal/swipe"
)

const (
	headerHeight     = 1
	footerHeight     = 1
	minContentWidth  = 20
	defaultRowHeight = 3
	frameInterval    = time.Second / 60
)

var (
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#7aa2f7")).
			Bold(true)
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

// Model implements the Bubble Tea program hosting a list of swipeable rows.
type Model struct {
	list      *scrollList
	renderer  *glamour.TermRenderer
	closer    *autoclose.Closer
	tweener   *motion.Tweener
	ticking   bool
	lastFrame time.Time

	headerPath string
	deckDir    string
	loader     RowLoader

	cfg            swipe.Config
	deadZone       float64
	mode           arbiter.Mode
	rowHeight      int
	allRows        []deck.Row
	views          map[string]*rowView
	visible        []*rowView
	selection      int
	active         *rowView
	listDrag       bool
	listDragStartX int
	listDragStartY int
	listDragLastY  int

	filterInput  textinput.Model
	filterActive bool
	filterQuery  string

	watcher *deck.Watcher

	showHelp bool
	ready    bool
	width    int
	height   int
	err      error
	closed   bool
}

type frameMsg time.Time

type deckChangeMsg struct {
	change deck.Change
	closed bool
}

// NewModel constructs the host model with the provided initial state.
func NewModel(state State) *Model {
	rowHeight := state.RowHeight
	if rowHeight <= 0 {
		rowHeight = defaultRowHeight
	}
	m := &Model{
		list:       newScrollList(state.PullToRefresh),
		closer:     autoclose.New(),
		tweener:    motion.NewTweener(state.SettleDuration),
		headerPath: state.HeaderPath,
		deckDir:    state.DeckDir,
		loader:     state.Loader,
		cfg:        state.Swipe,
		deadZone:   state.DeadZone,
		mode:       state.Mode,
		rowHeight:  rowHeight,
		views:      make(map[string]*rowView),
	}

	filterInput := textinput.New()
	filterInput.Prompt = "/"
	filterInput.CharLimit = 128
	filterInput.Placeholder = "filter rows"
	filterInput.Blur()
	m.filterInput = filterInput

	m.filterQuery = strings.TrimSpace(state.Filter)
	m.setRows(state.Rows)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.deckDir == "" {
		return nil
	}
	watcher, err := deck.Watch(m.deckDir)
	if err != nil {
		m.err = err
		return nil
	}
	m.watcher = watcher
	return m.waitForDeckChange()
}

// Close releases the watcher, pending animations and every row
// subscription. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.tweener.Stop()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			log.Errorln("close deck watcher:", err)
		}
	}
	for _, v := range m.views {
		v.detach()
	}
	m.closer.Detach()
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	if m.showHelp {
		helpContent := strings.Join([]string{
			"help (? / esc to close)",
			"drag a row sideways   : reveal its left / right panel",
			"click a row           : tap (open / close when enabled)",
			"j / k                 : select row",
			"l / h                 : swipe the selected row right / left",
			"enter                 : tap the selected row",
			"c / C                 : close the selected row / every row",
			"wheel / drag up-down  : scroll, pull down at the top to reload",
			"/                     : filter rows",
			"r                     : reload the deck",
			"q / ctrl+c            : quit",
		}, "\n")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(helpContent))
	}

	header := headerStyle.Render(m.headerPath)
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.list.vp.View(), m.statusLine())
	return zone.Scan(body)
}

func (m *Model) statusLine() string {
	switch {
	case m.filterActive:
		return statusBarStyle.Render(m.filterInput.View())
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	}
	open := 0
	for _, v := range m.visible {
		if !v.control.IsClosed() {
			open++
		}
	}
	status := fmt.Sprintf("%d rows, %d open", len(m.visible), open)
	if m.filterQuery != "" {
		status += fmt.Sprintf(" (filter: %s)", m.filterQuery)
	}
	return statusBarStyle.Render(status)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.refresh()
	return model, tea.Batch(cmd, m.scheduleFrame())
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		m.advanceFrame(time.Time(msg))
		return m, nil
	case scrollIdleMsg:
		m.list.handleIdle(msg)
		return m, nil
	case deckChangeMsg:
		return m, m.handleDeckChange(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterActive {
		switch msg.Type {
		case tea.KeyEnter:
			m.exitFilterMode()
			m.applyFilter(strings.TrimSpace(m.filterInput.Value()))
			return m, nil
		case tea.KeyEsc, tea.KeyCtrlC:
			m.exitFilterMode()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	key := msg.String()
	if m.showHelp {
		switch key {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "l", "right":
		m.keyboardSwipe(1)
	case "h", "left":
		m.keyboardSwipe(-1)
	case "enter", " ":
		if v := m.selected(); v != nil {
			v.control.OnTapped()
		}
	case "c":
		if v := m.selected(); v != nil {
			v.control.ClosePanel()
		}
	case "C":
		for _, v := range m.visible {
			v.control.ClosePanel()
		}
	case "/":
		return m, m.enterFilterMode()
	case "esc":
		if m.filterQuery != "" {
			m.applyFilter("")
		}
	case "r":
		m.reload()
	}
	return m, nil
}

// keyboardSwipe drives the selected row through a full synthetic drag, so
// keyboard users take the same path as pointer users.
func (m *Model) keyboardSwipe(dir float64) {
	v := m.selected()
	if v == nil || m.active != nil {
		return
	}
	travel := v.control.Travel()
	v.sampler.Press(0, 0)
	v.sampler.Move(dir*travel/2, 0)
	v.sampler.Move(dir*travel, 0)
	v.sampler.Release()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp || m.filterActive {
		return nil
	}
	x, y := float64(msg.X), float64(msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		pulled, cmd := m.list.wheel(msg.Button == tea.MouseButtonWheelUp)
		if pulled {
			m.reload()
		}
		return cmd

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.listDrag = false
		m.listDragStartX = msg.X
		m.listDragStartY = msg.Y
		m.listDragLastY = msg.Y
		v := m.rowAt(msg)
		if v == nil {
			return nil
		}
		m.active = v
		m.selectView(v)
		if m.mode == arbiter.ModeIntercept {
			v.interceptor.PointerDown(x, y)
		}
		v.sampler.Press(x, y)
		return nil

	case msg.Action == tea.MouseActionMotion:
		return m.handlePointerMove(msg)

	case msg.Action == tea.MouseActionRelease:
		m.finishPointer(false)
		return nil
	}
	return nil
}

func (m *Model) handlePointerMove(msg tea.MouseMsg) tea.Cmd {
	if m.listDrag {
		m.dragList(msg.Y)
		return nil
	}
	v := m.active
	if v == nil {
		if m.list.canScroll() && msg.Button == tea.MouseButtonLeft {
			m.listDrag = true
			m.dragList(msg.Y)
		}
		return nil
	}
	x, y := float64(msg.X), float64(msg.Y)

	if m.mode == arbiter.ModeIntercept {
		if !v.interceptor.PointerMove(x, y) && m.listSteals(msg) {
			// The list takes the trail over, the row sees a cancel.
			v.interceptor.PointerCancel()
			v.sampler.Cancel()
			m.active = nil
			m.listDrag = true
			m.dragList(msg.Y)
			return nil
		}
		v.sampler.Move(x, y)
		return nil
	}

	v.sampler.Move(x, y)
	if !v.sampler.Dragging() && m.listSteals(msg) {
		m.dragList(msg.Y)
	}
	return nil
}

// listSteals reports whether a pointer move is vertical enough for the list
// to scroll on it.
func (m *Model) listSteals(msg tea.MouseMsg) bool {
	if m.list.disallowIntercept || !m.list.canScroll() {
		return false
	}
	dy := msg.Y - m.listDragStartY
	dx := msg.X - m.listDragStartX
	return dy != 0 && math.Abs(float64(dy)) > math.Abs(float64(dx))
}

func (m *Model) dragList(y int) {
	delta := m.listDragLastY - y
	m.listDragLastY = y
	if m.list.scrollBy(delta) {
		m.reload()
	}
}

func (m *Model) finishPointer(cancel bool) {
	if v := m.active; v != nil {
		if v.interceptor != nil {
			if cancel {
				v.interceptor.PointerCancel()
			} else {
				v.interceptor.PointerUp()
			}
		}
		if cancel {
			v.sampler.Cancel()
		} else {
			v.sampler.Release()
		}
	}
	m.active = nil
	m.listDrag = false
	m.list.endDrag()
}

func (m *Model) rowAt(msg tea.MouseMsg) *rowView {
	for _, v := range m.visible {
		if v.hit(msg, m.rowHeight) {
			return v
		}
	}
	return nil
}

func (m *Model) selected() *rowView {
	if m.selection < 0 || m.selection >= len(m.visible) {
		return nil
	}
	return m.visible[m.selection]
}

func (m *Model) selectView(v *rowView) {
	for i, candidate := range m.visible {
		if candidate == v {
			m.selection = i
			return
		}
	}
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selection = clamp(m.selection+delta, 0, len(m.visible)-1)
	m.ensureSelectionVisible()
}

func (m *Model) ensureSelectionVisible() {
	if m.list.vp.Height == 0 {
		return
	}
	top := m.selection * m.rowHeight
	bottom := top + m.rowHeight - 1
	if top < m.list.vp.YOffset {
		m.list.vp.SetYOffset(top)
		return
	}
	if end := m.list.vp.YOffset + m.list.vp.Height - 1; bottom > end {
		m.list.vp.SetYOffset(bottom - m.list.vp.Height + 1)
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= headerHeight+footerHeight {
		return
	}
	m.width = width
	m.height = height
	m.ready = true

	contentWidth := max(width, minContentWidth)
	m.list.vp.Width = contentWidth
	m.list.vp.Height = max(height-headerHeight-footerHeight, 1)

	renderer, err := newRenderer(contentWidth)
	if err != nil {
		m.err = err
		return
	}
	m.renderer = renderer
	for _, v := range m.views {
		v.renderedWidth = 0
		v.bodyLines = nil
	}
	for _, v := range m.visible {
		m.place(v)
	}
	m.ensureSelectionVisible()
}

// place lays a row out inside the list: it gets its geometry and, from now
// on, a parent the arbiter can discover.
func (m *Model) place(v *rowView) {
	if m.width <= 0 {
		return
	}
	v.placed = true
	v.control.SetWidth(float64(m.list.vp.Width))
	if v.delegate != nil {
		v.delegate.Resolve()
	}
	if err := v.renderBody(m.renderer, m.list.vp.Width); err != nil {
		m.err = err
	}
}

// refresh re-renders the row list into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	blocks := make([]string, 0, len(m.visible))
	for i, v := range m.visible {
		blocks = append(blocks, v.view(m.list.vp.Width, m.rowHeight, i == m.selection))
	}
	m.list.vp.SetContent(strings.Join(blocks, "\n"))
}

func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || !m.tweener.Active() {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Now()
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) advanceFrame(now time.Time) {
	m.ticking = false
	dt := now.Sub(m.lastFrame)
	if dt <= 0 {
		dt = frameInterval
	}
	m.tweener.Advance(dt)
}

func (m *Model) newView(row deck.Row) *rowView {
	ctl := swipe.New(m.cfg, swipe.PanelSet{HasLeft: row.HasLeft(), HasRight: row.HasRight()}, m.tweener)
	ctl.SetParentList(m.list)
	v := &rowView{
		row:     row,
		list:    m.list,
		control: ctl,
		sampler: swipe.NewSampler(ctl, m.deadZone),
	}
	switch m.mode {
	case arbiter.ModeDelegate:
		v.delegate = arbiter.NewDelegate(v, ctl, v.sampler)
		v.delegate.Attach()
	default:
		v.interceptor = arbiter.NewInterceptor(ctl, m.list)
	}
	return v
}

// setRows reconciles the row views with a fresh deck: removed rows are
// detached, new rows get a control, kept rows keep their panel state.
func (m *Model) setRows(rows []deck.Row) {
	added, removed := deck.Diff(m.allRows, rows)
	for _, row := range removed {
		v, ok := m.views[row.ID]
		if !ok {
			continue
		}
		if v == m.active {
			m.finishPointer(true)
		}
		m.closer.ChildRemoved(v.control)
		v.detach()
		delete(m.views, row.ID)
	}
	for _, row := range added {
		m.views[row.ID] = m.newView(row)
	}
	for _, row := range rows {
		v := m.views[row.ID]
		if v.row.Body != row.Body {
			v.bodyLines = nil
			v.renderedWidth = 0
		}
		v.row = row
		v.control.SetPanels(v.panels())
	}
	m.allRows = rows
	m.applyFilter(m.filterQuery)
}

// applyFilter recomputes the visible rows. Rows that leave the list stop
// taking part in sibling auto-closing; rows that join it start.
func (m *Model) applyFilter(query string) {
	m.filterQuery = query
	shown := deck.Filter(m.allRows, query)

	next := make([]*rowView, 0, len(shown))
	keep := make(map[*rowView]bool, len(shown))
	for _, row := range shown {
		v := m.views[row.ID]
		next = append(next, v)
		keep[v] = true
	}
	for _, v := range m.visible {
		if !keep[v] {
			if v == m.active {
				m.finishPointer(true)
			}
			m.closer.ChildRemoved(v.control)
			v.placed = false
		}
	}
	for _, v := range next {
		m.closer.ChildAdded(v.control)
		m.place(v)
	}
	m.visible = next
	m.selection = clamp(m.selection, 0, max(len(m.visible)-1, 0))
	m.ensureSelectionVisible()
}

func (m *Model) reload() {
	if m.loader == nil {
		return
	}
	rows, err := m.loader.List()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.list.refreshes++
	m.setRows(rows)
}

func (m *Model) enterFilterMode() tea.Cmd {
	m.filterActive = true
	m.filterInput.SetValue(m.filterQuery)
	m.filterInput.CursorEnd()
	return m.filterInput.Focus()
}

func (m *Model) exitFilterMode() {
	m.filterActive = false
	m.filterInput.Blur()
}

func (m *Model) waitForDeckChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-changes
		return deckChangeMsg{change: change, closed: !ok}
	}
}

func (m *Model) handleDeckChange(msg deckChangeMsg) tea.Cmd {
	if msg.closed {
		return nil
	}
	if msg.change.Err != nil {
		m.err = msg.change.Err
		return m.waitForDeckChange()
	}
	log.Debugf("deck changed: %s %s", msg.change.Op, msg.change.Path)
	m.reload()
	return m.waitForDeckChange()
}

func newRenderer(width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(styles.TokyoNightStyle)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	return glamour.NewTermRenderer(opts...)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
