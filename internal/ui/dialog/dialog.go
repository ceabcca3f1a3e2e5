// Package dialog implements the contextual actions popup: it resolves the
// action set for the focused item, filters and ranks as the user types,
// gates destructive actions behind confirmation, and reports execution
// results to the HUD.
package dialog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/builders"
	"github.com/runebar/runebar/internal/config"
	"github.com/runebar/runebar/internal/launchercontext"
	"github.com/runebar/runebar/internal/ui/intents"
	"github.com/runebar/runebar/internal/ui/keyrouter"
	"github.com/runebar/runebar/internal/ui/layout"
	"github.com/runebar/runebar/internal/ui/styles"
)

var dialogLog = log.WithPrefix("dialog")

// ErrConfirmationUnavailable reports a destructive action that could not be
// gated. The action is never executed in that case.
var ErrConfirmationUnavailable = errors.New("confirmation unavailable, action not executed")

type Model struct {
	executor  Executor
	confirmer Confirmer
	notifier  Notifier
	geometry  GeometryApplier

	cfg     config.DialogConfig
	metrics layout.Metrics
	styles  styles.Dialog

	ctx     launchercontext.Context
	set     action.Set
	visible []action.Action
	rows    []Row
	query   string
	// selected indexes visible; -1 when nothing is focusable.
	selected int

	// epoch identifies the current dialog session. Confirmation verdicts
	// and execution results from earlier sessions are dropped.
	epoch uint64
	open  bool

	pending    action.Action
	hasPending bool

	termWidth int
}

func New(executor Executor, confirmer Confirmer, notifier Notifier, geometry GeometryApplier) *Model {
	cfg := config.Current.Dialog
	return &Model{
		executor:  executor,
		confirmer: confirmer,
		notifier:  notifier,
		geometry:  geometry,
		cfg:       cfg,
		metrics:   metricsFor(cfg),
		styles:    styles.NewDialog(),
		selected:  -1,
	}
}

func metricsFor(cfg config.DialogConfig) layout.Metrics {
	return layout.Metrics{
		RowHeight:    cfg.RowHeight,
		HeaderHeight: 1,
		SearchHeight: 1,
		FooterHeight: 1,
		Padding:      1,
		MinHeight:    cfg.MinHeight,
		MaxHeight:    cfg.MaxHeight,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Open starts a new dialog session for the focused context. The previous
// session's in-flight work becomes stale immediately.
func (m *Model) Open(ctx launchercontext.Context) tea.Cmd {
	m.epoch++
	m.open = true
	m.ctx = ctx
	m.set = builders.Build(ctx)
	m.query = ""
	m.hasPending = false
	m.refresh("")
	m.applyGeometry()
	dialogLog.Debug("opened", "kind", ctx.Kind, "actions", m.set.Len(), "epoch", m.epoch)
	return nil
}

// SetActions replaces the current set (an SDK refresh or keep-open rebuild)
// while preserving the focused action by id when it survives.
func (m *Model) SetActions(set action.Set) {
	keep := m.selectedID()
	m.set = set
	m.refresh(keep)
	m.applyGeometry()
}

func (m *Model) IsOpen() bool             { return m.open }
func (m *Model) Epoch() uint64            { return m.epoch }
func (m *Model) Query() string            { return m.query }
func (m *Model) Visible() []action.Action { return m.visible }

// Selected returns the focused action, if any.
func (m *Model) Selected() (action.Action, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return action.Action{}, false
	}
	return m.visible[m.selected], true
}

func (m *Model) selectedID() string {
	if a, ok := m.Selected(); ok {
		return a.ID
	}
	return ""
}

// refresh recomputes the visible slice and rows for the current query, then
// restores focus: by id when keepID survives the refilter, otherwise by
// clamping the previous position.
func (m *Model) refresh(keepID string) {
	prev := m.selected
	indices := action.Rank(m.set, m.query)
	m.visible = m.visible[:0]
	for _, i := range indices {
		m.visible = append(m.visible, m.set.At(i))
	}
	m.rows = buildRows(m.visible)

	if keepID != "" {
		for i, a := range m.visible {
			if a.ID == keepID {
				m.selected = i
				return
			}
		}
	}
	m.selected = coerce(prev, len(m.visible))
}

// coerce clamps a previous focus position into the new list, preferring the
// nearest following row and falling back upward. -1 means nothing to focus.
func coerce(prev, n int) int {
	if n == 0 {
		return -1
	}
	if prev < 0 {
		return 0
	}
	if prev >= n {
		return n - 1
	}
	return prev
}

func (m *Model) applyGeometry() {
	if m.geometry == nil {
		return
	}
	visibleRows := len(m.visible)
	if visibleRows > m.cfg.MaxVisibleRows {
		visibleRows = m.cfg.MaxVisibleRows
	}
	height := layout.PopupHeight(visibleRows, headerRowCount(m.rows), true, m.ctx.Title() != "", m.cfg.ShowFooter, m.metrics)
	width := layout.PopupWidth(m.cfg.Width, m.termWidth)
	m.geometry.ApplyPopupSize(width, height)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		if m.open {
			m.applyGeometry()
		}
		return nil
	case ExecutionResultMsg:
		return m.handleResult(msg)
	case ConfirmationResultMsg:
		return m.handleVerdict(msg)
	}

	if !m.open {
		return nil
	}

	switch msg := msg.(type) {
	case OutsideClickMsg:
		return m.close()
	case tea.KeyMsg:
		intent, ok := keyrouter.Classify(msg, keyrouter.ModeSearch)
		if !ok {
			return nil
		}
		return m.handleIntent(intent)
	case intents.Intent:
		return m.handleIntent(msg)
	}
	return nil
}

func (m *Model) handleIntent(intent intents.Intent) tea.Cmd {
	switch intent := intent.(type) {
	case intents.MoveUp:
		m.moveSelection(-1)
	case intents.MoveDown:
		m.moveSelection(1)
	case intents.Home:
		if len(m.visible) > 0 {
			m.selected = 0
		}
	case intents.End:
		if len(m.visible) > 0 {
			m.selected = len(m.visible) - 1
		}
	case intents.PageUp:
		m.moveSelection(-m.cfg.MaxVisibleRows)
	case intents.PageDown:
		m.moveSelection(m.cfg.MaxVisibleRows)
	case intents.TypeChar:
		m.setQuery(m.query + string(intent.Rune))
	case intents.Backspace:
		if m.query != "" {
			m.setQuery(trimLastRune(m.query))
		}
	case intents.JumpKey:
		m.jumpTo(intent.Rune)
	case intents.Select:
		return m.executeSelected()
	case intents.Cancel:
		return m.close()
	}
	return nil
}

// moveSelection clamps at both ends; focus never wraps.
func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.visible) {
		next = len(m.visible) - 1
	}
	m.selected = next
}

func (m *Model) jumpTo(r rune) {
	for i, a := range m.visible {
		first, _ := firstRune(a.Title)
		if unicode.ToLower(first) == r {
			m.selected = i
			return
		}
	}
}

func (m *Model) setQuery(query string) {
	m.query = query
	m.refresh(m.selectedID())
	m.applyGeometry()
}

// executeSelected runs the focused action, routing destructive ones through
// the confirmation gate first.
func (m *Model) executeSelected() tea.Cmd {
	a, ok := m.Selected()
	if !ok {
		return nil
	}
	if action.IsDestructive(a) {
		if m.confirmer == nil {
			dialogLog.Warn("destructive action blocked, no confirmer", "id", a.ID)
			return m.notify("", ErrConfirmationUnavailable)
		}
		m.pending = a
		m.hasPending = true
		return m.confirmer.Confirm(a.Title, m.epoch)
	}
	return m.execute(a)
}

func (m *Model) handleVerdict(msg ConfirmationResultMsg) tea.Cmd {
	if msg.Epoch != m.epoch || !m.hasPending {
		dialogLog.Debug("dropping stale confirmation verdict", "epoch", msg.Epoch, "current", m.epoch)
		return nil
	}
	pending := m.pending
	m.hasPending = false
	if !msg.Accepted {
		return nil
	}
	return m.execute(pending)
}

func (m *Model) execute(a action.Action) tea.Cmd {
	epoch := m.epoch
	ctx := m.ctx
	run := func() tea.Msg {
		output, err := m.executor.Execute(a, ctx)
		return ExecutionResultMsg{Action: a, Output: output, Err: err, Epoch: epoch}
	}
	if a.KeepOpen {
		return run
	}
	return tea.Batch(run, m.close())
}

// handleResult notifies the HUD for results of the current session; results
// from a session that has since been replaced are dropped.
func (m *Model) handleResult(msg ExecutionResultMsg) tea.Cmd {
	if msg.Epoch != m.epoch {
		dialogLog.Debug("dropping stale execution result", "id", msg.Action.ID, "epoch", msg.Epoch)
		return nil
	}
	if msg.Err != nil {
		return m.notify("", fmt.Errorf("%s: %w", msg.Action.Title, msg.Err))
	}
	return m.notify(msg.Output, nil)
}

func (m *Model) notify(text string, err error) tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	return m.notifier.Notify(text, err)
}

// close dismisses the dialog and drops the session's actions and focus. The
// session epoch survives so the result of an action executed on the way out
// still reaches the HUD.
func (m *Model) close() tea.Cmd {
	if !m.open {
		return nil
	}
	m.open = false
	m.query = ""
	m.hasPending = false
	m.set = action.Set{}
	m.visible = nil
	m.rows = nil
	m.selected = -1
	return Close
}

func (m *Model) View() string {
	if !m.open {
		return ""
	}

	var b strings.Builder
	innerWidth := m.cfg.Width - 4

	if title := m.ctx.Title(); title != "" {
		b.WriteString(m.styles.ContextTitle.Render(truncateTitle(title, innerWidth)))
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Search.Render("› " + m.query))
	b.WriteByte('\n')

	if len(m.visible) == 0 {
		b.WriteString(m.styles.EmptyState.Render(action.EmptyStateMessage(m.query)))
	} else {
		m.renderRows(&b, innerWidth)
	}

	if m.cfg.ShowFooter {
		b.WriteByte('\n')
		b.WriteString(m.styles.Footer.Render("↑↓ navigate · ↵ run · esc dismiss"))
	}
	return m.styles.Border.Render(b.String())
}

func (m *Model) renderRows(b *strings.Builder, width int) {
	for i, row := range m.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch row := row.(type) {
		case SectionHeader:
			b.WriteString(m.styles.SectionHeader.Render(row.Title))
		case Separator:
			b.WriteString(m.styles.Separator.Render(strings.Repeat("─", max(width, 1))))
		case ActionRow:
			b.WriteString(m.renderAction(row.Index, width))
		}
	}
}

func (m *Model) renderAction(i, width int) string {
	a := m.visible[i]
	style := m.styles.Row
	if action.IsDestructive(a) {
		style = m.styles.RowDanger
	}
	if i == m.selected {
		style = m.styles.RowSelected
	}

	line := truncateTitle(a.Title, width)
	if m.cfg.ShowShortcuts && a.Shortcut != "" {
		line += "  " + m.styles.Shortcut.Render(a.Shortcut)
	}
	return style.Render(line)
}

func trimLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
