// Package model holds the Bubble Tea models of the CLI.
package model

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keymaster/internal/cli/styles"
	"github.com/bnema/keymaster/internal/infrastructure/config"
	"github.com/bnema/keymaster/internal/logging"
	"github.com/bnema/keymaster/internal/ui/adapter"
	"github.com/bnema/keymaster/internal/ui/dispatcher"
	"github.com/bnema/keymaster/internal/ui/input"
)

const maxLogEntries = 12

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// logEntry is one line of the fired-action log.
type logEntry struct {
	at     time.Time
	key    string
	action input.Action
	scope  string
}

// actionQueue collects actions fired during a dispatch. Handlers run inside
// Update, so the queue is drained before Update returns.
type actionQueue struct {
	mu      sync.Mutex
	pending []input.Action
	quit    bool
}

func (q *actionQueue) push(_ context.Context, action input.Action) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, action)
	return nil
}

func (q *actionQueue) drain() []input.Action {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

func (q *actionQueue) requestQuit() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.quit = true
}

func (q *actionQueue) quitRequested() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.quit
}

// TryModel is the interactive playground: every key goes through the engine
// and fired actions are listed on screen.
type TryModel struct {
	keys       *input.KeyboardHandler
	source     *adapter.TeaSource
	queue      *actionQueue
	dispatcher *dispatcher.KeyboardDispatcher

	cfg     *config.Config
	scopes  []string
	entries []logEntry
	lastKey string
	status  string
	err     error

	keyMap   styles.TryKeyMap
	help     help.Model
	theme    *styles.Theme
	quitting bool
	width    int

	ctx context.Context
}

// NewTryModel creates the playground model. handler must already have cfg
// applied and its engine attached to source.
func NewTryModel(
	ctx context.Context,
	theme *styles.Theme,
	handler *input.KeyboardHandler,
	source *adapter.TeaSource,
	cfg *config.Config,
) TryModel {
	queue := &actionQueue{}
	handler.SetOnAction(queue.push)
	d := dispatcher.NewKeyboardDispatcher(ctx, handler.Engine())
	d.SetOnQuit(queue.requestQuit)

	m := TryModel{
		keys:       handler,
		source:     source,
		queue:      queue,
		dispatcher: d,
		keyMap:     styles.DefaultTryKeyMap(),
		help:       styles.NewStyledHelp(theme),
		theme:      theme,
		ctx:        ctx,
	}
	return m.withConfig(cfg)
}

func (m TryModel) withConfig(cfg *config.Config) TryModel {
	m.cfg = cfg
	m.dispatcher.SetScopeOrder(cfg.Scopes())
	m.scopes = m.dispatcher.ScopeOrder()
	m.keyMap.Configured = m.keyMap.Configured[:0:0]
	for _, b := range cfg.Bindings {
		m.keyMap.Configured = append(m.keyMap.Configured, styles.HelpEntry(b.Keys, b.Action))
	}
	return m
}

// Init implements tea.Model.
func (m TryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case ConfigReloadedMsg:
		return m.handleReload(msg), nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.FocusMsg:
		m.source.Feed(msg)
		return m, nil
	}
	return m, nil
}

func (m TryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastKey = msg.String()
	ev, ok := m.source.Feed(msg)
	if !ok {
		m.status = "key not representable"
		return m, nil
	}
	m.status = "no binding"
	if ev.DefaultPrevented() {
		m.status = "handled"
	}

	for _, action := range m.queue.drain() {
		m = m.apply(action)
	}
	if m.queue.quitRequested() {
		m.quitting = true
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

// apply records a fired action and runs its built-in behavior, if any.
func (m TryModel) apply(action input.Action) TryModel {
	engine := m.keys.Engine()
	m.entries = append(m.entries, logEntry{
		at:     time.Now(),
		key:    m.lastKey,
		action: action,
		scope:  engine.Scope(),
	})
	if len(m.entries) > maxLogEntries {
		m.entries = m.entries[len(m.entries)-maxLogEntries:]
	}

	if err := m.dispatcher.Dispatch(m.ctx, action); err != nil && !errors.Is(err, dispatcher.ErrUnknownAction) {
		logging.FromContext(m.ctx).Warn().Err(err).Str("action", string(action)).Msg("action failed")
	}
	return m
}

func (m TryModel) handleReload(msg ConfigReloadedMsg) TryModel {
	log := logging.FromContext(m.ctx)
	engine := m.keys.Engine()
	scope := engine.Scope()

	if err := m.keys.Apply(msg.Config); err != nil {
		log.Warn().Err(err).Msg("config reload rejected")
		m.err = err
		return m
	}
	m.err = nil
	m = m.withConfig(msg.Config)
	if slices.Contains(m.scopes, scope) {
		engine.SetScope(scope)
	}
	m.status = "config reloaded"
	log.Info().Int("bindings", len(msg.Config.Bindings)).Msg("bindings reloaded")
	return m
}

// View implements tea.Model.
func (m TryModel) View() string {
	if m.quitting {
		return ""
	}
	engine := m.keys.Engine()
	active := engine.Scope()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(styles.IconKeyboard + " keymaster playground"))
	b.WriteString("\n\n")

	badges := make([]string, 0, len(m.scopes))
	for _, s := range m.scopes {
		badges = append(badges, m.theme.ScopeBadge(s, s == active))
	}
	b.WriteString(m.theme.Subtle.Render(styles.IconLayers + " scopes "))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, badges...))
	b.WriteString("\n")

	mods := engine.Modifiers().String()
	if mods == "" {
		mods = "-"
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s\n\n",
		m.theme.Subtle.Render("last key"), m.theme.KeyCap.Render(orDash(m.lastKey)),
		m.theme.Subtle.Render("held"), m.theme.Normal.Render(mods),
		m.theme.Subtle.Render(m.status),
	))

	b.WriteString(m.theme.BoxHeader.Render("Fired actions"))
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(m.theme.Subtle.Render("  press a configured shortcut"))
		b.WriteString("\n")
	}
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		b.WriteString(fmt.Sprintf("  %s %s %s %s %s\n",
			m.theme.Subtle.Render(e.at.Format("15:04:05")),
			m.theme.KeyCap.Render(e.key),
			m.theme.Subtle.Render(styles.IconArrow),
			m.theme.Highlight.Render(string(e.action)),
			m.theme.Subtle.Render("["+e.scope+"]"),
		))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorStyle.Render(styles.IconWarning + " " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMap))
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
