// Package tui implements the terminal front end: it renders the toast list
// and acts as the dismiss trigger for it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/toasts/internal/core/styles"
	"github.com/colonyops/toasts/internal/core/toast"
)

type sample struct {
	message     string
	description string
}

var samples = map[toast.Category][]sample{
	toast.CategorySuccess: {
		{"Saved", "Changes written to disk"},
		{"Upload complete", ""},
		{"Settings updated", "Applied to all sessions"},
	},
	toast.CategoryError: {
		{"Failed", "disk full"},
		{"Connection lost", "Retrying in the background"},
		{"Permission denied", ""},
	},
	toast.CategoryInfo: {
		{"New version available", "Restart to update"},
		{"Sync started", ""},
		{"3 items archived", "Open the archive to restore them"},
	},
	toast.CategoryWarning: {
		{"Low disk space", "Less than 5% remaining"},
		{"Unsaved changes", ""},
		{"Rate limited", "Slowing down requests"},
	},
}

// Model is the Bubble Tea model for the toast demo.
type Model struct {
	manager    *toast.Manager
	controller *ToastController
	view       *ToastView
	inbox      *ToastInbox
	keys       keyMap
	help       help.Model
	log        zerolog.Logger

	width  int
	height int
	counts map[toast.Category]int
}

// New creates a model backed by manager.
func New(manager *toast.Manager) *Model {
	controller := NewToastController(manager)
	return &Model{
		manager:    manager,
		controller: controller,
		view:       NewToastView(manager, controller),
		inbox:      NewToastInbox(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		log:        log.With().Str("cmp", "tui").Logger(),
		counts:     make(map[toast.Category]int),
	}
}

// Inbox returns the inbox other goroutines use to request toasts.
func (m *Model) Inbox() *ToastInbox {
	return m.inbox
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.ensureTicking(), m.inbox.WaitForSignal())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		if expired := m.controller.Tick(toastTickInterval); len(expired) > 0 {
			m.log.Debug().Strs("ids", expired).Msg("toasts expired")
		}
		if m.controller.Pending() == 0 {
			m.controller.SetTicking(false)
			return m, nil
		}
		return m, scheduleToastTick()

	case drainToastsMsg:
		for _, r := range m.inbox.Drain() {
			id := r.apply(m.manager)
			m.log.Debug().Str("id", id).Msg("toast added from inbox")
		}
		return m, tea.Batch(m.ensureTicking(), m.inbox.WaitForSignal())

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.controller.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Success):
		m.push(toast.CategorySuccess)
	case key.Matches(msg, m.keys.Error):
		m.push(toast.CategoryError)
	case key.Matches(msg, m.keys.Info):
		m.push(toast.CategoryInfo)
	case key.Matches(msg, m.keys.Warning):
		m.push(toast.CategoryWarning)
	case key.Matches(msg, m.keys.Pinned):
		m.manager.Add(toast.CategoryInfo, "Pinned notice", toast.WithDescription("Stays until dismissed"), toast.WithDuration(0))
	case key.Matches(msg, m.keys.DismissNew):
		if toasts := m.manager.Toasts(); len(toasts) > 0 {
			toasts[len(toasts)-1].Dismiss()
		}
	case key.Matches(msg, m.keys.DismissOld):
		if toasts := m.manager.Toasts(); len(toasts) > 0 {
			toasts[0].Dismiss()
		}
	case key.Matches(msg, m.keys.Clear):
		m.manager.Clear()
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m.ensureTicking()
}

// push adds the next sample toast for category c through the typed helpers.
func (m *Model) push(c toast.Category) string {
	list := samples[c]
	s := list[m.counts[c]%len(list)]
	m.counts[c]++

	return ToastRequest{Category: c, Message: s.message, Description: s.description}.apply(m.manager)
}

// ensureTicking starts the tick loop when timed toasts are waiting and no
// loop is running.
func (m *Model) ensureTicking() tea.Cmd {
	if m.controller.Ticking() || m.controller.Pending() == 0 {
		return nil
	}
	m.controller.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("toasts"))
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  %d active", m.manager.Len())))
	b.WriteString("\n\n")

	if stack := m.view.Place(m.width); stack != "" {
		b.WriteString(stack)
		b.WriteString("\n\n")
	} else {
		b.WriteString(styles.MutedStyle.Render("No notifications."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
