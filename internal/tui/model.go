package tui

import (
	"time"

	"github.com/Iron-Ham/sheetbook/internal/config"
	"github.com/Iron-Ham/sheetbook/internal/contact"
	"github.com/Iron-Ham/sheetbook/internal/logging"
	"github.com/Iron-Ham/sheetbook/internal/state"
	"github.com/Iron-Ham/sheetbook/internal/stats"
	"github.com/Iron-Ham/sheetbook/internal/store"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form field indexes
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCount
)

// Model holds the TUI application state
type Model struct {
	// Core components
	client  store.Client
	list    *state.List
	tracker *stats.Tracker
	logger  *logging.Logger

	// Form controller state. editingID is nil in create mode and holds the
	// id of the contact being edited otherwise.
	inputs     []textinput.Model
	focus      int
	editingID  *string
	formActive bool

	// Browse state
	cursor int

	// Notification banner
	showNotification   bool
	notificationSeq    int
	notificationWindow time.Duration

	// Layout
	maxNameWidth int
	width        int
	height       int
	quitting     bool
}

// NewModel creates the TUI model. The logger must not write to the terminal.
func NewModel(client store.Client, cfg *config.Config, logger *logging.Logger) Model {
	inputs := make([]textinput.Model, fieldCount)

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 100
	name.Width = 40
	inputs[fieldName] = name

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 100
	email.Width = 40
	inputs[fieldEmail] = email

	phone := textinput.New()
	phone.Placeholder = "Phone (10 digits)"
	phone.CharLimit = 25
	phone.Width = 40
	inputs[fieldPhone] = phone

	return Model{
		client:             client,
		list:               state.NewList(),
		tracker:            stats.New(),
		logger:             logger.With("component", "tui"),
		inputs:             inputs,
		notificationWindow: cfg.TUI.NotificationWindow(),
		maxNameWidth:       cfg.TUI.MaxNameWidth,
	}
}

// Init triggers the initial fetch.
func (m Model) Init() tea.Cmd {
	return fetchContacts(m.client)
}

// visibleContacts returns the list in display order.
func (m Model) visibleContacts() []contact.Contact {
	return m.list.Contacts()
}

// selectedContact resolves the cursor to a contact value. Actions bind to
// the returned value, not to the row position.
func (m Model) selectedContact() (contact.Contact, bool) {
	contacts := m.visibleContacts()
	if m.cursor < 0 || m.cursor >= len(contacts) {
		return contact.Contact{}, false
	}
	return contacts[m.cursor], true
}

// clampCursor keeps the cursor inside the list after a re-fetch.
func (m *Model) clampCursor() {
	if n := m.list.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
