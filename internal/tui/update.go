package tui

import (
	sberrors "github.com/Iron-Ham/sheetbook/internal/errors"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages. Every mutation success is followed by a full
// re-fetch; the mirror is never patched locally.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case contactsMsg:
		m.list.Replace(msg.contacts)
		m.tracker.RecordFetch(len(msg.contacts))
		m.clampCursor()
		return m, nil

	case createdMsg:
		m.tracker.RecordCreate()
		m.resetFormFields()
		m.setFocus(fieldName)
		return m, fetchContacts(m.client)

	case updatedMsg:
		m.tracker.RecordUpdate()
		m.editingID = nil
		m.resetFormFields()
		m.closeForm()
		return m, tea.Batch(fetchContacts(m.client), m.showBanner())

	case deletedMsg:
		m.tracker.RecordDelete()
		return m, tea.Batch(fetchContacts(m.client), m.showBanner())

	case opFailedMsg:
		// Deliberately silent: log, report, keep the pre-operation state.
		m.logger.Error("operation failed", "op", msg.op, "error", msg.err)
		sberrors.Report(msg.op, msg.err)
		return m, nil

	case hideNotificationMsg:
		if msg.seq == m.notificationSeq {
			m.showNotification = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.formActive {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// showBanner arms the success banner and its auto-hide timer. Re-arming
// while visible resets the timer; the sequence number makes the earlier
// timer's expiry a no-op.
func (m *Model) showBanner() tea.Cmd {
	m.showNotification = true
	m.notificationSeq++
	return hideNotificationAfter(m.notificationWindow, m.notificationSeq)
}

// updateBrowse handles keys while the contact list has focus.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "a", "n":
		m.startCreate()
		return m, nil

	case "e", "enter":
		if c, ok := m.selectedContact(); ok {
			m.startEdit(c)
		}
		return m, nil

	case "d", "x":
		// Deletion is independent of the form: it never changes edit mode.
		if c, ok := m.selectedContact(); ok {
			return m, deleteContact(m.client, c.ID)
		}
		return m, nil

	case "s":
		m.list.CycleSort()
		m.clampCursor()
		return m, nil

	case "r":
		return m, fetchContacts(m.client)
	}

	return m, nil
}

// updateForm handles keys while a form field has focus.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.cancelForm()
		return m, nil

	case "ctrl+s":
		return m, m.submitForm()

	case "enter":
		if m.focus == fieldPhone {
			return m, m.submitForm()
		}
		m.setFocus(m.focus + 1)
		return m, nil

	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}
