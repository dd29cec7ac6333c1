package tui

import (
	"github.com/Iron-Ham/sheetbook/internal/contact"
	sberrors "github.com/Iron-Ham/sheetbook/internal/errors"
	tea "github.com/charmbracelet/bubbletea"
)

// The form controller is a two-state machine: create mode (editingID nil)
// and edit mode (editingID set). Edit mode is entered only by selecting a
// row; it is left only by a successful update or an explicit cancel.

// startEdit populates the form from the given contact and switches to edit
// mode. The id is captured here, so later submits address this contact even
// if the list is re-sorted or re-fetched underneath.
func (m *Model) startEdit(c contact.Contact) {
	id := c.ID
	m.editingID = &id
	m.inputs[fieldName].SetValue(c.FullName)
	m.inputs[fieldEmail].SetValue(c.Email)
	m.inputs[fieldPhone].SetValue(c.Phone)
	m.openForm()
}

// startCreate clears the form and switches to create mode.
func (m *Model) startCreate() {
	m.editingID = nil
	m.resetFormFields()
	m.openForm()
}

// openForm moves focus into the first form field.
func (m *Model) openForm() {
	m.formActive = true
	m.setFocus(fieldName)
}

// closeForm returns focus to the contact list without changing mode.
func (m *Model) closeForm() {
	m.formActive = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// cancelForm abandons the current entry and reverts to create mode.
func (m *Model) cancelForm() {
	m.editingID = nil
	m.resetFormFields()
	m.closeForm()
}

// resetFormFields clears all field values.
func (m *Model) resetFormFields() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}

// setFocus focuses the field at index i and blurs the rest.
func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// editing reports whether the form is in edit mode.
func (m Model) editing() bool {
	return m.editingID != nil
}

// submitForm validates the form and issues the create or update call.
// A bad phone number blocks the submit before any network traffic: the
// failure is logged, the form keeps its values, and the mode is unchanged.
func (m *Model) submitForm() tea.Cmd {
	cleaned := contact.CleanPhone(m.inputs[fieldPhone].Value())
	if err := contact.ValidatePhone(cleaned); err != nil {
		m.logger.Error("phone validation failed", "error", err)
		sberrors.Report("validate phone", err)
		return nil
	}

	record := contact.Contact{
		FullName: m.inputs[fieldName].Value(),
		Email:    m.inputs[fieldEmail].Value(),
		Phone:    cleaned,
	}

	if m.editing() {
		record.ID = *m.editingID
		return updateContact(m.client, *m.editingID, record)
	}

	// The store does not assign ids; derive the next one from the mirror
	// in fetched order.
	record.ID = contact.NextID(m.list.Natural())
	return createContact(m.client, record)
}
