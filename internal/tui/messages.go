package tui

import (
	"context"
	"time"

	"github.com/Iron-Ham/sheetbook/internal/contact"
	"github.com/Iron-Ham/sheetbook/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// contactsMsg carries the result of a successful list fetch.
type contactsMsg struct {
	contacts []contact.Contact
}

// createdMsg signals a confirmed create.
type createdMsg struct{}

// updatedMsg signals a confirmed update.
type updatedMsg struct{}

// deletedMsg signals a confirmed delete.
type deletedMsg struct{}

// opFailedMsg carries a failed operation. The failure is logged and
// swallowed: the UI stays on its pre-operation state.
type opFailedMsg struct {
	op  string
	err error
}

// hideNotificationMsg dismisses the success banner. seq guards against a
// stale timer hiding a banner that a later success re-armed.
type hideNotificationMsg struct {
	seq int
}

// Commands

// fetchContacts re-fetches the whole collection. Responses apply in arrival
// order; there is no request token, so a slow fetch can overwrite a newer
// one, exactly as the page this replaces behaved.
func fetchContacts(client store.Client) tea.Cmd {
	return func() tea.Msg {
		contacts, err := client.List(context.Background())
		if err != nil {
			return opFailedMsg{op: "list contacts", err: err}
		}
		return contactsMsg{contacts: contacts}
	}
}

func createContact(client store.Client, record contact.Contact) tea.Cmd {
	return func() tea.Msg {
		if err := client.Create(context.Background(), record); err != nil {
			return opFailedMsg{op: "create contact", err: err}
		}
		return createdMsg{}
	}
}

func updateContact(client store.Client, id string, record contact.Contact) tea.Cmd {
	return func() tea.Msg {
		if err := client.Update(context.Background(), id, record); err != nil {
			return opFailedMsg{op: "update contact", err: err}
		}
		return updatedMsg{}
	}
}

func deleteContact(client store.Client, id string) tea.Cmd {
	return func() tea.Msg {
		if err := client.Delete(context.Background(), id); err != nil {
			return opFailedMsg{op: "delete contact", err: err}
		}
		return deletedMsg{}
	}
}

// hideNotificationAfter arms the banner auto-hide timer.
func hideNotificationAfter(window time.Duration, seq int) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return hideNotificationMsg{seq: seq}
	})
}
