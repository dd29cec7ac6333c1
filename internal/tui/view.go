package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/sheetbook/internal/contact"
	"github.com/Iron-Ham/sheetbook/internal/tui/styles"
	"github.com/Iron-Ham/sheetbook/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Column widths for the contact table. Name width comes from config.
const (
	phoneColWidth = 14
	emailColWidth = 28
)

// View renders the whole screen: header, stats, table, form, banner, help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("sheetbook"))
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n")

	if m.showNotification {
		b.WriteString(styles.Banner.Render("✓ Saved"))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

// renderStats shows the session counters and the current sort mode.
func (m Model) renderStats() string {
	snap := m.tracker.Snapshot()
	counters := fmt.Sprintf(
		"Total %d • Original %d • New %d • Modified %d • Removed %d",
		snap.Total, snap.Original, snap.New, snap.Modified, snap.Removed,
	)
	sort := styles.Primary.Render(fmt.Sprintf("[sort: %s]", m.list.Order()))
	return styles.Muted.Render(counters) + " " + sort
}

// renderTable projects the contact list into rows. Each row shows the raw
// name and email and the formatted phone; the selected row is highlighted.
func (m Model) renderTable() string {
	contacts := m.visibleContacts()
	if len(contacts) == 0 {
		return styles.Muted.Render("No contacts.")
	}

	var b strings.Builder
	b.WriteString(styles.TableHeader.Render(m.formatRow("Name", "Phone", "Email")))
	b.WriteString("\n")

	for i, c := range contacts {
		phone := ""
		if c.Phone != "" {
			phone = contact.FormatPhone(c.Phone)
		}
		row := m.formatRow(c.FullName, phone, c.Email)
		if i == m.cursor && !m.formActive {
			row = styles.RowSelected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// formatRow lays out one table row with fixed column widths.
func (m Model) formatRow(name, phone, email string) string {
	nameCell := lipgloss.NewStyle().Width(m.maxNameWidth).Render(util.TruncateANSI(name, m.maxNameWidth))
	phoneCell := lipgloss.NewStyle().Width(phoneColWidth).Render(util.TruncateANSI(phone, phoneColWidth))
	emailCell := lipgloss.NewStyle().Width(emailColWidth).Render(util.TruncateANSI(email, emailColWidth))
	return lipgloss.JoinHorizontal(lipgloss.Top, nameCell, phoneCell, emailCell)
}

// renderForm shows the contact form with mode-dependent labels.
func (m Model) renderForm() string {
	heading := "Add a Contact"
	submit := "Add Contact"
	if m.editing() {
		heading = "Edit Contact"
		submit = "Update Contact"
	}

	var b strings.Builder
	b.WriteString(styles.FormHeading.Render(heading))
	b.WriteString("\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.formActive {
		b.WriteString(styles.Secondary.Render("[ " + submit + " ]"))
	} else {
		b.WriteString(styles.Muted.Render("[ " + submit + " ]"))
	}

	return styles.FormBox.Render(b.String())
}

// renderHelp shows the key hints for the focused area.
func (m Model) renderHelp() string {
	if m.formActive {
		return styles.Help.Render("enter/tab: next field • ctrl+s: submit • esc: cancel")
	}
	return styles.Help.Render("j/k: move • a: add • e: edit • d: delete • s: sort • r: refresh • q: quit")
}
