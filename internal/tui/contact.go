package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellawright/folio/internal/ui"
)

// The "sending" state is a fixed pause, not a timeout on anything real:
// no message is ever transmitted.
const sendDelay = 800 * time.Millisecond

type contactStatus int

const (
	statusIdle contactStatus = iota
	statusSending
	statusSent
)

type sentMsg struct{}

// contactModel is the public contact form: three fields, a pretend send,
// and the hidden unlock path for the secret triple.
type contactModel struct {
	inputs [3]textinput.Model
	focus  int
	status contactStatus
}

func newContactModel() contactModel {
	var c contactModel
	labels := [3]string{"Your name", "you@example.com", "Your message"}
	for i := range c.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = labels[i]
		ti.CharLimit = 500
		c.inputs[i] = ti
	}
	c.inputs[0].Focus()
	return c
}

func (c contactModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (c contactModel) values() (name, email, message string) {
	return c.inputs[0].Value(), c.inputs[1].Value(), c.inputs[2].Value()
}

func (c *contactModel) clear() {
	for i := range c.inputs {
		c.inputs[i].SetValue("")
	}
	c.setFocus(0)
}

func (c *contactModel) setFocus(i int) {
	c.focus = i
	for j := range c.inputs {
		if j == i {
			c.inputs[j].Focus()
		} else {
			c.inputs[j].Blur()
		}
	}
}

// updateContact routes messages while the contact view is active. An unlock
// jumps straight to the edit surface; the form never "sends" in that case.
func (m Model) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sentMsg:
		m.contact.status = statusSent
		m.contact.clear()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.view = viewGallery
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			m.contact.setFocus((m.contact.focus + 1) % 3)
			return m, nil
		case "shift+tab", "up":
			m.contact.setFocus((m.contact.focus + 2) % 3)
			return m, nil
		case "enter":
			if m.contact.status == statusSending {
				return m, nil
			}
			if m.contact.focus < 2 {
				m.contact.setFocus(m.contact.focus + 1)
				return m, nil
			}
			return m.submitContact()
		}
	}

	if m.contact.status == statusSending {
		return m, nil
	}
	var cmd tea.Cmd
	m.contact.inputs[m.contact.focus], cmd = m.contact.inputs[m.contact.focus].Update(msg)
	if m.contact.status == statusSent {
		m.contact.status = statusIdle
	}
	return m, cmd
}

func (m Model) submitContact() (tea.Model, tea.Cmd) {
	name, email, message := m.contact.values()
	if name == "" || email == "" || message == "" {
		return m, nil
	}
	if m.gate.TryUnlock(name, email, message) {
		m.contact.clear()
		m.contact.status = statusIdle
		return m.enterEdit()
	}
	m.contact.status = statusSending
	return m, tea.Tick(sendDelay, func(time.Time) tea.Msg { return sentMsg{} })
}

func (c contactModel) view(w int, email, handle string) string {
	var b strings.Builder
	b.WriteString(ui.Heading.Render("Contact") + "\n\n")
	b.WriteString(ui.Muted.Render("For inquiries, commissions, or collaboration.") + "\n")
	b.WriteString(ui.Accent.Render(email) + "   " + ui.Accent.Render("@"+handle) + "\n\n")
	labels := [3]string{"Name", "Email", "Message"}
	for i, ti := range c.inputs {
		b.WriteString(ui.Muted.Render(labels[i]) + "\n")
		b.WriteString(ti.View() + "\n\n")
	}

	switch c.status {
	case statusSending:
		b.WriteString(ui.Muted.Render("Sending…") + "\n")
	case statusSent:
		b.WriteString(ui.Success.Render("Sent") + "  " +
			ui.Muted.Render("Thank you. I'll be in touch.") + "\n")
	default:
		b.WriteString("\n")
	}
	b.WriteString("\n" + ui.Help.Render("tab next field · enter send · esc back"))
	return b.String()
}
