package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ellawright/folio/internal/content"
	"github.com/ellawright/folio/internal/gate"
	"github.com/ellawright/folio/internal/ui"
)

type view int

const (
	viewGallery view = iota
	viewAbout
	viewContact
	viewEdit
)

// workItem adapts an Artwork to bubbles/list.Item
type workItem struct {
	work content.Artwork
}

func (i workItem) Title() string       { return i.work.Title }
func (i workItem) Description() string { return "" }
func (i workItem) FilterValue() string { return i.work.Title }

// Custom delegate to control how items render (single line)
type workDelegate struct{}

func (d workDelegate) Height() int                               { return 1 }
func (d workDelegate) Spacing() int                              { return 0 }
func (d workDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d workDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(workItem)
	line := it.work.Title
	if it.work.Year != "" {
		line += ui.Muted.Render(", "+it.work.Year)
	}
	if it.work.Medium != "" {
		line += ui.Muted.Render("  ·  "+it.work.Medium)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Model is the root TUI model: gallery, about, contact, and the gated
// edit surface.
type Model struct {
	store *content.Store
	gate  *gate.Gate

	view    view
	list    list.Model
	contact contactModel
	edit    *editModel

	width, height int
}

type hydratedMsg struct {
	title string
}

// New builds the root model. The store's defaults are readable right away;
// persisted values arrive with the hydration command after the first frame.
func New(store *content.Store, g *gate.Gate) Model {
	l := list.New(nil, workDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding { return nil }

	m := Model{
		store:   store,
		gate:    g,
		list:    l,
		contact: newContactModel(),
	}
	m.refreshList()
	return m
}

// Run starts the TUI and blocks until it exits.
func Run(store *content.Store, g *gate.Gate) error {
	p := tea.NewProgram(New(store, g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return hydrateCmd(m.store)
}

// hydrateCmd defers the persisted-value overlay until after the first frame
// so the initial paint always shows the compiled-in defaults.
func hydrateCmd(s *content.Store) tea.Cmd {
	return func() tea.Msg {
		s.Hydrate()
		return hydratedMsg{title: s.Site().Metadata.Title}
	}
}

func (m *Model) refreshList() {
	works := m.store.Artworks()
	items := make([]list.Item, len(works))
	for i, w := range works {
		items[i] = workItem{work: w}
	}
	m.list.SetItems(items)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case hydratedMsg:
		m.refreshList()
		if msg.title != "" {
			// the terminal tab mirrors whatever title the owner saved
			return m, tea.SetWindowTitle(msg.title)
		}
		return m, nil
	}

	switch m.view {
	case viewContact:
		return m.updateContact(msg)
	case viewEdit:
		return m.updateEdit(msg)
	default:
		return m.updateBrowse(msg)
	}
}

// updateBrowse handles the gallery and about views.
func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "w", "esc":
			m.view = viewGallery
			return m, nil
		case "a":
			m.view = viewAbout
			return m, nil
		case "c":
			m.view = viewContact
			m.contact = newContactModel()
			return m, m.contact.focusCmd()
		case "e":
			return m.enterEdit()
		}
	}
	if m.view == viewGallery {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// enterEdit guards the edit surface: locked contexts bounce straight back to
// the gallery and the editor renders nothing.
func (m Model) enterEdit() (tea.Model, tea.Cmd) {
	if !m.gate.Unlocked() {
		m.view = viewGallery
		return m, nil
	}
	m.edit = newEditModel(m.store)
	m.view = viewEdit
	return m, nil
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		m.view = viewGallery
		return m, nil
	}
	action, cmd := m.edit.update(msg)
	switch action {
	case editActionClose:
		m.edit = nil
		m.view = viewGallery
		m.refreshList()
	case editActionLock:
		m.gate.Lock()
		m.edit = nil
		m.view = viewGallery
		m.refreshList()
	}
	return m, cmd
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	var body string
	switch m.view {
	case viewAbout:
		body = m.viewAbout(w)
	case viewContact:
		site := m.store.Site()
		body = m.contact.view(w, site.Email, site.Instagram.Handle)
	case viewEdit:
		if m.edit != nil {
			body = m.edit.view(w, h)
		}
	default:
		body = m.viewGallery(w, h)
	}

	header := m.viewHeader(w)
	return ui.Panel(header + "\n\n" + body)
}

func (m Model) viewHeader(w int) string {
	site := m.store.Site()
	tabs := []struct {
		label string
		v     view
	}{
		{"[w] work", viewGallery},
		{"[a] about", viewAbout},
		{"[c] contact", viewContact},
	}
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.v == m.view {
			parts = append(parts, ui.Accent.Render(t.label))
		} else {
			parts = append(parts, ui.Muted.Render(t.label))
		}
	}
	return ui.Title.Render(site.Name) + "   " + strings.Join(parts, "  ")
}

func (m Model) viewGallery(w, h int) string {
	m.list.SetSize(w-6, h-8)
	return m.list.View() + "\n" + ui.Help.Render("↑/↓ browse · q quit")
}

func (m Model) viewAbout(w int) string {
	about := m.store.About()
	wrap := lipgloss.NewStyle().Width(w - 6)

	var b strings.Builder
	b.WriteString(ui.Heading.Render("About") + "\n\n")
	for _, p := range about.BioParagraphs {
		b.WriteString(wrap.Render(p) + "\n\n")
	}
	b.WriteString(ui.Heading.Render("Statement") + "\n\n")
	for _, p := range about.StatementParagraphs {
		b.WriteString(wrap.Render(p) + "\n\n")
	}
	for _, sec := range about.CVSections {
		b.WriteString(ui.Heading.Render(sec.Title) + "\n")
		for _, item := range sec.Items {
			b.WriteString(wrap.Render("  · "+item) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(ui.Help.Render("esc back"))
	return b.String()
}
