package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellawright/folio/internal/content"
	"github.com/ellawright/folio/internal/ui"
)

type editAction int

const (
	editActionNone editAction = iota
	editActionClose
	editActionLock
)

type editMode int

const (
	modeBrowse editMode = iota
	modeInput
	modeUpload
)

type cvRef struct {
	section, item int
}

// editRow is one editable line of the edit surface. value/set close over the
// staged structs; rows are rebuilt after any structural change so closures
// never outlive the slice elements they point into.
type editRow struct {
	section string // heading printed above this row, when it opens a section
	label   string
	value   func() string
	set     func(string)
	workID  string // non-empty on artwork rows: delete target
	cv      *cvRef // non-nil on CV item rows: delete target
	isImage bool   // upload applies
}

// editModel stages full copies of all three domains. Nothing reaches the
// store until an explicit save-all; leaving the editor discards the staging.
type editModel struct {
	store *content.Store

	site  content.SiteInfo
	works []content.Artwork
	about content.AboutContent

	rows   []editRow
	cursor int
	mode   editMode
	ti     textinput.Model
	status string
}

func newEditModel(store *content.Store) *editModel {
	e := &editModel{
		store: store,
		site:  store.Site(),
		works: store.Artworks(),
		about: store.About(),
	}
	e.ti = textinput.New()
	e.ti.Prompt = "> "
	e.ti.CharLimit = 500
	e.rebuild()
	return e
}

func (e *editModel) rebuild() {
	rows := []editRow{
		{section: "Site", label: "Artist name",
			value: func() string { return e.site.Name },
			set:   func(v string) { e.site.Name = v }},
		{label: "Email",
			value: func() string { return e.site.Email },
			set:   func(v string) { e.site.Email = v }},
		{label: "Instagram handle",
			value: func() string { return e.site.Instagram.Handle },
			set:   func(v string) { e.site.Instagram.Handle = v }},
		{label: "Instagram URL",
			value: func() string { return e.site.Instagram.URL },
			set:   func(v string) { e.site.Instagram.URL = v }},
		{label: "Page title",
			value: func() string { return e.site.Metadata.Title },
			set:   func(v string) { e.site.Metadata.Title = v }},
		{label: "Description",
			value: func() string { return e.site.Metadata.Description },
			set:   func(v string) { e.site.Metadata.Description = v }},
	}

	for i := range e.works {
		w := &e.works[i]
		heading := w.Title
		if heading == "" {
			heading = "Untitled"
		}
		rows = append(rows,
			editRow{section: "Artwork · " + heading, label: "Title", workID: w.ID,
				value: func() string { return w.Title },
				set:   func(v string) { w.Title = v }},
			editRow{label: "Year", workID: w.ID,
				value: func() string { return w.Year },
				set:   func(v string) { w.Year = v }},
			editRow{label: "Medium", workID: w.ID,
				value: func() string { return w.Medium },
				set:   func(v string) { w.Medium = v }},
			editRow{label: "Dimensions", workID: w.ID,
				value: func() string { return w.Dimensions },
				set:   func(v string) { w.Dimensions = v }},
			editRow{label: "Image", workID: w.ID, isImage: true,
				value: func() string { return w.ImageURL },
				set:   func(v string) { w.ImageURL = v }},
		)
	}

	rows = append(rows, editRow{section: "About", label: "Portrait", isImage: true,
		value: func() string { return e.about.PortraitURL },
		set:   func(v string) { e.about.PortraitURL = v }})
	for i := range e.about.BioParagraphs {
		i := i
		rows = append(rows, editRow{label: "Bio ¶" + strconv.Itoa(i+1),
			value: func() string { return e.about.BioParagraphs[i] },
			set:   func(v string) { e.about.BioParagraphs[i] = v }})
	}
	for i := range e.about.StatementParagraphs {
		i := i
		rows = append(rows, editRow{label: "Statement ¶" + strconv.Itoa(i+1),
			value: func() string { return e.about.StatementParagraphs[i] },
			set:   func(v string) { e.about.StatementParagraphs[i] = v }})
	}
	for si := range e.about.CVSections {
		si := si
		sec := &e.about.CVSections[si]
		rows = append(rows, editRow{section: "CV · " + sec.Title, label: "Section title",
			value: func() string { return sec.Title },
			set:   func(v string) { sec.Title = v }})
		for ii := range sec.Items {
			ii := ii
			rows = append(rows, editRow{label: "Item " + strconv.Itoa(ii+1),
				cv:    &cvRef{section: si, item: ii},
				value: func() string { return sec.Items[ii] },
				set:   func(v string) { sec.Items[ii] = v }})
		}
	}

	e.rows = rows
	if e.cursor >= len(rows) {
		e.cursor = len(rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *editModel) update(msg tea.Msg) (editAction, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if e.mode != modeBrowse {
		if isKey {
			switch keyMsg.String() {
			case "enter":
				e.commitInput()
				return editActionNone, nil
			case "esc":
				e.mode = modeBrowse
				e.ti.Blur()
				return editActionNone, nil
			}
		}
		var cmd tea.Cmd
		e.ti, cmd = e.ti.Update(msg)
		return editActionNone, cmd
	}

	if !isKey {
		return editActionNone, nil
	}
	e.status = ""
	switch keyMsg.String() {
	case "esc":
		return editActionClose, nil
	case "ctrl+c":
		return editActionNone, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.rows)-1 {
			e.cursor++
		}
	case "enter":
		row := e.rows[e.cursor]
		e.mode = modeInput
		e.ti.Placeholder = row.label
		e.ti.SetValue(row.value())
		e.ti.CursorEnd()
		e.ti.Focus()
	case "a":
		e.addArtwork()
	case "d":
		e.deleteAtCursor()
	case "n":
		e.addCVItem()
	case "u":
		if e.rows[e.cursor].isImage {
			e.mode = modeUpload
			e.ti.Placeholder = "Path to image file..."
			e.ti.SetValue("")
			e.ti.Focus()
		}
	case "s":
		e.saveAll()
	case "L":
		return editActionLock, nil
	}
	return editActionNone, nil
}

func (e *editModel) commitInput() {
	row := e.rows[e.cursor]
	switch e.mode {
	case modeInput:
		row.set(e.ti.Value())
		// a retitled artwork or CV section renames its heading
		e.rebuild()
	case modeUpload:
		// invalid uploads are a silent no-op; the field keeps its value
		if url, err := content.ImageDataURL(strings.TrimSpace(e.ti.Value())); err == nil {
			row.set(url)
			e.status = "image attached"
		}
	}
	e.mode = modeBrowse
	e.ti.Blur()
	e.ti.SetValue("")
}

func (e *editModel) addArtwork() {
	e.works = append(e.works, content.Artwork{
		ID:    content.MintArtworkID(e.works),
		Title: "New work",
		Year:  strconv.Itoa(time.Now().Year()),
	})
	e.rebuild()
	e.status = "artwork added"
}

func (e *editModel) deleteAtCursor() {
	row := e.rows[e.cursor]
	switch {
	case row.workID != "":
		kept := e.works[:0]
		for _, w := range e.works {
			if w.ID != row.workID {
				kept = append(kept, w)
			}
		}
		e.works = kept
		e.status = "artwork removed"
	case row.cv != nil:
		items := e.about.CVSections[row.cv.section].Items
		e.about.CVSections[row.cv.section].Items =
			append(items[:row.cv.item], items[row.cv.item+1:]...)
		e.status = "item removed"
	default:
		return
	}
	e.rebuild()
}

// addCVItem appends an empty item to the CV section under the cursor and
// opens it for editing.
func (e *editModel) addCVItem() {
	si := e.cvSectionAtCursor()
	if si < 0 {
		return
	}
	e.about.CVSections[si].Items = append(e.about.CVSections[si].Items, "")
	e.rebuild()
	for i, row := range e.rows {
		if row.cv != nil && row.cv.section == si && row.cv.item == len(e.about.CVSections[si].Items)-1 {
			e.cursor = i
			break
		}
	}
	e.mode = modeInput
	e.ti.Placeholder = "New item"
	e.ti.SetValue("")
	e.ti.Focus()
}

func (e *editModel) cvSectionAtCursor() int {
	// walk back to the nearest CV row or section heading
	for i := e.cursor; i >= 0; i-- {
		row := e.rows[i]
		if row.cv != nil {
			return row.cv.section
		}
		if strings.HasPrefix(row.section, "CV · ") {
			// section title rows carry no cv ref; recover the index by heading order
			n := 0
			for j := 0; j <= i; j++ {
				if strings.HasPrefix(e.rows[j].section, "CV · ") {
					n++
				}
			}
			return n - 1
		}
	}
	return -1
}

// saveAll commits the staged domains through the store, one save per domain,
// in sequence and without any cross-domain atomicity.
func (e *editModel) saveAll() {
	e.store.SaveSite(e.site)
	e.store.SaveArtworks(e.works)
	e.store.SaveAbout(e.about)
	e.status = "saved"
}

// truncate shortens v to max runes, never splitting a multi-byte rune.
func truncate(v string, max int) string {
	r := []rune(v)
	if len(r) <= max {
		return v
	}
	return string(r[:max]) + "…"
}

func (e *editModel) view(w, h int) string {
	var b strings.Builder
	b.WriteString(ui.Heading.Render("Edit site") + "   " +
		ui.Muted.Render("changes stay local until you save") + "\n\n")

	visible := h - 12
	if visible < 4 {
		visible = 4
	}
	start := 0
	if e.cursor >= visible {
		start = e.cursor - visible + 1
	}
	end := start + visible
	if end > len(e.rows) {
		end = len(e.rows)
	}

	for i := start; i < end; i++ {
		row := e.rows[i]
		if row.section != "" {
			b.WriteString(ui.Accent.Render(row.section) + "\n")
		}
		val := row.value()
		if strings.HasPrefix(val, "data:") {
			val = "(uploaded image)"
		}
		if w > 34 {
			val = truncate(val, w-30)
		}
		prefix := "  "
		if i == e.cursor {
			prefix = ui.Selected.Render("> ")
		}
		b.WriteString(prefix + ui.Muted.Render(row.label+": ") + val + "\n")
	}

	if e.mode != modeBrowse {
		title := "Edit " + e.rows[e.cursor].label
		if e.mode == modeUpload {
			title = "Upload image"
		}
		b.WriteString("\n" + title + "\n" + e.ti.View() + "\n")
	} else {
		b.WriteString("\n")
		if e.status != "" {
			b.WriteString(ui.Success.Render("✔ "+e.status) + "\n")
		}
		b.WriteString(ui.Help.Render("enter edit · a add work · d delete · n add cv item · u upload · s save all · L lock · esc back"))
	}
	return b.String()
}
