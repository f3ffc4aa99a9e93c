package tui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/content"
	"github.com/ellawright/folio/internal/gate"
	"github.com/ellawright/folio/internal/store/kvstore"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	kv := kvstore.Open(t.TempDir(), zap.NewNop())
	store := content.NewStore(kv, zap.NewNop())
	store.Hydrate()
	return New(store, gate.New(kv, gate.DefaultSecret()))
}

func keyPress(m tea.Model, s string) tea.Model {
	var msg tea.Msg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	out, _ := m.Update(msg)
	return out
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEditGuardLockedRedirects(t *testing.T) {
	m := newTestModel(t)

	out := keyPress(m, "e").(Model)
	assert.Equal(t, viewGallery, out.view)
	assert.Nil(t, out.edit)
}

func TestEditOpensWhenUnlocked(t *testing.T) {
	m := newTestModel(t)
	m.gate.Unlock()

	out := keyPress(m, "e").(Model)
	assert.Equal(t, viewEdit, out.view)
	require.NotNil(t, out.edit)
	assert.Len(t, out.edit.works, 6)
}

func TestSecretContactSubmissionUnlocks(t *testing.T) {
	m := newTestModel(t)
	var cur tea.Model = keyPress(m, "c")
	require.Equal(t, viewContact, cur.(Model).view)

	cur = typeText(cur, " EDIT ")
	cur = keyPress(cur, "tab")
	cur = typeText(cur, "Edit@Edit.com")
	cur = keyPress(cur, "tab")
	cur = typeText(cur, "edit")
	cur = keyPress(cur, "enter")

	out := cur.(Model)
	assert.Equal(t, viewEdit, out.view)
	assert.True(t, out.gate.Unlocked())
}

func TestOrdinaryContactSubmissionPretendsToSend(t *testing.T) {
	m := newTestModel(t)
	var cur tea.Model = keyPress(m, "c")

	cur = typeText(cur, "Alice")
	cur = keyPress(cur, "tab")
	cur = typeText(cur, "alice@example.com")
	cur = keyPress(cur, "tab")
	cur = typeText(cur, "I love Veil")
	cur = keyPress(cur, "enter")

	out := cur.(Model)
	assert.Equal(t, viewContact, out.view)
	assert.Equal(t, statusSending, out.contact.status)
	assert.False(t, out.gate.Unlocked())

	// the delayed confirmation clears the form
	done, _ := out.Update(sentMsg{})
	fin := done.(Model)
	assert.Equal(t, statusSent, fin.contact.status)
	name, email, message := fin.contact.values()
	assert.Empty(t, name+email+message)
}

func TestLockFromEditorReturnsToGallery(t *testing.T) {
	m := newTestModel(t)
	m.gate.Unlock()
	cur := keyPress(m, "e")

	out := keyPress(cur, "L").(Model)
	assert.Equal(t, viewGallery, out.view)
	assert.Nil(t, out.edit)
	assert.False(t, out.gate.Unlocked())

	// a later mount of the editor bounces straight back
	again := keyPress(out, "e").(Model)
	assert.Equal(t, viewGallery, again.view)
	assert.Nil(t, again.edit)
}

func TestEditDeleteArtworkAndSave(t *testing.T) {
	m := newTestModel(t)
	m.gate.Unlock()
	cur := keyPress(m, "e").(Model)
	require.NotNil(t, cur.edit)

	// move the cursor onto the first artwork row and delete
	for i, row := range cur.edit.rows {
		if row.workID == "1" {
			cur.edit.cursor = i
			break
		}
	}
	cur.edit.deleteAtCursor()
	cur.edit.saveAll()

	works := cur.store.Artworks()
	assert.Len(t, works, 5)
	for _, w := range works {
		assert.NotEqual(t, "1", w.ID)
	}
}

func TestSubmitWhileSendingIsIgnored(t *testing.T) {
	m := newTestModel(t)
	var cur tea.Model = keyPress(m, "c")

	cur = typeText(cur, "Alice")
	cur = keyPress(cur, "tab")
	cur = typeText(cur, "alice@example.com")
	cur = keyPress(cur, "tab")
	cur = typeText(cur, "Hello")

	first, cmd := cur.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "first submit schedules the confirmation")
	require.Equal(t, statusSending, first.(Model).contact.status)

	// mashing enter mid-send must not queue a second confirmation
	second, cmd := first.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, statusSending, second.(Model).contact.status)
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "48 × …", truncate("48 × 60 in", 5))
	assert.Equal(t, "48 × 60 in", truncate("48 × 60 in", 10))
	assert.True(t, utf8.ValidString(truncate("× × × ×", 4)))
}

func TestHydratedMsgSetsWindowTitle(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(hydratedMsg{title: "Ella Wright | Fine Art"})
	assert.NotNil(t, cmd)

	_, cmd = m.Update(hydratedMsg{})
	assert.Nil(t, cmd, "empty title leaves the terminal title alone")
}
