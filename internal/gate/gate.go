// Package gate holds the edit-mode unlock mechanism.
//
// This is convenience obscurity, not access control: the secret triple and
// the flag both live on the owner's machine in plain sight. It keeps casual
// visitors out of the editor and nothing more.
package gate

import (
	"strings"

	"github.com/ellawright/folio/internal/store/kvstore"
)

const unlockKey = "ewa_admin_unlocked"

// Secret is the contact-form triple that unlocks the editor. All three
// fields must match, case-insensitively, after trimming whitespace.
// The email only has to look like a real address so the form accepts it.
type Secret struct {
	Name    string
	Email   string
	Message string
}

// DefaultSecret is the out-of-the-box triple. Owners change it in config to
// something only they know.
func DefaultSecret() Secret {
	return Secret{Name: "edit", Email: "edit@edit.com", Message: "edit"}
}

// Matches reports whether a submitted triple unlocks the editor.
func (s Secret) Matches(name, email, message string) bool {
	return fold(name) == fold(s.Name) &&
		fold(email) == fold(s.Email) &&
		fold(message) == fold(s.Message)
}

func fold(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Gate persists the unlock flag. Fresh contexts start locked; only a correct
// secret submission unlocks, and an explicit lock clears the flag.
type Gate struct {
	kv     *kvstore.Store
	secret Secret
}

func New(kv *kvstore.Store, secret Secret) *Gate {
	return &Gate{kv: kv, secret: secret}
}

// Secret returns the configured triple.
func (g *Gate) Secret() Secret { return g.secret }

// TryUnlock checks a contact submission against the secret and, on a match,
// persists the unlock flag. Returns whether the gate is now unlocked by
// this submission.
func (g *Gate) TryUnlock(name, email, message string) bool {
	if !g.secret.Matches(name, email, message) {
		return false
	}
	g.Unlock()
	return true
}

// Unlock sets the persisted flag.
func (g *Gate) Unlock() {
	kvstore.Write(g.kv, unlockKey, true)
}

// Lock clears the persisted flag.
func (g *Gate) Lock() {
	g.kv.Delete(unlockKey)
}

// Unlocked reads the persisted flag. Absence or a corrupt payload reads
// as locked.
func (g *Gate) Unlocked() bool {
	v, ok := kvstore.Read[bool](g.kv, unlockKey)
	return ok && v
}
