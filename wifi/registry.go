package wifi

import "errors"

// Credential is one known network.  Credentials are identified by their
// position in the Registry, not by value.
type Credential struct {
	SSID       string
	Passphrase string
}

var ErrEmptyRegistry = errors.New("no known WiFi networks")

// Registry is the ordered list of known networks plus a cursor selecting the
// current one.  The cursor is always a valid index when the registry is not
// empty.
type Registry struct {
	aps    []Credential
	cursor int
}

func NewRegistry(aps []Credential) *Registry {
	r := &Registry{aps: make([]Credential, 0, len(aps))}
	for _, ap := range aps {
		// Empty slots in the firmware config are unused entries
		if ap.SSID == "" {
			continue
		}
		r.aps = append(r.aps, ap)
	}
	return r
}

func (r *Registry) Len() int   { return len(r.aps) }
func (r *Registry) Index() int { return r.cursor }

// Current returns the credential under the cursor
func (r *Registry) Current() (Credential, error) {
	if len(r.aps) == 0 {
		return Credential{}, ErrEmptyRegistry
	}
	return r.aps[r.cursor], nil
}

// Advance moves the cursor to the next credential, wrapping to the first
// after the last.  Advance returns true when the move wrapped.
func (r *Registry) Advance() (wrapped bool) {
	if len(r.aps) == 0 {
		return false
	}
	r.cursor++
	if r.cursor >= len(r.aps) {
		r.cursor = 0
		return true
	}
	return false
}
