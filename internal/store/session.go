package store

// Session holds the single active authenticated user identifier,
// persisted raw under the "loggedInUser" key. There is one global
// session per client: no expiry, no token, no multi-session support.
type Session struct {
	kv *KV
}

// NewSession creates a Session over the given KV.
func NewSession(kv *KV) *Session {
	return &Session{kv: kv}
}

// Restore reads the persisted user identifier, returning "" when no
// session is established.
func (s *Session) Restore() (string, error) {
	blob, err := s.kv.Get(KeySession)
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

// Establish persists the identifier for subsequent commands. Playlist
// operations use it to namespace their storage key.
func (s *Session) Establish(email string) error {
	return s.kv.Set(KeySession, []byte(email))
}

// Clear removes the persisted identifier. The user's playlist
// collection is left intact.
func (s *Session) Clear() error {
	return s.kv.Delete(KeySession)
}
