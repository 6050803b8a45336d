package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/shared"
)

// CredentialStore persists the registered user collection under the
// "users" key as a single JSON array, rewritten whole on every mutation.
type CredentialStore struct {
	kv     *KV
	logger *log.Logger
}

// NewCredentialStore creates a CredentialStore over the given KV.
// A nil logger discards soft-failure warnings.
func NewCredentialStore(kv *KV, logger *log.Logger) *CredentialStore {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return &CredentialStore{kv: kv, logger: logger}
}

// Users returns the decoded credential collection. A missing or
// unparsable blob reads as empty so a corrupt record never locks the
// user out of the application.
func (s *CredentialStore) Users() ([]models.User, error) {
	blob, err := s.kv.Get(KeyUsers)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	var users []models.User
	if err := json.Unmarshal(blob, &users); err != nil {
		s.logger.Warn("malformed users blob, treating as empty", "error", err)
		return nil, nil
	}

	valid := users[:0]
	for _, u := range users {
		if err := u.Validate(); err != nil {
			s.logger.Warn("dropping malformed credential record", "error", err)
			continue
		}
		valid = append(valid, u)
	}

	return valid, nil
}

// Register appends a new credential record. Fails with
// [shared.ErrDuplicateUser] if a record with the same email exists;
// the stored collection is unchanged on failure. Email comparison is
// exact (case-sensitive).
func (s *CredentialStore) Register(email, password string) error {
	users, err := s.Users()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email {
			return fmt.Errorf("%w: %s", shared.ErrDuplicateUser, email)
		}
	}

	users = append(users, models.User{Email: email, Password: password})

	blob, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize users: %w", err)
	}

	return s.kv.Set(KeyUsers, blob)
}

// Authenticate scans for an exact (email, password) pair. Read-only:
// repeated calls with the same pair always yield the same result.
// Returns [shared.ErrInvalidCredentials] when no record matches.
func (s *CredentialStore) Authenticate(email, password string) error {
	users, err := s.Users()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			return nil
		}
	}

	return shared.ErrInvalidCredentials
}
