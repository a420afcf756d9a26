package auth

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
)

const (
	// FileName is the credential file written to the working directory
	FileName = ".dropsite_auth"

	keyAuthToken = "auth_token"
)

// Store reads and persists the session credential at a fixed path
type Store struct {
	path string
}

// NewStore creates a new credential store backed by the file at the provided path
func NewStore(path string) *Store {
	return &Store{path}
}

// Save overwrites the stored credential with the provided token
func (s *Store) Save(token string) error {
	return ioutil.WriteFile(s.path, []byte(fmt.Sprintf("%s=%s\n", keyAuthToken, token)), 0600)
}

// Load reads the stored credential back, failing with ErrMissingCredentials
// if the credential file is absent or malformed
func (s *Store) Load() (string, error) {
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrMissingCredentials
		}
		return "", err
	}

	line := strings.TrimSpace(string(data))
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 || parts[0] != keyAuthToken || parts[1] == "" {
		return "", ErrMissingCredentials
	}
	return parts[1], nil
}
