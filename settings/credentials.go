// Package settings stores the user's translation-service credential in
// the XDG data directory:
//
//	$XDG_DATA_HOME/autoi18n/auth.json  (default: ~/.local/share/autoi18n/)
//
// File permissions are 0600 (owner read/write only).
//
// Lookup order for the API key:
//  1. --api-key flag (highest priority)
//  2. AUTOI18N_API_KEY environment variable
//  3. OPENAI_API_KEY environment variable
//  4. This credential store
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dataDirName = "autoi18n"
	fileName    = "auth.json"
)

// Credentials is the on-disk auth.json shape.
type Credentials struct {
	// APIKey is the translation-service bearer credential.
	APIKey string `json:"apiKey,omitempty"`
}

// Path returns the auth.json location, honoring $XDG_DATA_HOME.
func Path() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, dataDirName, fileName), nil
}

// Load reads the stored credentials. A missing file yields the zero
// Credentials.
func Load() (*Credentials, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Credentials{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &creds, nil
}

// Save writes the credentials with owner-only permissions.
func Save(creds *Credentials) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing credentials: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ResolveAPIKey applies the documented lookup order. The empty string
// means no credential is available anywhere.
func ResolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if key := os.Getenv("AUTOI18N_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	if creds, err := Load(); err == nil && creds.APIKey != "" {
		return creds.APIKey
	}
	return ""
}
