package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/edusync/internal/constants"
)

var (
	// ErrNotFound is returned when no API URL is stored in the keyring
	ErrNotFound = errors.New("API URL not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIURL retrieves the API base URL from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func GetAPIURL() (string, error) {
	apiURL, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return apiURL, nil
}

// SetAPIURL stores the API base URL in the OS keyring. Use this for URLs
// that carry credentials for a proxy in front of the API.
func SetAPIURL(apiURL string) error {
	if apiURL == "" {
		return errors.New("API URL cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, apiURL); err != nil {
		return fmt.Errorf("failed to store API URL in keyring: %w", err)
	}
	return nil
}

// DeleteAPIURL removes the API base URL from the OS keyring.
func DeleteAPIURL() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API URL from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
