package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/config"
	"github.com/julianstephens/edusync/internal/keyring"
)

// KeyringSetCmd stores the API URL in the OS keyring
type KeyringSetCmd struct {
	URL string `arg:"" help:"API base URL to store in keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := validateURL(cmd.URL); err != nil {
		return fmt.Errorf("invalid API URL: %w", err)
	}

	if config.HasEmbeddedCredentials(cmd.URL) {
		// The keyring is the one place a URL with credentials may live
		ctx.Println("⚠️  Warning: API URL contains embedded credentials.")
		ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetAPIURL(cmd.URL); err != nil {
		return fmt.Errorf("failed to store API URL in keyring: %w", err)
	}

	ctx.Println("✓ API URL stored successfully in OS keyring")
	ctx.Println("  It is used when no flag, environment variable or config file sets one")
	return nil
}

// KeyringGetCmd prints the API URL stored in the OS keyring
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	apiURL, err := keyring.GetAPIURL()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API URL found in keyring. Use 'edusync keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve API URL from keyring: %w", err)
	}

	ctx.Println("API URL retrieved from keyring:")
	ctx.Println(maskPassword(apiURL))
	return nil
}

// KeyringDeleteCmd removes the API URL from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIURL(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API URL found in keyring")
		}
		return fmt.Errorf("failed to delete API URL from keyring: %w", err)
	}

	ctx.Println("✓ API URL deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}

	ctx.Println("✓ OS keyring is available")
	if _, err := keyring.GetAPIURL(); err == nil {
		ctx.Println("✓ API URL is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		ctx.Println("ℹ No API URL stored in keyring")
	}
	return nil
}

// maskPassword hides the password part of a URL's user info
func maskPassword(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}
	if _, ok := u.User.Password(); !ok {
		return rawURL
	}
	u.User = url.User(u.User.Username())
	return strings.Replace(u.String(), "@", ":****@", 1)
}
