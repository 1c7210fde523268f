package system

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/config"
	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/keyring"
	"github.com/julianstephens/edusync/internal/logger"
)

type InitCmd struct {
	APIURL  string `help:"API base URL to save." placeholder:"URL"`
	Keyring bool   `help:"Store the API URL in the OS keyring instead of the config file."`
	Debug   bool   `help:"Enable debug logging by default."`
	NoInput bool   `help:"Do not prompt; use flag values only."`
	Force   bool   `help:"Overwrite an existing config file."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Config.Path
	if path == "" {
		p, err := config.ExpandPath(constants.DefaultConfigPath)
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if c.APIURL == "" {
		c.APIURL = ctx.Config.APIURL
	}
	if c.APIURL == "" {
		c.APIURL = constants.DefaultAPIURL
	}

	if !c.NoInput && !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Debug("stdin is not a terminal, skipping prompts")
		c.NoInput = true
	}
	if !c.NoInput {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	cfg := config.Config{
		APIURL:         c.APIURL,
		Debug:          c.Debug,
		RequestTimeout: constants.DefaultRequestTimeout,
		Path:           path,
		Source:         config.SourceFile,
	}
	if ctx.Config.RequestTimeout > 0 {
		cfg.RequestTimeout = ctx.Config.RequestTimeout
	}

	if c.Keyring {
		cfg.Source = config.SourceKeyring
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if c.Keyring {
		if err := keyring.SetAPIURL(cfg.APIURL); err != nil {
			return err
		}
		ctx.Println("✓ API URL stored in OS keyring")
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	ctx.Printf("Initialized edusync config at: %s\n", path)
	return nil
}

func (c *InitCmd) prompt() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API URL").
				Description("Base URL of the EduSync API").
				Value(&c.APIURL).
				Validate(validateURL),
			huh.NewConfirm().
				Title("Store the URL in the OS keyring?").
				Value(&c.Keyring),
			huh.NewConfirm().
				Title("Enable debug logging?").
				Value(&c.Debug),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("init cancelled")
		}
		return err
	}
	return nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an http or https URL")
	}
	return nil
}
