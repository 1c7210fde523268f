package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/keyring"
	"github.com/julianstephens/edusync/internal/logger"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false

	// Check 1: configuration
	if err := ctx.Config.Validate(); err != nil {
		ctx.Printf("❌ Configuration: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Configuration: OK (api_url from %s)\n", ctx.Config.Source)
	}

	// Check 2: API reachable
	start := time.Now()
	info, err := ctx.Client.Info(ctx.Background())
	if err != nil {
		ctx.Printf("❌ API reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ API reachable: OK (%s %s, %s)\n", info.Message, info.Version, time.Since(start).Round(time.Millisecond))
	}

	// Check 3: keyring (warning only)
	if keyring.IsAvailable() {
		ctx.Printf("✓ OS keyring: OK\n")
	} else {
		ctx.Printf("⚠ OS keyring: WARNING\n")
		ctx.Printf("   Keyring is not available; store the API URL in the config file instead\n")
	}

	ctx.Printf("  Log file: %s\n", logger.Config{ConfigDir: ctx.Config.ConfigDir}.Path())

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}
