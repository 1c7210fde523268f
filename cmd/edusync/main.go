package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/edusync/internal/api"
	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/cli/attendance"
	"github.com/julianstephens/edusync/internal/cli/stats"
	"github.com/julianstephens/edusync/internal/cli/students"
	"github.com/julianstephens/edusync/internal/cli/system"
	"github.com/julianstephens/edusync/internal/cli/tasks"
	"github.com/julianstephens/edusync/internal/config"
	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/errors"
	"github.com/julianstephens/edusync/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/edusync/config.yaml"`
	APIURL  string `name:"api-url" help:"EduSync API base URL. Overrides EDUSYNC_API_URL, the config file and the OS keyring."`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Init   system.InitCmd   `cmd:"" help:"Create the config file."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Stats  stats.StatsCmd   `cmd:"" help:"Show dashboard statistics and recent attendance."`

	Students struct {
		List students.ListCmd `cmd:"" help:"List all students." default:"1"`
		Show students.ShowCmd `cmd:"" help:"Show a student."`
		Add  students.AddCmd  `cmd:"" help:"Add a student."`
	} `cmd:"" help:"Manage students."`
	Attendance struct {
		List    attendance.ListCmd    `cmd:"" help:"List attendance records." default:"1"`
		Mark    attendance.MarkCmd    `cmd:"" help:"Mark a student present."`
		History attendance.HistoryCmd `cmd:"" help:"Show a student's attendance history."`
		Export  attendance.ExportCmd  `cmd:"" help:"Export attendance to an Excel workbook."`
	} `cmd:"" help:"Manage attendance."`
	Tasks struct {
		List      tasks.ListCmd      `cmd:"" help:"List tasks." default:"1"`
		Recommend tasks.RecommendCmd `cmd:"" help:"Show recommended tasks for a student."`
		Assign    tasks.AssignCmd    `cmd:"" help:"Assign a task to a student."`
	} `cmd:"" help:"Manage tasks."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the API URL in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the API URL stored in the OS keyring."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the API URL from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability." default:"1"`
	} `cmd:"" help:"Manage the API URL in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal dashboard for the EduSync attendance and task API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config, config.Overrides{APIURL: CLI.APIURL, Debug: CLI.Debug})
	if err != nil {
		// init exists to repair a broken config, so it runs anyway
		if ctx.Command() != "init" {
			errors.Fatal(err)
		}
		path, _ := config.ExpandPath(CLI.Config)
		cfg = config.Config{APIURL: constants.DefaultAPIURL, Path: path, ConfigDir: filepath.Dir(path)}
	}

	// The dashboard owns the terminal, so its logs only go to the file
	interactive := ctx.Command() == "tui" || ctx.Command() == "init"
	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: cfg.ConfigDir,
		Stderr:    !interactive,
	}); err != nil {
		errors.Fatal(err)
	}
	logger.Debug("Configuration loaded", "path", cfg.Path, "api_url_source", cfg.Source)

	client, err := api.New(cfg.APIURL, api.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		errors.Fatal(err)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx := &cli.Context{
		Ctx:    sigCtx,
		Client: client,
		Config: cfg,
		Out:    os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		stop()
		errors.Fatal(err)
	}
}
