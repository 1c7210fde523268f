package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/dashboard"
	"github.com/julianstephens/edusync/internal/logger"
	"github.com/julianstephens/edusync/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	logger.Info("Starting dashboard", "api_url", ctx.Client.BaseURL())

	sync := dashboard.New(ctx.Background(), ctx.Client)
	p := tea.NewProgram(tui.NewModel(sync), tea.WithAltScreen(), tea.WithContext(ctx.Background()))
	_, err := p.Run()
	return err
}
