package stats

import (
	"errors"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/dashboard"
	"github.com/julianstephens/edusync/internal/tui/components/records"
	statsview "github.com/julianstephens/edusync/internal/tui/components/stats"
)

var errStudents = errors.New(dashboard.MsgStudentsLoadFailed + "; see the log for details")

type StatsCmd struct {
	Recent int `short:"n" help:"Number of recent records to show." default:"10"`
}

// Run loads the same state the dashboard starts with and prints it once
func (c *StatsCmd) Run(ctx *cli.Context) error {
	sync := dashboard.New(ctx.Background(), ctx.Client)
	sync.Settle(sync.LoadInitialState())

	st := sync.State()
	if st.Message == dashboard.MsgStudentsLoadFailed {
		return errStudents
	}

	ctx.Println(statsview.View(st.Stats))

	n := c.Recent
	if n <= 0 {
		n = constants.RecentAttendanceLimit
	}
	rm := records.New()
	rm.SetRecords(st.RecentAttendance(n), st.StudentName)
	ctx.Println(rm.View())
	return nil
}
