package students

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/dashboard"
	"github.com/julianstephens/edusync/internal/models"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	students, err := ctx.Client.ListStudents(ctx.Background())
	if err != nil {
		return fmt.Errorf("failed to list students: %w", err)
	}
	if len(students) == 0 {
		ctx.Println("No students found.")
		return nil
	}

	rows := make([][]string, len(students))
	for i, s := range students {
		rows[i] = []string{strconv.Itoa(s.ID), s.Name, s.RollNumber, s.ClassName, cli.OrDash(s.Interest())}
	}
	ctx.Println(cli.Table([]string{"ID", "Name", "Roll", "Class", "Career Interest"}, rows))
	return nil
}

type ShowCmd struct {
	ID int `arg:"" help:"Student ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Client.GetStudent(ctx.Background(), c.ID)
	if err != nil {
		return fmt.Errorf("failed to get student %d: %w", c.ID, err)
	}

	// Days attended come from the same derived filter the dashboard uses
	records, err := ctx.Client.ListAttendance(ctx.Background())
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}
	days := len(dashboard.AttendanceHistoryFor(records, s.ID))

	ctx.Printf("ID:               %d\n", s.ID)
	ctx.Printf("Name:             %s\n", s.Name)
	ctx.Printf("Email:            %s\n", cli.OrDash(s.Email))
	ctx.Printf("Roll Number:      %s\n", s.RollNumber)
	ctx.Printf("Class:            %s\n", s.ClassName)
	ctx.Printf("Career Interest:  %s\n", cli.OrDash(s.Interest()))
	ctx.Printf("Total Attendance: %d days\n", days)
	return nil
}

type AddCmd struct {
	Name     string `arg:"" help:"Student name."`
	Email    string `short:"e" help:"Email address." required:""`
	Roll     string `short:"r" help:"Roll number." required:""`
	Class    string `short:"c" help:"Class name." required:""`
	Interest string `short:"i" help:"Career interest tag."`
}

var validate = validator.New()

func (c *AddCmd) request() models.NewStudent {
	req := models.NewStudent{
		Name:       c.Name,
		Email:      c.Email,
		RollNumber: c.Roll,
		ClassName:  c.Class,
	}
	if c.Interest != "" {
		interest := c.Interest
		req.CareerInterest = &interest
	}
	return req
}

func (c *AddCmd) Validate() error {
	if err := validate.Struct(c.request()); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid %s", verrs[0].Field())
		}
		return err
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s, err := ctx.Client.CreateStudent(ctx.Background(), c.request())
	if err != nil {
		return fmt.Errorf("failed to add student: %w", err)
	}
	ctx.Printf("Added student %s (ID: %d)\n", s.Name, s.ID)
	return nil
}
