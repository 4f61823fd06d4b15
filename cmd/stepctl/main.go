package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/comitanigiacomo/kanso-steps/internal/app"
	"github.com/comitanigiacomo/kanso-steps/internal/config"
	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/core/services"
	"github.com/comitanigiacomo/kanso-steps/internal/logging"
)

func open(c *cli.Context) (*app.App, error) {
	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return nil, err
	}
	a, err := app.New(c.Context, cfg)
	if err != nil {
		return nil, err
	}
	if err := a.Dashboard.Init(c.Context, cfg.SeedDemoData); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func hashPassword(c *cli.Context) error {
	password := c.String("password")
	if password == "" {
		password = c.Args().First()
	}
	if password == "" {
		return cli.Exit("a password is required", 1)
	}
	hash, err := domain.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hash)
	return nil
}

func seed(c *cli.Context) error {
	a, err := open(c)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.Dashboard.Entries(c.Context)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		// SEED_DEMO_DATA=false still seeds when asked explicitly
		if err := a.Dashboard.Init(c.Context, true); err != nil {
			return err
		}
		if entries, err = a.Dashboard.Entries(c.Context); err != nil {
			return err
		}
	}
	fmt.Fprintf(c.App.Writer, "%d entries stored\n", len(entries))
	return nil
}

func record(c *cli.Context) error {
	a, err := open(c)
	if err != nil {
		return err
	}
	defer a.Close()

	date := time.Now().In(a.Dashboard.Location())
	if c.IsSet("date") {
		if date, err = domain.ParseDate(c.String("date"), a.Dashboard.Location()); err != nil {
			return err
		}
	}

	d, err := a.Dashboard.SubmitEntry(c.Context, services.SubmitEntryInput{
		Date:  date,
		Steps: c.String("steps"),
	})
	if err != nil {
		return err
	}
	printSummary(c, d)
	return nil
}

func summary(c *cli.Context) error {
	a, err := open(c)
	if err != nil {
		return err
	}
	defer a.Close()

	var d *domain.Dashboard
	if c.IsSet("window") {
		d, err = a.Dashboard.Preview(c.Context, c.String("window"))
	} else {
		d, err = a.Dashboard.Dashboard(c.Context)
	}
	if err != nil {
		return err
	}
	printSummary(c, d)
	return nil
}

func printSummary(c *cli.Context, d *domain.Dashboard) {
	w := c.App.Writer
	fmt.Fprintf(w, "window:          %s\n", d.WindowLabel)
	fmt.Fprintf(w, "days logged:     %d\n", d.Stats.DaysLogged)
	fmt.Fprintf(w, "total steps:     %d\n", d.Stats.TotalSteps)
	fmt.Fprintf(w, "average:         %d\n", d.Stats.Average)
	fmt.Fprintf(w, "best:            %d\n", d.Stats.Best)
	fmt.Fprintf(w, "today:           %d (%d%% of %d)\n", d.Stats.Today, d.Stats.GoalCompletion, d.DailyGoal)
	fmt.Fprintf(w, "streak:          %d (longest %d)\n", d.Stats.Streak, d.Stats.LongestStreak)
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "stepctl",
		HelpName: "stepctl",
		Usage:    "Kanso Steps maintenance commands",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Value: ".env",
				Usage: "dotenv file read before the environment",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level",
				EnvVars: []string{"STEPCTL_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logrus.SetOutput(c.App.ErrWriter)
			logrus.SetLevel(logging.GetLevel(c.String("log-level")))
			return nil
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			logrus.Errorf("%s: %v", c.App.Name, err)
		},
		Commands: []*cli.Command{
			{
				Name:      "hash-password",
				Usage:     "print a bcrypt hash for OWNER_PASSWORD_HASH",
				ArgsUsage: "[password]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "plain password"},
				},
				Action: hashPassword,
			},
			{
				Name:   "seed",
				Usage:  "load the demo dataset into an empty store",
				Action: seed,
			},
			{
				Name:  "record",
				Usage: "record the step count for a day",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "day as YYYY-MM-DD, defaults to today"},
					&cli.StringFlag{Name: "steps", Aliases: []string{"s"}, Required: true, Usage: "step count"},
				},
				Action: record,
			},
			{
				Name:  "summary",
				Usage: "print the statistics for a time window",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "window", Aliases: []string{"w"}, Usage: "time window, defaults to the saved one"},
				},
				Action: summary,
			},
		},
	}
}

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
