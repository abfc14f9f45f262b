package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/mosley-golf-club/tourney-engine/app"
	leaderboardservice "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/application"
	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	leaderboarddto "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/dto"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
	"github.com/mosley-golf-club/tourney-engine/config"
	"github.com/mosley-golf-club/tourney-engine/internal/observability"
)

func main() {
	cliApp := &cli.App{
		Name:  "tourney-engine",
		Usage: "Stableford tournament scoring and leaderboards",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
		},
		Commands: []*cli.Command{
			recordCommand(),
			removeCommand(),
			importCommand(),
			standingsCommand(),
			exportCommand(),
			chartCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func withApp(c *cli.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := observability.WithCorrelationID(c.Context)

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer application.Close()

	return fn(ctx, application)
}

func recordCommand() *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: "record one gross score",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "player", Required: true},
			&cli.Int64Flag{Name: "course", Required: true},
			&cli.IntFlag{Name: "day", Required: true},
			&cli.IntFlag{Name: "hole", Required: true},
			&cli.IntFlag{Name: "gross", Required: true},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				result, err := a.ScoreService.RecordScore(ctx, scoredb.ScoreEntry{
					PlayerID:   c.Int64("player"),
					CourseID:   c.Int64("course"),
					DayNumber:  c.Int("day"),
					HoleNumber: c.Int("hole"),
					Gross:      c.Int("gross"),
				})
				if err != nil {
					return err
				}
				if result.IsFailure() {
					return fmt.Errorf("score rejected: %s", result.Failure.Reason)
				}
				fmt.Printf("Recorded %d for player %d, day %d, hole %d\n",
					result.Success.Gross, result.Success.PlayerID, result.Success.DayNumber, result.Success.HoleNumber)
				return nil
			})
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "delete a recorded score",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "player", Required: true},
			&cli.IntFlag{Name: "day", Required: true},
			&cli.IntFlag{Name: "hole", Required: true},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				result, err := a.ScoreService.RemoveScore(ctx, c.Int64("player"), c.Int("day"), c.Int("hole"))
				if err != nil {
					return err
				}
				if result.IsFailure() {
					return fmt.Errorf("remove rejected: %s", result.Failure.Reason)
				}
				fmt.Println("Score removed")
				return nil
			})
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import a day's scorecard workbook",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "day", Required: true},
			&cli.Int64Flag{Name: "course", Required: true},
			&cli.StringFlag{Name: "file", Required: true, Usage: "path to the XLSX scorecard"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				data, err := os.ReadFile(c.String("file"))
				if err != nil {
					return fmt.Errorf("failed to read scorecard: %w", err)
				}
				result, err := a.ScoreService.ImportScorecard(ctx, c.Int("day"), c.Int64("course"), data)
				if err != nil {
					return err
				}
				if result.IsFailure() {
					return fmt.Errorf("import rejected: %s", result.Failure.Reason)
				}
				fmt.Printf("Imported %d scores for day %d (%d rows skipped)\n",
					result.Success.ScoresImported, result.Success.DayNumber, result.Success.RowsSkipped)
				return nil
			})
		},
	}
}

func standingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "standings",
		Usage: "recompute and print every leaderboard",
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				if err := a.LeaderboardService.RefreshAll(ctx); err != nil {
					return err
				}

				for _, day := range a.LeaderboardService.DaysWithScores() {
					fmt.Printf("\nDay %d\n", day)
					printTable(leaderboarddto.DailyColumns(), a.LeaderboardService.DailyRows(day))
				}

				fmt.Printf("\n%s\n", contextTitle(leaderboarddomain.TournamentContext(a.Cfg.Tournament.Context)))
				printTable(leaderboarddto.TournamentColumns(), a.LeaderboardService.TournamentRows())

				if teams := a.LeaderboardService.TeamRows(); len(teams) > 0 {
					fmt.Printf("\nTeams\n")
					printTable(leaderboarddto.TeamColumns(), teams)
				}
				return nil
			})
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "recompute standings and write an XLSX workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "standings.xlsx"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				if err := a.LeaderboardService.RefreshAll(ctx); err != nil {
					return err
				}
				result, err := a.LeaderboardService.ExportWorkbook(ctx)
				if err != nil {
					return err
				}
				if result.IsFailure() {
					return fmt.Errorf("export rejected: %s", result.Failure.Reason)
				}
				out := c.String("out")
				if err := os.WriteFile(out, result.Success.Data, 0o644); err != nil {
					return fmt.Errorf("failed to write workbook: %w", err)
				}
				fmt.Printf("Wrote %s (%s)\n", out, strings.Join(result.Success.Sheets, ", "))
				return nil
			})
		},
	}
}

func chartCommand() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "recompute standings and render a PNG chart",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "standings.png"},
			&cli.BoolFlag{Name: "teams", Usage: "chart the team standings instead of the tournament"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				if err := a.LeaderboardService.RefreshAll(ctx); err != nil {
					return err
				}

				var png []byte
				var err error
				if c.Bool("teams") {
					png, err = leaderboardservice.GenerateTeamChart(a.LeaderboardService.TeamRows(), leaderboardservice.DefaultChartPalette())
				} else {
					png, err = leaderboardservice.GenerateTournamentChart(a.LeaderboardService.TournamentRows(), leaderboardservice.DefaultChartPalette())
				}
				if err != nil {
					return err
				}

				out := c.String("out")
				if err := os.WriteFile(out, png, 0o644); err != nil {
					return fmt.Errorf("failed to write chart: %w", err)
				}
				fmt.Printf("Wrote %s\n", out)
				return nil
			})
		},
	}
}

func contextTitle(ctx leaderboarddomain.TournamentContext) string {
	if ctx == leaderboarddomain.ContextTwistedCreek {
		return "Twisted Creek"
	}
	return "Mosley Open"
}

func printTable[T any](cols []leaderboarddto.Column[T], rows []T) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = col.Value(row)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}
