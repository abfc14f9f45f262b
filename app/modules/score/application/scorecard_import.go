package scoreservice

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
	"github.com/mosley-golf-club/tourney-engine/internal/observability"
	"github.com/mosley-golf-club/tourney-engine/internal/results"
)

// ScorecardImportedPayload reports an imported scorecard sheet.
type ScorecardImportedPayload struct {
	DayNumber      int
	ScoresImported int
	RowsSkipped    int
}

// ScorecardImportFailedPayload reports a rejected scorecard.
type ScorecardImportFailedPayload struct {
	DayNumber int
	Reason    string
}

// ScorecardImportResult is the envelope returned by ImportScorecard.
type ScorecardImportResult = results.OperationResult[ScorecardImportedPayload, ScorecardImportFailedPayload]

// ImportScorecard parses an XLSX scorecard and stores every readable score.
// The first sheet must carry a header row with a name column followed by one
// column per hole (1..18); a "Par" row, if present, is ignored. Player names
// are matched against the active roster; unknown names and unreadable cells
// skip the row or cell rather than aborting the import.
func (s *ScoreService) ImportScorecard(ctx context.Context, day int, courseID int64, data []byte) (ScorecardImportResult, error) {
	return withTelemetry(s, ctx, "ImportScorecard", func(ctx context.Context) (ScorecardImportResult, error) {
		if day < 1 || day > leaderboarddomain.DayCount {
			return results.FailureResult[ScorecardImportedPayload](ScorecardImportFailedPayload{
				DayNumber: day,
				Reason:    fmt.Sprintf("day number %d out of range 1..%d", day, leaderboarddomain.DayCount),
			}), nil
		}

		rows, err := readFirstSheet(data)
		if err != nil {
			return results.FailureResult[ScorecardImportedPayload](ScorecardImportFailedPayload{
				DayNumber: day,
				Reason:    err.Error(),
			}), nil
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (ScorecardImportResult, error) {
			players, err := s.roster.ActivePlayers(ctx, db)
			if err != nil {
				return ScorecardImportResult{}, err
			}
			byName := make(map[string]int64, len(players))
			for _, p := range players {
				byName[strings.ToLower(strings.TrimSpace(p.Name))] = p.ID
			}

			imported := 0
			skipped := 0
			for _, row := range rows[1:] {
				if len(row) == 0 {
					continue
				}
				name := strings.TrimSpace(row[0])
				if name == "" || strings.EqualFold(name, "par") {
					continue
				}
				playerID, ok := byName[strings.ToLower(name)]
				if !ok {
					s.logger.WarnContext(ctx, "scorecard row for unknown player",
						observability.CorrelationAttr(ctx),
						slog.String("name", name),
					)
					skipped++
					continue
				}

				for hole := 1; hole <= leaderboarddomain.HolesPerRound && hole < len(row); hole++ {
					cell := strings.TrimSpace(row[hole])
					if cell == "" {
						continue
					}
					gross, err := strconv.Atoi(cell)
					if err != nil || gross < 1 {
						s.logger.WarnContext(ctx, "unreadable scorecard cell",
							observability.CorrelationAttr(ctx),
							slog.String("name", name),
							slog.Int("hole", hole),
							slog.String("cell", cell),
						)
						continue
					}
					entry := scoredb.ScoreEntry{
						PlayerID:   playerID,
						CourseID:   courseID,
						DayNumber:  day,
						HoleNumber: hole,
						Gross:      gross,
					}
					if err := s.scores.UpsertScore(ctx, db, &entry); err != nil {
						return ScorecardImportResult{}, err
					}
					imported++
				}
			}

			s.logger.InfoContext(ctx, "scorecard imported",
				observability.CorrelationAttr(ctx),
				slog.Int("day", day),
				slog.Int("scores", imported),
				slog.Int("rows_skipped", skipped),
			)
			return results.SuccessResult[ScorecardImportedPayload, ScorecardImportFailedPayload](ScorecardImportedPayload{
				DayNumber:      day,
				ScoresImported: imported,
				RowsSkipped:    skipped,
			}), nil
		})
	})
}

func readFirstSheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no score rows", sheets[0])
	}
	return rows, nil
}
