package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	leaderboarddto "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/dto"
	"github.com/mosley-golf-club/tourney-engine/internal/observability"
	"github.com/mosley-golf-club/tourney-engine/internal/results"
)

// WorkbookExportedPayload carries a rendered XLSX workbook of the current standings.
type WorkbookExportedPayload struct {
	Sheets []string `json:"sheets"`
	Data   []byte   `json:"-"`
}

// ExportResult is the outcome envelope for workbook exports.
type ExportResult = results.OperationResult[WorkbookExportedPayload, RefreshFailedPayload]

// ExportWorkbook renders the last refreshed standings into an XLSX workbook:
// one sheet per scored day, one for the tournament view in the configured
// context, and one for the teams. Callers refresh first; export never reads
// storage.
func (s *LeaderboardService) ExportWorkbook(ctx context.Context) (ExportResult, error) {
	return withTelemetry(s, ctx, "ExportWorkbook", func(ctx context.Context) (ExportResult, error) {
		days := s.DaysWithScores()
		if len(days) == 0 {
			return results.FailureResult[WorkbookExportedPayload](RefreshFailedPayload{
				View:   "workbook",
				Reason: "no scores recorded for any day",
			}), nil
		}

		f := excelize.NewFile()
		defer f.Close()

		var sheets []string
		for _, day := range days {
			sheet := fmt.Sprintf("Day %d", day)
			if err := writeSheet(f, sheet, leaderboarddto.DailyColumns(), s.DailyRows(day)); err != nil {
				return ExportResult{}, err
			}
			sheets = append(sheets, sheet)
		}

		tournamentSheet := sheetNameForContext(s.config().Context)
		if err := writeSheet(f, tournamentSheet, leaderboarddto.TournamentColumns(), s.TournamentRows()); err != nil {
			return ExportResult{}, err
		}
		sheets = append(sheets, tournamentSheet)

		if teams := s.TeamRows(); len(teams) > 0 {
			if err := writeSheet(f, "Teams", leaderboarddto.TeamColumns(), teams); err != nil {
				return ExportResult{}, err
			}
			sheets = append(sheets, "Teams")
		}

		// The sheet excelize seeds every workbook with is replaced by ours.
		if err := f.DeleteSheet(f.GetSheetName(0)); err != nil {
			return ExportResult{}, fmt.Errorf("drop default sheet: %w", err)
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return ExportResult{}, fmt.Errorf("write workbook: %w", err)
		}

		s.logger.InfoContext(ctx, "standings workbook exported",
			observability.CorrelationAttr(ctx),
			slog.Any("sheets", sheets),
		)
		return results.SuccessResult[WorkbookExportedPayload, RefreshFailedPayload](WorkbookExportedPayload{
			Sheets: sheets,
			Data:   buf.Bytes(),
		}), nil
	})
}

func sheetNameForContext(ctx leaderboarddomain.TournamentContext) string {
	if ctx == leaderboarddomain.ContextTwistedCreek {
		return "Twisted Creek"
	}
	return "Mosley Open"
}

func writeSheet[T any](f *excelize.File, sheet string, cols []leaderboarddto.Column[T], rows []T) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheet, err)
	}
	for j, col := range cols {
		ref, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, ref, col.Header); err != nil {
			return fmt.Errorf("write header %q: %w", col.Header, err)
		}
	}
	for i, row := range rows {
		for j, col := range cols {
			ref, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, ref, col.Value(row)); err != nil {
				return fmt.Errorf("write sheet %q row %d: %w", sheet, i+2, err)
			}
		}
	}
	return nil
}
