package leaderboardservice

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	t.Run("refuses to export before any scores exist", func(t *testing.T) {
		svc := testLeaderboardService(NewFakeRosterRepository(), NewFakeCourseRepository(), NewFakeScoreRepository())

		result, err := svc.ExportWorkbook(context.Background())
		require.NoError(t, err)
		require.True(t, result.IsFailure())
		assert.Contains(t, result.Failure.Reason, "no scores")
	})

	t.Run("writes one sheet per view", func(t *testing.T) {
		svc := testLeaderboardService(fixtureRepos())
		require.NoError(t, svc.RefreshAll(context.Background()))

		result, err := svc.ExportWorkbook(context.Background())
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Equal(t, []string{"Day 1", "Day 2", "Mosley Open", "Teams"}, result.Success.Sheets)

		f, err := excelize.OpenReader(bytes.NewReader(result.Success.Data))
		require.NoError(t, err)
		defer f.Close()

		assert.ElementsMatch(t, []string{"Day 1", "Day 2", "Mosley Open", "Teams"}, f.GetSheetList())

		header, err := f.GetCellValue("Day 1", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Rank", header)

		leader, err := f.GetCellValue("Day 1", "B2")
		require.NoError(t, err)
		assert.Equal(t, "Alma", leader)

		// Day 3 was never played, so its net column renders blank.
		blank, err := f.GetCellValue("Mosley Open", "F2")
		require.NoError(t, err)
		assert.Equal(t, "", blank)
	})
}
