package leaderboardservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateTournamentChart(t *testing.T) {
	svc := testLeaderboardService(fixtureRepos())
	_, err := svc.RefreshTournament(context.Background())
	require.NoError(t, err)

	png, err := GenerateTournamentChart(svc.TournamentRows(), DefaultChartPalette())
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestGenerateTeamChart(t *testing.T) {
	svc := testLeaderboardService(fixtureRepos())
	_, err := svc.RefreshTeams(context.Background())
	require.NoError(t, err)

	png, err := GenerateTeamChart(svc.TeamRows(), DefaultChartPalette())
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}
