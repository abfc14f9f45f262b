package leaderboardservice

import (
	"context"
	"fmt"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
	scoredb "github.com/mosley-golf-club/tourney-engine/app/modules/score/infrastructure/repositories"
)

// loadSnapshot reads the full tournament state into a domain snapshot: the
// active roster, every hole record, every score entry, and the teams with
// their membership resolved from the players' team assignments.
func (s *LeaderboardService) loadSnapshot(ctx context.Context) (*leaderboarddomain.Snapshot, error) {
	players, err := s.roster.ActivePlayers(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load active players: %w", err)
	}

	holes, err := s.courses.Holes(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load holes: %w", err)
	}

	entries, err := s.scores.Scores(ctx, s.db, scoredb.AllDays)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}

	teams, err := s.roster.Teams(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}

	snap := &leaderboarddomain.Snapshot{
		Players: make([]leaderboarddomain.Player, 0, len(players)),
		Holes:   make(map[leaderboarddomain.HoleKey]leaderboarddomain.HoleDetail, len(holes)),
		Scores:  make(map[leaderboarddomain.ScoreKey]leaderboarddomain.ScoreEntry, len(entries)),
	}

	membership := make(map[int64][]leaderboarddomain.Player)
	for _, p := range players {
		player := leaderboarddomain.Player{
			ID:       p.ID,
			Name:     p.Name,
			Handicap: p.Handicap,
			Active:   p.Active,
			TeamID:   p.TeamID,
		}
		snap.Players = append(snap.Players, player)
		if p.TeamID != nil {
			membership[*p.TeamID] = append(membership[*p.TeamID], player)
		}
	}

	for _, h := range holes {
		snap.Holes[leaderboarddomain.HoleKey{CourseID: h.CourseID, HoleNumber: h.HoleNumber}] = leaderboarddomain.HoleDetail{
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
		}
	}

	for _, e := range entries {
		key := leaderboarddomain.ScoreKey{PlayerID: e.PlayerID, DayNumber: e.DayNumber, HoleNumber: e.HoleNumber}
		snap.Scores[key] = leaderboarddomain.ScoreEntry{
			PlayerID:   e.PlayerID,
			CourseID:   e.CourseID,
			DayNumber:  e.DayNumber,
			HoleNumber: e.HoleNumber,
			Gross:      e.Gross,
		}
	}

	for _, t := range teams {
		snap.Teams = append(snap.Teams, leaderboarddomain.Team{
			ID:      t.ID,
			Name:    t.Name,
			Members: membership[t.ID],
		})
	}

	return snap, nil
}
