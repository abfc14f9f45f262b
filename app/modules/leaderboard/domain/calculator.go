package leaderboarddomain

import "log/slog"

// Calculator computes leaderboard rows from an in-memory snapshot. It holds no
// state between calls; every method recomputes from the snapshot it is given.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator creates a Calculator. A nil logger falls back to slog.Default.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logger: logger}
}

// NetStablefordForHole computes the per-hole net Stableford points for a
// player, applying the per-hole stroke allocation scheme. The second return
// value is false when the hole contributes nothing: no score recorded, hole
// details missing, the giveback sentinel, or a differential outside the
// Stableford table.
func (c *Calculator) NetStablefordForHole(player Player, day, hole int, snap *Snapshot) (Points, bool) {
	entry, ok := snap.Score(player.ID, day, hole)
	if !ok {
		return 0, false
	}

	detail, ok := snap.Hole(entry.CourseID, hole)
	if !ok {
		c.logger.Warn("score references unknown hole",
			slog.Int64("player_id", player.ID),
			slog.Int64("course_id", entry.CourseID),
			slog.Int("hole", hole),
			slog.Int("day", day),
		)
		return 0, false
	}

	strokes := StrokesReceived(player.Handicap, detail.StrokeIndex)
	if strokes == HoleExcluded {
		return 0, false
	}

	net := entry.Gross - strokes
	points, ok := PointsForDifferential(net - detail.Par)
	if !ok {
		c.logger.Warn("net differential outside stableford table",
			slog.Int64("player_id", player.ID),
			slog.Int("hole", hole),
			slog.Int("day", day),
			slog.Int("differential", net-detail.Par),
		)
		return 0, false
	}
	return points, true
}

// grossPointsForDay sums gross Stableford points over a player's scored holes
// on one day. The second return value reports whether the player has any score
// entry that day at all; a player with none is excluded from daily views.
func (c *Calculator) grossPointsForDay(player Player, day int, snap *Snapshot) (int, bool) {
	total := 0
	played := false
	for hole := 1; hole <= HolesPerRound; hole++ {
		entry, ok := snap.Score(player.ID, day, hole)
		if !ok {
			continue
		}
		played = true

		detail, ok := snap.Hole(entry.CourseID, hole)
		if !ok {
			c.logger.Warn("score references unknown hole",
				slog.Int64("player_id", player.ID),
				slog.Int64("course_id", entry.CourseID),
				slog.Int("hole", hole),
				slog.Int("day", day),
			)
			continue
		}

		points, ok := PointsForDifferential(entry.Gross - detail.Par)
		if !ok {
			c.logger.Warn("gross differential outside stableford table",
				slog.Int64("player_id", player.ID),
				slog.Int("hole", hole),
				slog.Int("day", day),
				slog.Int("differential", entry.Gross-detail.Par),
			)
			continue
		}
		total += int(points)
	}
	return total, played
}
