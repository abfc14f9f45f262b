package leaderboarddomain

const (
	// DayCount is the number of tournament rounds.
	DayCount = 3

	// HolesPerRound is the number of holes played per day.
	HolesPerRound = 18
)

// Player is a tournament participant. Only active players appear on any leaderboard.
type Player struct {
	ID       int64
	Name     string
	Handicap int
	Active   bool
	TeamID   *int64
}

// Team groups players for best-ball scoring. Members are resolved from Player.TeamID.
type Team struct {
	ID      int64
	Name    string
	Members []Player
}

// HoleKey identifies a hole within a course.
type HoleKey struct {
	CourseID   int64
	HoleNumber int
}

// HoleDetail carries the par and stroke index (1 = hardest, 18 = easiest) of a hole.
type HoleDetail struct {
	Par         int
	StrokeIndex int
}

// ScoreKey identifies a single recorded gross score.
type ScoreKey struct {
	PlayerID   int64
	DayNumber  int
	HoleNumber int
}

// ScoreEntry is one player's gross score on one hole on one day.
// Absence of an entry means the hole has not been played; it is never a zero.
type ScoreEntry struct {
	PlayerID   int64
	CourseID   int64
	DayNumber  int
	HoleNumber int
	Gross      int
}

// Snapshot is the in-memory view of the tournament a refresh computes from.
// Calculators never touch storage; the caller loads a consistent snapshot up front.
type Snapshot struct {
	Players []Player
	Holes   map[HoleKey]HoleDetail
	Scores  map[ScoreKey]ScoreEntry
	Teams   []Team
}

// Score returns the entry for (playerID, day, hole) and whether one exists.
func (s *Snapshot) Score(playerID int64, day, hole int) (ScoreEntry, bool) {
	entry, ok := s.Scores[ScoreKey{PlayerID: playerID, DayNumber: day, HoleNumber: hole}]
	return entry, ok
}

// Hole returns the detail record for (courseID, hole) and whether one exists.
func (s *Snapshot) Hole(courseID int64, hole int) (HoleDetail, bool) {
	detail, ok := s.Holes[HoleKey{CourseID: courseID, HoleNumber: hole}]
	return detail, ok
}

// DaysWithScores reports which days have at least one recorded score, ascending.
func (s *Snapshot) DaysWithScores() []int {
	seen := make(map[int]bool)
	for key := range s.Scores {
		seen[key.DayNumber] = true
	}
	days := make([]int, 0, DayCount)
	for day := 1; day <= DayCount; day++ {
		if seen[day] {
			days = append(days, day)
		}
	}
	return days
}
