package leaderboarddomain

// competitionRanks assigns standard competition ranks ("1,2,2,4") to totals
// already sorted descending: tied totals share a rank, and the next distinct
// total resumes at its 1-based position, so ranks can skip numbers after a
// tie group.
func competitionRanks(totals []int) []int {
	ranks := make([]int, len(totals))
	for i := range totals {
		if i > 0 && totals[i] == totals[i-1] {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}
