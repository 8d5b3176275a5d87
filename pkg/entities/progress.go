package entities

import "time"

// Progress holds the counters that feed achievement evaluation
type Progress struct {
	TotalWins         int64
	CurrentWinStreak  int64
	CurrentLossStreak int64
	HighestBet        int64
	TotalBetsAmount   int64
	RacesPlayed       int64
	TotalWinnings     int64
	ChestsOpenedCount int64
	ConsecutiveDays   int64
	LastPlayedAt      *time.Time
}

// Clone returns a deep copy
func (p Progress) Clone() Progress {
	if p.LastPlayedAt != nil {
		t := *p.LastPlayedAt
		p.LastPlayedAt = &t
	}
	return p
}
