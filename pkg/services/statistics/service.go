package statistics

import (
	"context"
	"time"

	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/fadedpez/onexrace/pkg/repositories/ledger"
)

// Source is the read side of the engine the statistics are derived from
type Source interface {
	Coins() int64
	Progress() entities.Progress
	Achievements() []entities.Achievement
	UnlockedStories() []int
}

// Service provides methods for retrieving and processing player statistics
type Service struct {
	repository ledger.Repository
	now        func() time.Time
}

// NewService creates a new statistics service
func NewService(repository ledger.Repository) *Service {
	return &Service{
		repository: repository,
		now:        time.Now,
	}
}

// PlayerStats summarizes a player's betting history
type PlayerStats struct {
	Coins                int64                   `json:"coins"`
	RacesPlayed          int64                   `json:"races_played"`
	TotalWins            int64                   `json:"total_wins"`
	WinRate              float64                 `json:"win_rate"`
	TotalWagered         int64                   `json:"total_wagered"`
	HighestBet           int64                   `json:"highest_bet"`
	TotalWinnings        int64                   `json:"total_winnings"`
	NetProfit            int64                   `json:"net_profit"`
	ChestsOpened         int64                   `json:"chests_opened"`
	ChestRewards         int64                   `json:"chest_rewards"`
	AchievementsUnlocked int                     `json:"achievements_unlocked"`
	AchievementsTotal    int                     `json:"achievements_total"`
	AchievementRewards   int64                   `json:"achievement_rewards"`
	StoriesUnlocked      int                     `json:"stories_unlocked"`
	ConsecutiveDays      int64                   `json:"consecutive_days"`
	RecentActivity       []*entities.Transaction `json:"recent_activity"`
	LastUpdated          time.Time               `json:"last_updated"`
}

// GetPlayerStats combines the engine's counters with the ledger history.
// Win rate and profit come from the persisted counters so they stay
// consistent when the ledger is empty or was reset. recent limits
// RecentActivity; zero or less omits it.
func (s *Service) GetPlayerStats(ctx context.Context, src Source, recent int) (*PlayerStats, error) {
	progress := src.Progress()

	stats := &PlayerStats{
		Coins:           src.Coins(),
		RacesPlayed:     progress.RacesPlayed,
		TotalWins:       progress.TotalWins,
		TotalWagered:    progress.TotalBetsAmount,
		HighestBet:      progress.HighestBet,
		TotalWinnings:   progress.TotalWinnings,
		NetProfit:       progress.TotalWinnings - progress.TotalBetsAmount,
		ChestsOpened:    progress.ChestsOpenedCount,
		ConsecutiveDays: progress.ConsecutiveDays,
		StoriesUnlocked: len(src.UnlockedStories()),
		LastUpdated:     s.now(),
	}

	if stats.RacesPlayed > 0 {
		stats.WinRate = float64(stats.TotalWins) / float64(stats.RacesPlayed)
	}

	for _, a := range src.Achievements() {
		stats.AchievementsTotal++
		if a.IsUnlocked {
			stats.AchievementsUnlocked++
		}
	}

	transactions, err := s.repository.GetTransactions(ctx, 0)
	if err != nil {
		return nil, err
	}

	for _, tx := range transactions {
		switch tx.Type {
		case entities.TransactionTypeChest:
			stats.ChestRewards += tx.Amount
		case entities.TransactionTypeAchievement:
			stats.AchievementRewards += tx.Amount
		}
	}

	if recent > 0 {
		n := recent
		if n > len(transactions) {
			n = len(transactions)
		}
		stats.RecentActivity = transactions[:n]
	}

	return stats, nil
}
