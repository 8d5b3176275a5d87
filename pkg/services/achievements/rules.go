package achievements

import "github.com/fadedpez/onexrace/pkg/entities"

// Rule binds one achievement id to the event kind that can unlock it
type Rule struct {
	AchievementID int
	Kind          entities.EventKind
	// Matches reports whether the event's value satisfies the threshold
	Matches func(value int64) bool
}

func always(int64) bool { return true }

func atLeast(threshold int64) func(int64) bool {
	return func(v int64) bool { return v >= threshold }
}

func atMost(threshold int64) func(int64) bool {
	return func(v int64) bool { return v <= threshold }
}

// DefaultRules is the unlock table for the sixteen-achievement catalog.
// LossStreak has no rule.
func DefaultRules() []Rule {
	return []Rule{
		{AchievementID: 0, Kind: entities.EventFirstWin, Matches: always},
		{AchievementID: 1, Kind: entities.EventHighBet, Matches: atLeast(500)},
		{AchievementID: 2, Kind: entities.EventWinStreak, Matches: atLeast(3)},
		{AchievementID: 3, Kind: entities.EventStoryUnlock, Matches: atLeast(5)},
		{AchievementID: 4, Kind: entities.EventTotalWins, Matches: atLeast(10)},
		{AchievementID: 5, Kind: entities.EventTotalWins, Matches: atLeast(25)},
		{AchievementID: 6, Kind: entities.EventWinStreak, Matches: atLeast(7)},
		{AchievementID: 7, Kind: entities.EventLowBetWin, Matches: atMost(10)},
		{AchievementID: 8, Kind: entities.EventMaxBetWin, Matches: always},
		{AchievementID: 9, Kind: entities.EventTotalBets, Matches: atLeast(5000)},
		{AchievementID: 10, Kind: entities.EventStoryUnlock, Matches: atLeast(10)},
		{AchievementID: 11, Kind: entities.EventStoryUnlock, Matches: atLeast(18)},
		{AchievementID: 12, Kind: entities.EventChestsOpened, Matches: atLeast(20)},
		{AchievementID: 13, Kind: entities.EventComebackWin, Matches: always},
		{AchievementID: 14, Kind: entities.EventRichPlayer, Matches: atLeast(10000)},
		{AchievementID: 15, Kind: entities.EventDailyPlayer, Matches: atLeast(7)},
	}
}
