package entities

import "fmt"

// EventKind tags an AchievementEvent
type EventKind int

const (
	EventFirstWin EventKind = iota
	EventHighBet
	EventWinStreak
	EventLossStreak
	EventStoryUnlock
	EventTotalWins
	EventLowBetWin
	EventMaxBetWin
	EventTotalBets
	EventChestsOpened
	EventComebackWin
	EventRichPlayer
	EventDailyPlayer
)

var eventKindNames = map[EventKind]string{
	EventFirstWin:     "FirstWin",
	EventHighBet:      "HighBet",
	EventWinStreak:    "WinStreak",
	EventLossStreak:   "LossStreak",
	EventStoryUnlock:  "StoryUnlock",
	EventTotalWins:    "TotalWins",
	EventLowBetWin:    "LowBetWin",
	EventMaxBetWin:    "MaxBetWin",
	EventTotalBets:    "TotalBets",
	EventChestsOpened: "ChestsOpened",
	EventComebackWin:  "ComebackWin",
	EventRichPlayer:   "RichPlayer",
	EventDailyPlayer:  "DailyPlayer",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// AchievementEvent is a gameplay fact submitted to the achievement evaluator.
// Value carries the already-updated counter (amount, count or days) and is
// zero for kinds without a payload.
type AchievementEvent struct {
	Kind  EventKind
	Value int64
}

func (e AchievementEvent) String() string {
	switch e.Kind {
	case EventFirstWin, EventMaxBetWin, EventComebackWin:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	}
}

func FirstWin() AchievementEvent { return AchievementEvent{Kind: EventFirstWin} }

func HighBet(amount int64) AchievementEvent {
	return AchievementEvent{Kind: EventHighBet, Value: amount}
}

func WinStreak(count int64) AchievementEvent {
	return AchievementEvent{Kind: EventWinStreak, Value: count}
}

func LossStreak(count int64) AchievementEvent {
	return AchievementEvent{Kind: EventLossStreak, Value: count}
}

func StoryUnlock(count int64) AchievementEvent {
	return AchievementEvent{Kind: EventStoryUnlock, Value: count}
}

func TotalWins(count int64) AchievementEvent {
	return AchievementEvent{Kind: EventTotalWins, Value: count}
}

func LowBetWin(amount int64) AchievementEvent {
	return AchievementEvent{Kind: EventLowBetWin, Value: amount}
}

func MaxBetWin() AchievementEvent { return AchievementEvent{Kind: EventMaxBetWin} }

func TotalBets(amount int64) AchievementEvent {
	return AchievementEvent{Kind: EventTotalBets, Value: amount}
}

func ChestsOpened(count int64) AchievementEvent {
	return AchievementEvent{Kind: EventChestsOpened, Value: count}
}

func ComebackWin() AchievementEvent { return AchievementEvent{Kind: EventComebackWin} }

func RichPlayer(amount int64) AchievementEvent {
	return AchievementEvent{Kind: EventRichPlayer, Value: amount}
}

func DailyPlayer(days int64) AchievementEvent {
	return AchievementEvent{Kind: EventDailyPlayer, Value: days}
}
