package entities

import "math"

const (
	// PayoutMultiplier is applied to the stake when the chosen driver wins.
	// With four drivers fair odds would be 4.
	PayoutMultiplier = 6.7

	// MinBet and MaxBet bound a single stake
	MinBet int64 = 10
	MaxBet int64 = 500

	// Bets at or above HighRollerBet count as a maximum bet, at or below LowBet as a penny bet
	HighRollerBet int64 = 500
	LowBet        int64 = 10
)

// BetOutcome is the result of resolving one race
type BetOutcome struct {
	RaceID   string `json:"race_id"`
	Winner   Driver `json:"winner"`
	Winnings int64  `json:"winnings"`
}

// Won reports whether the bettor's driver won
func (o *BetOutcome) Won() bool {
	return o.Winnings > 0
}

// Payout returns the winnings for a winning stake of betAmount
func Payout(betAmount int64) int64 {
	return int64(math.Round(float64(betAmount) * PayoutMultiplier))
}
