package economy

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/google/uuid"
)

// PlaceBet spends the stake for a race on driver. The amount must be
// between MinBet and MaxBet; insufficient funds return false.
func (e *Engine) PlaceBet(ctx context.Context, amount int64, driver entities.Driver) (bool, error) {
	if amount < entities.MinBet || amount > entities.MaxBet {
		return false, types.NewGameError(types.ErrBetOutOfRange,
			fmt.Sprintf("bet must be between %d and %d, got %d", entities.MinBet, entities.MaxBet, amount))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.spend(ctx, amount, entities.TransactionTypeBet, strconv.Itoa(driver.ID), "Bet on "+driver.Name)
}

// ResolveRace draws a winner uniformly from drivers and settles a bet of
// betAmount on chosen. The stake is not debited here; see PlaceBet.
func (e *Engine) ResolveRace(ctx context.Context, drivers []entities.Driver, chosen entities.Driver, betAmount int64) (*entities.BetOutcome, error) {
	if len(drivers) == 0 {
		return nil, types.InvalidArgument("no drivers in race")
	}
	if betAmount <= 0 {
		return nil, types.InvalidArgument("bet must be positive, got %d", betAmount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p := &e.progress

	p.RacesPlayed++
	p.TotalBetsAmount += betAmount
	e.evaluate(ctx, entities.TotalBets(p.TotalBetsAmount))

	if betAmount > p.HighestBet {
		p.HighestBet = betAmount
		e.evaluate(ctx, entities.HighBet(betAmount))
	}

	e.trackDailyPlay(ctx)

	outcome := &entities.BetOutcome{
		RaceID: uuid.New().String(),
		Winner: drivers[e.rng.Intn(len(drivers))],
	}
	if chosen.ID == outcome.Winner.ID {
		outcome.Winnings = entities.Payout(betAmount)
	}

	if outcome.Won() {
		if err := e.wallet.AddFunds(ctx, outcome.Winnings, entities.TransactionTypePayout, outcome.RaceID, "Won on "+chosen.Name); err != nil {
			return nil, err
		}

		p.TotalWins++
		p.TotalWinnings += outcome.Winnings
		p.CurrentWinStreak++
		if p.CurrentLossStreak >= 3 {
			e.evaluate(ctx, entities.ComebackWin())
		}
		p.CurrentLossStreak = 0

		if p.TotalWins == 1 {
			e.evaluate(ctx, entities.FirstWin())
		}
		e.evaluate(ctx, entities.TotalWins(p.TotalWins))
		if p.CurrentWinStreak >= 3 {
			e.evaluate(ctx, entities.WinStreak(p.CurrentWinStreak))
		}
		if betAmount <= entities.LowBet {
			e.evaluate(ctx, entities.LowBetWin(betAmount))
		}
		if betAmount >= entities.HighRollerBet {
			e.evaluate(ctx, entities.MaxBetWin())
		}
	} else {
		p.CurrentWinStreak = 0
		p.CurrentLossStreak++
		e.evaluate(ctx, entities.LossStreak(p.CurrentLossStreak))
	}

	e.evaluate(ctx, entities.RichPlayer(e.wallet.Balance()))

	e.logger.Debug("Race %s: bet %d on %s, winner %s, winnings %d",
		outcome.RaceID, betAmount, chosen.Name, outcome.Winner.Name, outcome.Winnings)

	e.persist(ctx)
	return outcome, nil
}

// trackDailyPlay counts consecutive calendar days with at least one race.
// A clock that moved backwards is treated as the same day.
func (e *Engine) trackDailyPlay(ctx context.Context) {
	now := e.now()
	p := &e.progress

	if p.LastPlayedAt == nil {
		p.ConsecutiveDays = 1
	} else {
		switch d := daysBetween(p.LastPlayedAt.In(e.loc), now.In(e.loc)); {
		case d <= 0:
		case d == 1:
			p.ConsecutiveDays++
			e.evaluate(ctx, entities.DailyPlayer(p.ConsecutiveDays))
		default:
			p.ConsecutiveDays = 1
		}
	}

	p.LastPlayedAt = &now
}

// daysBetween returns the number of calendar days from a to b
func daysBetween(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	da := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	db := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
