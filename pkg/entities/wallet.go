package entities

import (
	"time"
)

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeInitial     TransactionType = "INITIAL"
	TransactionTypeBet         TransactionType = "BET"
	TransactionTypePayout      TransactionType = "PAYOUT"
	TransactionTypeChest       TransactionType = "CHEST"
	TransactionTypeAchievement TransactionType = "ACHIEVEMENT"
	TransactionTypeStory       TransactionType = "STORY"
	TransactionTypeAdjustment  TransactionType = "ADJUSTMENT"
)

// Transaction represents a single coin movement
type Transaction struct {
	ID           string          `json:"id"`
	Amount       int64           `json:"amount"` // positive for credits, negative for debits
	Type         TransactionType `json:"type"`
	ReferenceID  string          `json:"reference_id,omitempty"` // race id, chest type, story or achievement id
	Description  string          `json:"description"`
	Timestamp    time.Time       `json:"timestamp"`
	BalanceAfter int64           `json:"balance_after"`
}
