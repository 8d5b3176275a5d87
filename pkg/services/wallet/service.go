package wallet

import (
	"context"
	"time"

	"github.com/fadedpez/onexrace/internal/logging"
	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/fadedpez/onexrace/pkg/repositories/ledger"
	"github.com/google/uuid"
)

// Service holds the coin balance and records every movement in the ledger.
// It is not safe for concurrent use; the engine serializes access.
type Service struct {
	balance int64
	repo    ledger.Repository
	logger  *logging.Logger
	now     func() time.Time
}

// NewService creates a wallet with an opening balance. repo may be nil, in
// which case no transactions are recorded.
func NewService(balance int64, repo ledger.Repository, logger *logging.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		balance: balance,
		repo:    repo,
		logger:  logger,
		now:     now,
	}
}

// Balance returns the current balance
func (s *Service) Balance() int64 {
	return s.balance
}

// AddFunds credits amount to the balance
func (s *Service) AddFunds(ctx context.Context, amount int64, txType entities.TransactionType, referenceID, description string) error {
	if amount < 0 {
		return types.InvalidArgument("amount cannot be negative: %d", amount)
	}

	s.balance += amount
	s.logger.Debug("[WALLET] +%d (%s) balance=%d", amount, txType, s.balance)

	if amount > 0 {
		s.record(ctx, amount, txType, referenceID, description)
	}
	return nil
}

// RemoveFunds debits amount if the balance covers it. It returns false,
// leaving the balance unchanged, when funds are insufficient.
func (s *Service) RemoveFunds(ctx context.Context, amount int64, txType entities.TransactionType, referenceID, description string) (bool, error) {
	if amount < 0 {
		return false, types.InvalidArgument("amount cannot be negative: %d", amount)
	}

	// Check if there are sufficient funds
	if s.balance < amount {
		s.logger.Debug("[WALLET] insufficient funds for %d (%s), balance=%d", amount, txType, s.balance)
		return false, nil
	}

	s.balance -= amount
	s.logger.Debug("[WALLET] -%d (%s) balance=%d", amount, txType, s.balance)

	if amount > 0 {
		s.record(ctx, -amount, txType, referenceID, description)
	}
	return true, nil
}

// record appends a transaction to the ledger. Failures are logged, never returned.
func (s *Service) record(ctx context.Context, amount int64, txType entities.TransactionType, referenceID, description string) {
	if s.repo == nil {
		return
	}

	transaction := &entities.Transaction{
		ID:           uuid.New().String(),
		Amount:       amount,
		Type:         txType,
		ReferenceID:  referenceID,
		Description:  description,
		Timestamp:    s.now(),
		BalanceAfter: s.balance,
	}

	if err := s.repo.AddTransaction(ctx, transaction); err != nil {
		s.logger.LogError(types.WrapError(types.ErrDatabaseError, "failed to record transaction", err))
	}
}
