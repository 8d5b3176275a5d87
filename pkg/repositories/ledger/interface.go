package ledger

import (
	"context"

	"github.com/fadedpez/onexrace/pkg/entities"
)

// Repository defines the interface for the coin transaction ledger
type Repository interface {
	// AddTransaction records a new transaction
	AddTransaction(ctx context.Context, transaction *entities.Transaction) error

	// GetTransactions retrieves the most recent transactions, newest first.
	// A limit of zero or less returns everything.
	GetTransactions(ctx context.Context, limit int) ([]*entities.Transaction, error)

	// GetTransactionsByType retrieves the most recent transactions of one type, newest first
	GetTransactionsByType(ctx context.Context, transactionType entities.TransactionType, limit int) ([]*entities.Transaction, error)

	// Close releases any resources held by the repository
	Close() error
}
