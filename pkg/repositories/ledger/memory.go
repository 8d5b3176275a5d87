package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/google/uuid"
)

// MemoryRepository implements Repository using in-memory storage
type MemoryRepository struct {
	transactions []*entities.Transaction
	mu           sync.RWMutex
}

// NewMemoryRepository creates a new in-memory ledger
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		transactions: make([]*entities.Transaction, 0),
	}
}

// AddTransaction records a new transaction
func (r *MemoryRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Generate a UUID if not provided
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}

	// Set timestamp if not provided
	if transaction.Timestamp.IsZero() {
		transaction.Timestamp = time.Now()
	}

	txCopy := *transaction
	r.transactions = append(r.transactions, &txCopy)

	return nil
}

// GetTransactions retrieves the most recent transactions
func (r *MemoryRepository) GetTransactions(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	return r.collect(limit, func(*entities.Transaction) bool { return true }), nil
}

// GetTransactionsByType retrieves the most recent transactions of a specific type
func (r *MemoryRepository) GetTransactionsByType(ctx context.Context, transactionType entities.TransactionType, limit int) ([]*entities.Transaction, error) {
	return r.collect(limit, func(tx *entities.Transaction) bool {
		return tx.Type == transactionType
	}), nil
}

// Close is a no-op
func (r *MemoryRepository) Close() error {
	return nil
}

func (r *MemoryRepository) collect(limit int, keep func(*entities.Transaction) bool) []*entities.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Transaction, 0)
	for i := len(r.transactions) - 1; i >= 0; i-- {
		if limit > 0 && len(result) >= limit {
			break
		}
		if keep(r.transactions[i]) {
			txCopy := *r.transactions[i]
			result = append(result, &txCopy)
		}
	}
	return result
}
