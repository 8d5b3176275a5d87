package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fadedpez/onexrace/pkg/db/migrations"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// timestampFormats lists the layouts a stored timestamp may use
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",       // SQLite default format
	"2006-01-02T15:04:05Z",      // ISO 8601 format
	"2006-01-02T15:04:05-07:00", // ISO 8601 with timezone
}

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite ledger, applying migrations
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := migrations.NewMigrator(db).MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

// AddTransaction records a new transaction
func (r *SQLiteRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.Timestamp.IsZero() {
		transaction.Timestamp = time.Now()
	}

	query := `
		INSERT INTO transactions (id, amount, type, reference_id, description, timestamp, balance_after)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		transaction.ID,
		transaction.Amount,
		string(transaction.Type),
		transaction.ReferenceID,
		transaction.Description,
		transaction.Timestamp.UTC().Format(time.RFC3339Nano),
		transaction.BalanceAfter,
	)
	if err != nil {
		return fmt.Errorf("error adding transaction: %w", err)
	}

	return nil
}

// GetTransactions retrieves the most recent transactions
func (r *SQLiteRepository) GetTransactions(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	query := `
		SELECT id, amount, type, reference_id, description, timestamp, balance_after
		FROM transactions
		ORDER BY seq DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetTransactionsByType retrieves the most recent transactions of a specific type
func (r *SQLiteRepository) GetTransactionsByType(ctx context.Context, transactionType entities.TransactionType, limit int) ([]*entities.Transaction, error) {
	query := `
		SELECT id, amount, type, reference_id, description, timestamp, balance_after
		FROM transactions
		WHERE type = ?
		ORDER BY seq DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, string(transactionType), sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("error querying transactions by type: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// sqlLimit maps a non-positive limit to SQLite's "no limit"
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

func scanTransactions(rows *sql.Rows) ([]*entities.Transaction, error) {
	transactions := make([]*entities.Transaction, 0)

	for rows.Next() {
		var tx entities.Transaction
		var txType, timestamp string
		var referenceID, description sql.NullString

		err := rows.Scan(
			&tx.ID,
			&tx.Amount,
			&txType,
			&referenceID,
			&description,
			&timestamp,
			&tx.BalanceAfter,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}

		tx.Type = entities.TransactionType(txType)
		tx.ReferenceID = referenceID.String
		tx.Description = description.String

		var parseErr error
		for _, format := range timestampFormats {
			tx.Timestamp, parseErr = time.Parse(format, timestamp)
			if parseErr == nil {
				break
			}
		}
		if parseErr != nil {
			return nil, fmt.Errorf("error parsing timestamp '%s': %w", timestamp, parseErr)
		}

		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return transactions, nil
}
