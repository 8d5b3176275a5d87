package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/onexrace/pkg/entities"
)

const transactionMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"amount": { "type": "long" },
			"type": { "type": "keyword" },
			"reference_id": { "type": "keyword" },
			"description": { "type": "text" },
			"timestamp": { "type": "date" },
			"balance_after": { "type": "long" }
		}
	}
}`

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "onexrace",
	}
}

// ElasticsearchRepository stores transactions in a base repository and also
// indexes them for search. Reads are served by the base repository.
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	config   *ElasticsearchConfig
	index    string
}

// NewElasticsearchRepository creates the client and ensures the transaction index exists
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	repo := newElasticsearchRepository(baseRepo, client, config)
	if err := repo.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}

	return repo, nil
}

func newElasticsearchRepository(baseRepo Repository, client *elasticsearch.Client, config *ElasticsearchConfig) *ElasticsearchRepository {
	if config.IndexPrefix == "" {
		config.IndexPrefix = "onexrace"
	}
	return &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		config:   config,
		index:    config.IndexPrefix + "_transactions",
	}
}

// initIndex creates the transaction index if it doesn't exist
func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if transaction index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(transactionMapping)),
	}

	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating transaction index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating transaction index: %s", res.String())
	}

	return nil
}

// AddTransaction saves to the base repository, then indexes the transaction
func (r *ElasticsearchRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	if err := r.baseRepo.AddTransaction(ctx, transaction); err != nil {
		return fmt.Errorf("error saving transaction to base repository: %w", err)
	}

	return r.IndexTransaction(ctx, transaction)
}

// IndexTransaction indexes a transaction under its id
func (r *ElasticsearchRepository) IndexTransaction(ctx context.Context, transaction *entities.Transaction) error {
	jsonData, err := json.Marshal(transaction)
	if err != nil {
		return fmt.Errorf("error marshaling transaction: %w", err)
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(jsonData),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(transaction.ID),
	)
	if err != nil {
		return fmt.Errorf("error indexing transaction: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing transaction: %s", res.String())
	}

	return nil
}

// GetTransactions is served by the base repository
func (r *ElasticsearchRepository) GetTransactions(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	return r.baseRepo.GetTransactions(ctx, limit)
}

// GetTransactionsByType is served by the base repository
func (r *ElasticsearchRepository) GetTransactionsByType(ctx context.Context, transactionType entities.TransactionType, limit int) ([]*entities.Transaction, error) {
	return r.baseRepo.GetTransactionsByType(ctx, transactionType, limit)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}

// IndexName returns the transaction index
func (r *ElasticsearchRepository) IndexName() string {
	return r.index
}
