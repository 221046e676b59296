package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptStore keeps rendered receipts keyed by transaction ref so the
// host can read them back for display. Only the masked card form is ever
// stored.
type ReceiptStore struct {
	db *pgxpool.Pool
}

func NewReceiptStore(db *pgxpool.Pool) *ReceiptStore {
	return &ReceiptStore{db: db}
}

func (s *ReceiptStore) Save(ctx context.Context, rec gateway.ReceiptRecord) error {
	query := `
		INSERT INTO netbanx_receipt (trx_id, receipt, first_name, last_name, card_type, card_number, ts, ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (trx_id) DO UPDATE SET receipt = EXCLUDED.receipt
	`

	_, err := s.db.Exec(ctx, query,
		rec.TransactionRef,
		rec.Receipt,
		rec.FirstName,
		rec.LastName,
		rec.CardType,
		rec.MaskedCard,
		rec.Timestamp,
		rec.ClientIP,
	)
	if err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}

	return nil
}

func (s *ReceiptStore) FindByRef(ctx context.Context, transactionRef string) (string, error) {
	query := `SELECT receipt FROM netbanx_receipt WHERE trx_id = $1`

	var receipt string
	err := s.db.QueryRow(ctx, query, transactionRef).Scan(&receipt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrReceiptNotFound
		}
		return "", fmt.Errorf("failed to find receipt: %w", err)
	}

	return receipt, nil
}
