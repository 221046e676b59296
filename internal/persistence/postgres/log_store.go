package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// LogStore is the append-only audit log on Postgres. Rows are never
// updated or deleted by the adapter.
type LogStore struct {
	db *pgxpool.Pool
}

func NewLogStore(db *pgxpool.Pool) *LogStore {
	return &LogStore{db: db}
}

func (s *LogStore) Append(ctx context.Context, entry gateway.LogEntry) error {
	query := `
		INSERT INTO netbanx_log (id, trx_id, ts, category, message, fail, ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	message, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode log payload: %w", err)
	}

	_, err = s.db.Exec(ctx, query,
		uuid.New().String(),
		entry.TransactionRef,
		entry.Timestamp,
		entry.Category,
		message,
		entry.Failed,
		entry.ClientIP,
	)
	if err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	return nil
}

// FindByRef returns all audit entries for one transaction ref, oldest
// first.
func (s *LogStore) FindByRef(ctx context.Context, transactionRef string) ([]gateway.LogEntry, error) {
	query := `
		SELECT trx_id, ts, category, message, fail, ip
		FROM netbanx_log WHERE trx_id = $1
		ORDER BY ts ASC
	`

	rows, err := s.db.Query(ctx, query, transactionRef)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer rows.Close()

	var entries []gateway.LogEntry
	for rows.Next() {
		var entry gateway.LogEntry
		var message []byte
		if err := rows.Scan(
			&entry.TransactionRef,
			&entry.Timestamp,
			&entry.Category,
			&message,
			&entry.Failed,
			&entry.ClientIP,
		); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		if len(message) > 0 {
			if err := json.Unmarshal(message, &entry.Payload); err != nil {
				return nil, fmt.Errorf("failed to decode log payload: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
