package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
	"github.com/redis/go-redis/v9"
)

// LogStore is the audit log on Redis: one sorted set per transaction ref,
// scored by timestamp, so entries read back in submission order.
type LogStore struct {
	client *redis.Client
}

func NewLogStore(client *redis.Client) *LogStore {
	return &LogStore{client: client}
}

func logKey(transactionRef string) string {
	return fmt.Sprintf("netbanx:log:%s", transactionRef)
}

func (s *LogStore) Append(ctx context.Context, entry gateway.LogEntry) error {
	member, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode log entry: %w", err)
	}

	_, err = s.client.ZAdd(ctx, logKey(entry.TransactionRef), redis.Z{
		Score:  float64(entry.Timestamp.UnixMilli()),
		Member: string(member),
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	return nil
}

// FindByRef returns all audit entries for one transaction ref, oldest
// first.
func (s *LogStore) FindByRef(ctx context.Context, transactionRef string) ([]gateway.LogEntry, error) {
	members, err := s.client.ZRangeByScore(ctx, logKey(transactionRef), &redis.ZRangeBy{
		Min: "-inf",
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}

	entries := make([]gateway.LogEntry, 0, len(members))
	for _, member := range members {
		var entry gateway.LogEntry
		if err := json.Unmarshal([]byte(member), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
