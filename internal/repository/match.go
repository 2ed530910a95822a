package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gridduel/internal/domain/match"
)

const eventsCollection = "match_events"

// MatchRepository archives a match: the latest snapshot goes to redis and
// every committed command to mongo. Either backend may be nil.
type MatchRepository struct {
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewMatchRepository(log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *MatchRepository {
	return &MatchRepository{
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

func SnapshotKey(matchID string) string {
	return fmt.Sprintf("gridduel:match:%s:state", matchID)
}

func (m *MatchRepository) SaveSnapshot(ctx context.Context, snap match.StateSnapshot) error {
	if m.redis == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return m.redis.Set(ctx, SnapshotKey(snap.MatchID), payload, 0).Err()
}

func (m *MatchRepository) AppendEvent(ctx context.Context, e match.Event) error {
	if m.mongo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := m.mongo.Collection(eventsCollection)
	if _, err := collection.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to insert event %d: %w", e.Seq, err)
	}

	m.log.Debugf("event %d of match %s archived", e.Seq, e.MatchID)
	return nil
}
