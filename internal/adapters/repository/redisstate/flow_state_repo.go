package redisstate

import (
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlowStateRepo keeps each user's flow state in Redis with a TTL, so a
// half-built draft survives a bot restart but eventually expires.
type FlowStateRepo struct {
	client *redis.Client
	ttl    time.Duration
}

var _ repository.FlowStateRepository = (*FlowStateRepo)(nil)

func NewFlowStateRepo(client *redis.Client, ttl time.Duration) *FlowStateRepo {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &FlowStateRepo{client: client, ttl: ttl}
}

func (r *FlowStateRepo) Get(ctx context.Context, userID int64) (schema.FlowState, bool, error) {
	v, err := r.client.Get(ctx, flowKey(userID)).Result()
	if err == redis.Nil {
		return schema.FlowState{}, false, nil
	}
	if err != nil {
		return schema.FlowState{}, false, err
	}

	var state schema.FlowState
	if err := json.Unmarshal([]byte(v), &state); err != nil {
		return schema.FlowState{}, false, err
	}
	return state, true, nil
}

func (r *FlowStateRepo) Set(ctx context.Context, userID int64, state schema.FlowState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, flowKey(userID), b, r.ttl).Err()
}

func (r *FlowStateRepo) Delete(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, flowKey(userID)).Err()
}

func flowKey(userID int64) string {
	return fmt.Sprintf("flow:%d", userID)
}
