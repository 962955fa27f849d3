package games

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-tactics/internal/redis"
)

const (
	gameKeyPrefix = "tactics:game:"
	gameIndexKey  = "tactics:games"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis game repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed game repository. Each game is a JSON
// document under tactics:game:{id}; the set tactics:games indexes them.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data := cloneData(input.Data)
	data.SavedAt = r.clock.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKeyPrefix+data.ID, payload, 0)
	pipe.SAdd(ctx, gameIndexKey, data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save game")
	}

	return &SaveOutput{Data: data}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, gameKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errNotFound, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get game")
	}

	var data GameData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game data")
	}

	return &GetOutput{Data: &data}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, gameIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list games")
	}

	if len(ids) == 0 {
		return &ListOutput{Games: []*GameData{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameKeyPrefix + id
	}

	results, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get games")
	}

	out := make([]*GameData, 0, len(results))
	for i, result := range results {
		raw, ok := result.(string)
		if !ok {
			slog.WarnContext(ctx, "Saved game missing from index", "game_id", ids[i])
			continue
		}

		var data GameData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable saved game", "game_id", ids[i], "error", err)
			continue
		}
		out = append(out, &data)
	}

	sortNewestFirst(out)
	if input.Limit > 0 && len(out) > input.Limit {
		out = out[:input.Limit]
	}
	return &ListOutput{Games: out}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := gameKeyPrefix + input.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf(errNotFound, input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, gameIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete game")
	}

	return &DeleteOutput{}, nil
}
