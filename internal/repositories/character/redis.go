package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	redisclient "github.com/KirkDiggler/fight-tracker/internal/redis"
)

const (
	characterKeyPrefix   = "character:"
	accountIndexPrefix   = "character:account:"
	combatStatsKeyPrefix = "combat_stats:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errStatsNil         = "combat stats cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errAccountIDEmpty   = "account ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) GetByAccount(ctx context.Context, input GetByAccountInput) (*GetByAccountOutput, error) {
	if input.AccountID == "" {
		return nil, errors.InvalidArgument(errAccountIDEmpty)
	}

	characterID, err := r.client.Get(ctx, accountIndexPrefix+input.AccountID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no character for account %s", input.AccountID)
		}
		return nil, errors.Wrapf(err, "failed to read character index")
	}

	var char entities.Character
	if err := r.getJSON(ctx, characterKeyPrefix+characterID, &char); err != nil {
		if errors.IsNotFound(err) {
			// stale index entry; the sheet was removed
			slog.WarnContext(ctx, "character index points at missing character",
				"account_id", input.AccountID,
				"character_id", characterID)
			return nil, errors.NotFoundf("no character for account %s", input.AccountID)
		}
		return nil, err
	}

	return &GetByAccountOutput{Character: &char}, nil
}

func (r *redisRepository) GetCombatStats(ctx context.Context, input GetCombatStatsInput) (*GetCombatStatsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var stats entities.CombatStats
	if err := r.getJSON(ctx, combatStatsKeyPrefix+input.CharacterID, &stats); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("no combat stats for character %s", input.CharacterID)
		}
		return nil, err
	}

	return &GetCombatStatsOutput{Stats: &stats}, nil
}

func (r *redisRepository) SaveCharacter(ctx context.Context, input SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.Character.ID, vb)
	errors.ValidateRequired("account_id", input.Character.AccountID, vb)
	errors.ValidateRequired("name", input.Character.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// Start transaction
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+input.Character.ID, data, 0)
	pipe.Set(ctx, accountIndexPrefix+input.Character.AccountID, input.Character.ID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	slog.DebugContext(ctx, "saved character",
		"character_id", input.Character.ID,
		"account_id", input.Character.AccountID)

	return &SaveCharacterOutput{Character: input.Character}, nil
}

func (r *redisRepository) SaveCombatStats(ctx context.Context, input SaveCombatStatsInput) (*SaveCombatStatsOutput, error) {
	if input.Stats == nil {
		return nil, errors.InvalidArgument(errStatsNil)
	}
	if input.Stats.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Stats)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal combat stats")
	}

	if err := r.client.Set(ctx, combatStatsKeyPrefix+input.Stats.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save combat stats")
	}

	return &SaveCombatStatsOutput{Stats: input.Stats}, nil
}

func (r *redisRepository) getJSON(ctx context.Context, key string, dest any) error {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.NotFoundf("%s not found", key)
		}
		return errors.Wrapf(err, "failed to get %s", key)
	}
	if err := json.Unmarshal([]byte(result), dest); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", key)
	}
	return nil
}
