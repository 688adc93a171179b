package account

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	redisclient "github.com/KirkDiggler/fight-tracker/internal/redis"
)

const (
	accountKeyPrefix = "account:"
	accountIndexKey  = "accounts"

	errAccountNil     = "account cannot be nil"
	errAccountIDEmpty = "account ID cannot be empty"
)

var validRoles = []string{string(entities.RoleDM), string(entities.RolePlayer)}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis account repository.
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

// NewRedis creates a new Redis-backed account repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAccountIDEmpty)
	}

	result, err := r.client.Get(ctx, accountKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("account %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get account")
	}

	var acct entities.Account
	if err := json.Unmarshal([]byte(result), &acct); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal account")
	}

	return &GetOutput{Account: &acct}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Account == nil {
		return nil, errors.InvalidArgument(errAccountNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.Account.ID, vb)
	errors.ValidateEnum("role", string(input.Account.Role), validRoles, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Account)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal account")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, accountKeyPrefix+input.Account.ID, data, 0)
	pipe.SAdd(ctx, accountIndexKey, input.Account.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save account")
	}

	slog.DebugContext(ctx, "saved account",
		"account_id", input.Account.ID,
		"role", input.Account.Role)

	return &SaveOutput{Account: input.Account}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, accountIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list accounts")
	}
	sort.Strings(ids)

	accounts := make([]*entities.Account, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "account not found, cleaning up index", "account_id", id)
				r.client.SRem(ctx, accountIndexKey, id)
				continue
			}
			return nil, err
		}
		accounts = append(accounts, out.Account)
	}

	return &ListOutput{Accounts: accounts}, nil
}
